package main

import (
	"bytes"
	"strings"
	"testing"
)

func assertContains(t *testing.T, output string, expected ...string) {
	for _, e := range expected {
		if !strings.Contains(output, e) {
			t.Fatalf("Expecting output to contain %q, got:\n%s", e, output)
		}
	}
}

func TestWriteReportCashFlow(t *testing.T) {
	var buf bytes.Buffer
	results := Run(DefaultScenarios(), CashFlow, DefaultTolerance, NewLogger())
	WriteReport(&buf, results, false)
	output := buf.String()

	assertContains(t, output,
		"Sign convention: cashflow, tolerance: 1.00",
		"FV(0.06/12, 10, -200, -500, 1)",
		"Parameters: rate=0.005000, nper=10, pmt=-200, pv=-500, type=1",
		"Calculated: -2581.40",
		"Expected:   2581.40",
		"Difference: 5162.80",
		"(matches under the spreadsheet convention: 2581.40)",
		"Calculated: -12682.50",
		"0/3",
	)
	if count := strings.Count(output, "Match: ✘"); count != 3 {
		t.Fatalf("Expecting 3 mismatches, got %d:\n%s", count, output)
	}
}

func TestWriteReportSpreadsheet(t *testing.T) {
	var buf bytes.Buffer
	results := Run(DefaultScenarios(), Spreadsheet, DefaultTolerance, NewLogger())
	WriteReport(&buf, results, false)
	output := buf.String()

	assertContains(t, output,
		"Sign convention: spreadsheet",
		"Calculated: 2581.40",
		"Calculated: 12682.50",
		"Calculated: 1257.79",
		"Difference: 0.00",
		"$12,682.50",
		"3/3",
	)
	if count := strings.Count(output, "Match: ✓"); count != 3 {
		t.Fatalf("Expecting 3 matches, got %d:\n%s", count, output)
	}
	if strings.Contains(output, "matches under the") {
		t.Fatalf("Expecting no reconciliation notes when everything matches:\n%s", output)
	}
}

func TestWriteReportWrapsSource(t *testing.T) {
	var buf bytes.Buffer
	scenario := &Scenario{
		"long source",
		strings.Repeat("reference ", 20),
		ValuationInput{0, 1, -1, 0, EndOfPeriod},
		1,
	}
	WriteReport(&buf, Run([]*Scenario{scenario}, Spreadsheet, DefaultTolerance, NewLogger()), false)

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "  reference") && len(line) > sourceWidth+2 {
			t.Fatalf("Expecting source lines to wrap at %d, got %d: %q", sourceWidth, len(line), line)
		}
	}
}

func TestWriteReportColor(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, Run(DefaultScenarios(), Spreadsheet, DefaultTolerance, NewLogger()), true)
	assertContains(t, buf.String(), "Match: "+green("✓"))

	buf.Reset()
	WriteReport(&buf, Run(DefaultScenarios(), CashFlow, DefaultTolerance, NewLogger()), true)
	assertContains(t, buf.String(), "Match: "+red("✘"))
}

func TestWriteBreakdown(t *testing.T) {
	var buf bytes.Buffer
	scenario := DefaultScenarios()[0]
	WriteBreakdown(&buf, scenario.Name, scenario.Input)

	assertContains(t, buf.String(),
		"Manual calculation for FV(0.06/12, 10, -200, -500, 1):",
		"= 0.005000",
		"= 1 (beginning of period)",
		"Step by step:",
		"compound_factor = (1 + 0.005000)^10 = 1.051140",
		"annuity_factor = (1.051140 - 1) / 0.005000 = ",
		"fv_of_pv = -500 * 1.051140 = -525.57",
		"* (1 + 0.005000) = -2055.83",
		"total_fv = -2055.83 + -525.57 = -2581.40",
	)
}

func TestWriteBreakdownEndOfPeriod(t *testing.T) {
	var buf bytes.Buffer
	WriteBreakdown(&buf, "end", ValuationInput{0.05, 10, -100, 0, EndOfPeriod})
	output := buf.String()

	assertContains(t, output, "= 0 (end of period)", "total_fv = -1257.79 + 0.00 = -1257.79")
	if strings.Contains(output, "* (1 + 0.050000)") {
		t.Fatalf("Expecting no extra compounding for end of period payments:\n%s", output)
	}
}

func TestWriteBreakdownZeroRate(t *testing.T) {
	var buf bytes.Buffer
	WriteBreakdown(&buf, "flat", ValuationInput{0, 10, -100, 50, EndOfPeriod})
	output := buf.String()

	assertContains(t, output, "rate is zero, no compounding", "total_fv = -100 * 10 + 50 = -950.00")
	if strings.Contains(output, "compound_factor") {
		t.Fatalf("Expecting the zero rate breakdown to skip compounding:\n%s", output)
	}
}
