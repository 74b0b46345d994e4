package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/olekukonko/tablewriter"
)

const sourceWidth = 72

func mark(pass bool, color bool) string {
	if !color {
		if pass {
			return "✓"
		}
		return "✘"
	}
	if pass {
		return green("✓")
	}
	return red("✘")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (result *Result) WriteHumanReadable(writer io.Writer, color bool) {
	scenario := result.Scenario
	fmt.Fprintf(writer, "\n%s\n", scenario.Name)
	if scenario.Source != "" {
		fmt.Fprintf(writer, "%s\n", indent(wordwrap.WrapString(scenario.Source, sourceWidth), "  "))
	}
	fmt.Fprintf(writer, "Parameters: %s\n", scenario.Input)
	fmt.Fprintf(writer, "Calculated: %s\n", number(result.Computed, 2))
	fmt.Fprintf(writer, "Expected:   %s\n", number(scenario.Expected, 2))
	fmt.Fprintf(writer, "Difference: %s\n", number(result.Difference, 2))
	fmt.Fprintf(writer, "Match: %s\n", mark(result.Pass, color))
	if other := Reconcile(result); other != nil {
		fmt.Fprintf(writer, "  (matches under the %s convention: %s)\n", other.Convention, number(other.Computed, 2))
	}
}

func WriteReport(writer io.Writer, results []*Result, color bool) {
	convention := CashFlow
	tolerance := DefaultTolerance
	if len(results) > 0 {
		convention = results[0].Convention
		tolerance = results[0].Tolerance
	}

	io.WriteString(writer, "Testing future value implementation:\n")
	fmt.Fprintf(writer, "Sign convention: %s, tolerance: %s\n", convention, number(tolerance, 2))
	io.WriteString(writer, strings.Repeat("=", 60)+"\n")

	for _, result := range results {
		result.WriteHumanReadable(writer, color)
	}

	io.WriteString(writer, "\n")

	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"#", "Scenario", "Calculated", "Expected", "Difference", "Match"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
	})
	for index, result := range results {
		table.Append([]string{
			fmt.Sprintf("%d", index+1),
			result.Scenario.Name,
			money(result.Computed, color),
			money(result.Scenario.Expected, false),
			money(result.Difference, false),
			mark(result.Pass, color),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Passed", fmt.Sprintf("%d/%d", Passed(results), len(results))})
	table.Render()
}

func (b Breakdown) WriteHumanReadable(writer io.Writer) {
	in := b.Input
	width := len("present_value") + 1
	for _, row := range [][2]string{
		{"rate", fmt.Sprintf("%.6f", in.Rate)},
		{"nper", fmt.Sprintf("%g", in.Periods)},
		{"pmt", fmt.Sprintf("%g", in.Payment)},
		{"pv", fmt.Sprintf("%g", in.PresentValue)},
		{"type", fmt.Sprintf("%d (%s of period)", int(in.Timing), in.Timing)},
	} {
		fmt.Fprintf(writer, "%s= %s\n", PadRight(row[0], " ", width), row[1])
	}

	io.WriteString(writer, "\nStep by step:\n")

	if b.Linear {
		fmt.Fprintf(writer, "rate is zero, no compounding\n")
		fmt.Fprintf(writer, "total_fv = %g * %g + %g = %s\n", in.Payment, in.Periods, in.PresentValue, number(b.Total, 2))
		return
	}

	fmt.Fprintf(writer, "compound_factor = (1 + %.6f)^%g = %s\n", in.Rate, in.Periods, number(b.CompoundFactor, 6))
	fmt.Fprintf(writer, "annuity_factor = (%s - 1) / %.6f = %s\n", number(b.CompoundFactor, 6), in.Rate, number(b.AnnuityFactor, 6))
	fmt.Fprintf(writer, "fv_of_pv = %g * %s = %s\n", in.PresentValue, number(b.CompoundFactor, 6), number(b.FVOfPresentValue, 2))
	if in.Timing == BeginningOfPeriod {
		fmt.Fprintf(writer, "fv_of_annuity = %g * %s * (1 + %.6f) = %s\n", in.Payment, number(b.AnnuityFactor, 6), in.Rate, number(b.FVOfAnnuity, 2))
	} else {
		fmt.Fprintf(writer, "fv_of_annuity = %g * %s = %s\n", in.Payment, number(b.AnnuityFactor, 6), number(b.FVOfAnnuity, 2))
	}
	fmt.Fprintf(writer, "total_fv = %s + %s = %s\n", number(b.FVOfAnnuity, 2), number(b.FVOfPresentValue, 2), number(b.Total, 2))
}

func WriteBreakdown(writer io.Writer, title string, in ValuationInput) {
	io.WriteString(writer, "\n"+strings.Repeat("=", 60)+"\n")
	fmt.Fprintf(writer, "Manual calculation for %s:\n", title)
	Explain(in).WriteHumanReadable(writer)
}
