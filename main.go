package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	var (
		app        = kingpin.New("fvcheck", "Check a future value implementation against reference values")
		verbose    = app.Flag("verbose", "Verbose output").Short('v').Bool()
		debug      = app.Flag("debug", "Log intermediate values (implies --verbose)").Bool()
		color      = app.Flag("color", "Colorize output").Default(strconv.FormatBool(terminal)).Bool()
		convention = app.Flag("convention", "Sign convention for computed values (cashflow, spreadsheet)").Default("cashflow").Enum("cashflow", "cash-flow", "spreadsheet", "excel")

		checkCmd   = app.Command("check", "Run the reference scenarios and print a pass/fail report").Default()
		tolerance  = checkCmd.Flag("tolerance", "Absolute tolerance for a match").Default(strconv.FormatFloat(DefaultTolerance, 'f', -1, 64)).Float64()
		explainNum = checkCmd.Flag("explain", "Scenario to recompute step by step after the report (0 to skip)").Default("1").Int()
		strict     = checkCmd.Flag("strict", "Exit with status 1 if any scenario does not match").Bool()

		explainCmd = app.Command("explain", "Recompute one reference scenario step by step")
		explainArg = explainCmd.Arg("scenario", "Scenario number").Required().Int()

		computeCmd = app.Command("compute", "Compute a single future value")
		rate       = computeCmd.Flag("rate", "Interest rate per period").Required().Float64()
		nper       = computeCmd.Flag("nper", "Number of periods").Required().Float64()
		pmt        = computeCmd.Flag("pmt", "Payment per period (outflows negative)").Default("0").Float64()
		pv         = computeCmd.Flag("pv", "Present value").Default("0").Float64()
		timingFlag = computeCmd.Flag("timing", "Payment timing (end, beginning)").Default("end").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := NewLogger().WithDebug(*debug)
	if *verbose || *debug {
		log = log.ToWriter(os.Stderr)
	}

	signs, err := ParseConvention(*convention)
	app.FatalIfError(err, "")

	scenarios := DefaultScenarios()

	switch command {
	case checkCmd.FullCommand():
		results := Run(scenarios, signs, *tolerance, log.WithPrefix("[check] "))
		WriteReport(os.Stdout, results, *color)

		if *explainNum != 0 {
			scenario, err := ScenarioByNumber(scenarios, *explainNum)
			app.FatalIfError(err, "--explain")
			WriteBreakdown(os.Stdout, scenario.Name, scenario.Input)
		}

		if *strict && Passed(results) != len(results) {
			os.Exit(1)
		}
	case explainCmd.FullCommand():
		scenario, err := ScenarioByNumber(scenarios, *explainArg)
		app.FatalIfError(err, "")
		WriteBreakdown(os.Stdout, scenario.Name, scenario.Input)
	case computeCmd.FullCommand():
		timing, err := ParseTiming(*timingFlag)
		app.FatalIfError(err, "--timing")

		in := ValuationInput{*rate, *nper, *pmt, *pv, timing}
		log.Debug("compute %s", in)

		WriteBreakdown(os.Stdout, fmt.Sprintf("FV(%g, %g, %g, %g, %d)", *rate, *nper, *pmt, *pv, int(timing)), in)
		_, err = fmt.Fprintf(os.Stdout, "\nFuture value (%s): %s\n", signs, money(signs.Apply(in), *color))
		check(err)
	}
}
