package main

import (
	"fmt"
	"math"
	"strings"
)

type Timing int

const (
	EndOfPeriod Timing = iota
	BeginningOfPeriod
)

func (timing Timing) String() string {
	if timing == BeginningOfPeriod {
		return "beginning"
	}
	return "end"
}

func ParseTiming(s string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "end":
		return EndOfPeriod, nil
	case "1", "begin", "beginning":
		return BeginningOfPeriod, nil
	}
	return EndOfPeriod, fmt.Errorf("Unknown payment timing %q (expecting 'end' or 'beginning')", s)
}

type ValuationInput struct {
	Rate         float64
	Periods      float64
	Payment      float64
	PresentValue float64
	Timing       Timing
}

func (in ValuationInput) String() string {
	return fmt.Sprintf(
		"rate=%.6f, nper=%g, pmt=%g, pv=%g, type=%d", in.Rate, in.Periods, in.Payment, in.PresentValue, int(in.Timing),
	)
}

// Breakdown holds the intermediate values of a single future value
// computation. Linear is set when the zero-rate path was taken, in which case
// the factors are left at zero.
type Breakdown struct {
	Input            ValuationInput
	Linear           bool
	CompoundFactor   float64
	AnnuityFactor    float64
	FVOfPresentValue float64
	FVOfAnnuity      float64
	Total            float64
}

func Explain(in ValuationInput) Breakdown {
	if in.Rate == 0 {
		return Breakdown{
			Input:            in,
			Linear:           true,
			FVOfPresentValue: in.PresentValue,
			FVOfAnnuity:      in.Payment * in.Periods,
			Total:            in.Payment*in.Periods + in.PresentValue,
		}
	}

	compoundFactor := math.Pow(1+in.Rate, in.Periods)
	annuityFactor := (compoundFactor - 1) / in.Rate
	fvOfPresentValue := in.PresentValue * compoundFactor

	fvOfAnnuity := in.Payment * annuityFactor
	if in.Timing == BeginningOfPeriod {
		fvOfAnnuity = in.Payment * annuityFactor * (1 + in.Rate)
	}

	return Breakdown{
		in,
		false,
		compoundFactor,
		annuityFactor,
		fvOfPresentValue,
		fvOfAnnuity,
		fvOfAnnuity + fvOfPresentValue,
	}
}

// FutureValue is the value of the payment stream plus the compounded present
// value. Outflows stay negative, so paying in yields a negative result.
func FutureValue(in ValuationInput) float64 {
	return Explain(in).Total
}

// FV follows the spreadsheet convention, where the result carries the
// opposite sign of the cash flows that produced it.
func FV(rate, nper, pmt, pv float64, beginningOfPeriod bool) float64 {
	timing := EndOfPeriod
	if beginningOfPeriod {
		timing = BeginningOfPeriod
	}
	return Spreadsheet.Apply(ValuationInput{rate, nper, pmt, pv, timing})
}

type Convention int

const (
	CashFlow Convention = iota
	Spreadsheet
)

func (convention Convention) String() string {
	if convention == Spreadsheet {
		return "spreadsheet"
	}
	return "cashflow"
}

func (convention Convention) Apply(in ValuationInput) float64 {
	fv := FutureValue(in)
	if convention == Spreadsheet {
		return -fv
	}
	return fv
}

func (convention Convention) Other() Convention {
	if convention == Spreadsheet {
		return CashFlow
	}
	return Spreadsheet
}

func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cashflow", "cash-flow":
		return CashFlow, nil
	case "spreadsheet", "excel":
		return Spreadsheet, nil
	}
	return CashFlow, fmt.Errorf("Unknown sign convention %q (expecting 'cashflow' or 'spreadsheet')", s)
}
