package main

import (
	"fmt"
	"math"

	"github.com/leekchan/accounting"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func PadRight(str, pad string, length int) string {
	for {
		str += pad
		if len(str) > length {
			return str[0:length]
		}
	}
}

var ac = accounting.Accounting{Symbol: "$", Precision: 2}

func money(amount float64, color bool) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%v", amount)
	}
	colorFunc := nocolor
	if color {
		if amount > 0 {
			colorFunc = green
		} else {
			colorFunc = red
		}
	}
	return colorFunc(ac.FormatMoney(amount))
}

func number(value float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, value)
}

func red(s string) string {
	return fmt.Sprintf("\033[38;5;1m%s\033[0m", s)
}

func green(s string) string {
	return fmt.Sprintf("\033[38;5;2m%s\033[0m", s)
}

func nocolor(s string) string {
	return s
}
