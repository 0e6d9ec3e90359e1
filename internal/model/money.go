package model

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits kept by DECIMAL(10,2) columns.
const Scale = 2

// Money rounds half away from zero to the column scale.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// moneyLimit is the first value that no longer fits DECIMAL(10,2).
var moneyLimit = decimal.New(1, 10-Scale)

// FitsMoney reports whether d, once rounded, fits a DECIMAL(10,2) column.
func FitsMoney(d decimal.Decimal) bool {
	return Money(d).Abs().LessThan(moneyLimit)
}
