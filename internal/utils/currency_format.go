package utils

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// FormatMoney renders an amount with the symbol, separators and precision of
// the ISO currency code, e.g. 1234.5 USD -> "$1,234.50" and 1234.5 COP -> "$1.234,50".
// Unknown codes, and amounts too large for int64 minor units, fall back to the
// plain decimal followed by the code.
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2) + " " + currencyCode
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return amount.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
