package roe

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// NotANumber is rendered for NaN and infinite values.
const NotANumber = "n/a"

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(-math.MaxInt64)
)

// Display carries human-readable renderings of a Result.
type Display struct {
	NOI          string `json:"noi"`
	Equity       string `json:"equity"`
	UnleveredROE string `json:"unleveredRoe"`
	LeveredROE   string `json:"leveredRoe"`
}

// Format renders money in USD and percentages with two decimals.
func Format(r Result) Display {
	return Display{
		NOI:          FormatMoney(r.NOI),
		Equity:       FormatMoney(r.Equity),
		UnleveredROE: FormatPercent(r.UnleveredROE),
		LeveredROE:   FormatPercent(r.LeveredROE),
	}
}

// FormatMoney renders amount as USD, rounded half away from zero to cents.
// Amounts whose cents do not fit in an int64 are rendered without digit
// grouping.
func FormatMoney(amount float64) string {
	if !finite(amount) {
		return NotANumber
	}

	cur := money.GetCurrency(money.USD)
	factor := decimal.New(1, int32(cur.Fraction))
	cents := decimal.NewFromFloat(amount).Mul(factor).Round(0)

	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		sign := ""
		if cents.IsNegative() {
			sign = "-"
		}
		return sign + cur.Grapheme + cents.Abs().Div(factor).StringFixed(int32(cur.Fraction))
	}
	return money.New(cents.IntPart(), money.USD).Display()
}

// FormatPercent renders a percentage value such as 14.4 as "14.40%".
func FormatPercent(pct float64) string {
	if !finite(pct) {
		return NotANumber
	}
	return decimal.NewFromFloat(pct).StringFixed(2) + "%"
}
