// Package roe computes return-on-equity figures for a rental property.
//
// All arithmetic is done at full float64 precision. Rounding happens only in
// Format, at presentation time.
package roe

import (
	"errors"
	"math"
)

// ErrOutOfRange means the figures are too large or too small for the
// returns to be represented as finite numbers.
var ErrOutOfRange = errors.New("figures out of range")

// Inputs are the five cash-flow figures of one property.
type Inputs struct {
	AnnualRentalIncome float64
	AnnualExpenses     float64
	CurrentMarketValue float64
	CurrentLoanBalance float64
	AnnualDebtService  float64
}

// Result holds the derived figures. Percentages are already multiplied by
// 100, so 3.35 means 3.35%.
type Result struct {
	NOI          float64
	Equity       float64
	UnleveredROE float64
	LeveredROE   float64
}

// Compute derives NOI, equity and both ROE percentages from in. When equity
// is zero both percentages are 0. Any input or result that is not finite
// fails with ErrOutOfRange.
func Compute(in Inputs) (Result, error) {
	if !finite(in.AnnualRentalIncome, in.AnnualExpenses, in.CurrentMarketValue, in.CurrentLoanBalance, in.AnnualDebtService) {
		return Result{}, ErrOutOfRange
	}

	noi := in.AnnualRentalIncome - in.AnnualExpenses
	equity := in.CurrentMarketValue - in.CurrentLoanBalance

	r := Result{NOI: noi, Equity: equity}
	if equity != 0 {
		r.UnleveredROE = noi * 100 / equity
		r.LeveredROE = (noi - in.AnnualDebtService) * 100 / equity
	}

	if !finite(r.NOI, r.Equity, r.UnleveredROE, r.LeveredROE) {
		return Result{}, ErrOutOfRange
	}
	return r, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
