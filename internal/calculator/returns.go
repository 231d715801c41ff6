package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"ETFSentinel/internal/model"
)

var hundred = decimal.NewFromInt(100)

// PercentChange returns (current-base)/base*100.
func PercentChange(base, current float64) (float64, error) {
	if base == 0 {
		return 0, errors.New("base price is zero")
	}
	b := decimal.NewFromFloat(base)
	c := decimal.NewFromFloat(current)
	return c.Sub(b).Div(b).Mul(hundred).InexactFloat64(), nil
}

// CalculatePeriodReturn measures current against the first close of bars.
func CalculatePeriodReturn(current float64, bars []model.OHLCV) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	return PercentChange(bars[0].Close, current)
}

// CalculateChangePercent returns the last bar's change against the previous close.
// Fewer than two bars yields 0.
func CalculateChangePercent(bars []model.OHLCV) float64 {
	n := len(bars)
	if n < 2 {
		return 0
	}
	pct, err := PercentChange(bars[n-2].Close, bars[n-1].Close)
	if err != nil {
		return 0
	}
	return pct
}
