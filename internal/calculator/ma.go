package calculator

import (
	"errors"

	movingaverage "github.com/RobinUS2/golang-moving-average"

	"ETFSentinel/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	ma := movingaverage.New(period)
	ma.Add(prices[len(prices)-period:]...)
	return ma.Avg(), nil
}

// CalculateMA20 returns the 20-period simple moving average from daily bars.
func CalculateMA20(dailyBars []model.OHLCV) (float64, error) {
	return CalculateSMA(extractCloses(dailyBars), 20)
}

// CalculateMA50 returns the 50-period simple moving average from daily bars.
func CalculateMA50(dailyBars []model.OHLCV) (float64, error) {
	return CalculateSMA(extractCloses(dailyBars), 50)
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
