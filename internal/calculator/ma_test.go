package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ETFSentinel/internal/model"
)

func bars(closes ...float64) []model.OHLCV {
	out := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		out[i] = model.OHLCV{Close: c}
	}
	return out
}

func TestCalculateSMA(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		period  int
		want    float64
		wantErr bool
	}{
		{"uses trailing window", []float64{1, 2, 3, 4, 5}, 3, 4, false},
		{"exact length", []float64{2, 4}, 2, 3, false},
		{"too short", []float64{1, 2}, 3, 0, true},
		{"zero period", []float64{1, 2}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSMA(tt.prices, tt.period)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCalculateMA20AndMA50(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	ma20, err := CalculateMA20(bars(closes...))
	require.NoError(t, err)
	assert.InDelta(t, 50.5, ma20, 1e-9) // mean(41..60)

	ma50, err := CalculateMA50(bars(closes...))
	require.NoError(t, err)
	assert.InDelta(t, 35.5, ma50, 1e-9) // mean(11..60)

	_, err = CalculateMA50(bars(closes[:49]...))
	assert.Error(t, err)
}
