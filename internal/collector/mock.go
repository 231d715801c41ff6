package collector

import (
	"context"
	"hash/fnv"
	"time"

	"ETFSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// It serves both bars and instrument metadata.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
	Names     map[string]string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol, _ string) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.basePrice(symbol), 63, time.Now()), nil
}

func (m *MockFetcher) FetchBarsSince(_ context.Context, symbol string, since time.Time) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	days := int(time.Since(since).Hours()/24) * 5 / 7
	if days < 1 {
		days = 1
	}
	return generateMockBars(m.basePrice(symbol), days, time.Now()), nil
}

func (m *MockFetcher) FetchInstrument(_ context.Context, symbol string) (*model.Instrument, error) {
	return &model.Instrument{Symbol: symbol, LongName: m.Names[symbol]}, nil
}

// basePrice gives each symbol a stable, distinct price level.
func (m *MockFetcher) basePrice(symbol string) float64 {
	if m.Price > 0 {
		return m.Price
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	return 20 + float64(h.Sum32()%480)
}

func generateMockBars(basePrice float64, count int, end time.Time) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   end.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
