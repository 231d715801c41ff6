package collector

import (
	"context"
	"time"

	"ETFSentinel/internal/model"
)

//go:generate mockgen -source=fetcher.go -destination=mock_fetcher_test.go -package=collector -mock_names=Fetcher=MockProvider,MetadataFetcher=MockMetadataFetcher

// Fetcher defines the interface for fetching historical price bars.
type Fetcher interface {
	// FetchDailyBars returns daily bars for a named range such as "3mo", oldest first.
	FetchDailyBars(ctx context.Context, symbol, rng string) ([]model.OHLCV, error)
	// FetchBarsSince returns daily bars from since until now, oldest first.
	FetchBarsSince(ctx context.Context, symbol string, since time.Time) ([]model.OHLCV, error)
	Name() string
}

// MetadataFetcher looks up descriptive instrument data.
type MetadataFetcher interface {
	FetchInstrument(ctx context.Context, symbol string) (*model.Instrument, error)
}
