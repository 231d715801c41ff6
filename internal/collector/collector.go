package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ETFSentinel/internal/calculator"
	"ETFSentinel/internal/model"
)

const (
	historyRange   = "3mo"
	minHistoryBars = 50

	DefaultWorkers     = 5
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = 500 * time.Millisecond
	DefaultResultPause = 100 * time.Millisecond
)

var (
	// ErrNotFound means no record could be produced for a symbol.
	ErrNotFound = errors.New("no data")
	// ErrInsufficientData means the provider returned fewer than 50 bars.
	ErrInsufficientData = errors.New("insufficient data")
)

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher  Fetcher
	Metadata MetadataFetcher

	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
	ResultPause time.Duration

	// Sleep and Now are replaced in tests.
	Sleep func(ctx context.Context, d time.Duration) error
	Now   func() time.Time
}

// NewCollector creates a new Collector with default limits.
func NewCollector(fetcher Fetcher, metadata MetadataFetcher) *Collector {
	return &Collector{
		Fetcher:     fetcher,
		Metadata:    metadata,
		Workers:     DefaultWorkers,
		MaxRetries:  DefaultMaxRetries,
		BaseBackoff: DefaultBaseBackoff,
		ResultPause: DefaultResultPause,
		Sleep:       sleepContext,
		Now:         time.Now,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Collector) sleep(ctx context.Context, d time.Duration) error {
	if c.Sleep == nil {
		return sleepContext(ctx, d)
	}
	return c.Sleep(ctx, d)
}

func (c *Collector) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Backoff returns the wait before the given attempt: base * 2^attempt.
func (c *Collector) Backoff(attempt int) time.Duration {
	base := c.BaseBackoff
	if base <= 0 {
		base = DefaultBaseBackoff
	}
	return base << attempt
}

// FetchQuote fetches history for symbol and computes its QuoteRecord.
// Provider errors are retried with exponential backoff; a short history is not.
// The returned error always wraps ErrNotFound.
func (c *Collector) FetchQuote(ctx context.Context, symbol string, maxRetries int) (*model.QuoteRecord, error) {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.Backoff(attempt)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", symbol, ErrNotFound, err)
			}
			log.Printf("[INFO] retry %d/%d for %s after %v delay", attempt+1, maxRetries, symbol, wait)
		}

		bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, historyRange)
		if err == nil && len(bars) < minHistoryBars {
			log.Printf("[WARN] insufficient data for %s: %d bars", symbol, len(bars))
			return nil, fmt.Errorf("%s: %w: %w", symbol, ErrNotFound, ErrInsufficientData)
		}
		if err == nil {
			var rec *model.QuoteRecord
			rec, err = c.buildRecord(ctx, symbol, bars)
			if err == nil {
				return rec, nil
			}
		}

		lastErr = err
		if attempt < maxRetries-1 {
			log.Printf("[WARN] attempt %d failed for %s: %v", attempt+1, symbol, err)
			continue
		}
		log.Printf("[ERROR] all retries failed for %s: %v", symbol, err)
	}
	return nil, fmt.Errorf("%s: %w: %w", symbol, ErrNotFound, lastErr)
}

func (c *Collector) buildRecord(ctx context.Context, symbol string, bars []model.OHLCV) (*model.QuoteRecord, error) {
	last := bars[len(bars)-1]
	price := last.Close

	ma20, err := calculator.CalculateMA20(bars)
	if err != nil {
		return nil, fmt.Errorf("ma20: %w", err)
	}
	ma50, err := calculator.CalculateMA50(bars)
	if err != nil {
		return nil, fmt.Errorf("ma50: %w", err)
	}

	now := c.now()
	ytd := c.ytdReturn(ctx, symbol, price, now)
	year := c.yearReturn(ctx, symbol, price, now, ytd)

	return &model.QuoteRecord{
		Symbol:        symbol,
		Name:          c.displayName(ctx, symbol),
		Price:         price,
		MA20:          ma20,
		MA50:          ma50,
		ReturnRate:    ytd,
		YearReturn:    year,
		Volume:        int64(last.Volume),
		BelowMA50:     price < ma50,
		BelowMA20:     price < ma20,
		ChangePercent: calculator.CalculateChangePercent(bars),
	}, nil
}

// ytdReturn measures price against the first close of the calendar year. Failures yield 0.
func (c *Collector) ytdReturn(ctx context.Context, symbol string, price float64, now time.Time) float64 {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	bars, err := c.Fetcher.FetchBarsSince(ctx, symbol, yearStart)
	if err != nil {
		log.Printf("[WARN] YTD history for %s failed: %v", symbol, err)
		return 0
	}
	ret, err := calculator.CalculatePeriodReturn(price, bars)
	if err != nil {
		return 0
	}
	return ret
}

// yearReturn measures price against the close 365 days ago, falling back to ytd.
func (c *Collector) yearReturn(ctx context.Context, symbol string, price float64, now time.Time, ytd float64) float64 {
	bars, err := c.Fetcher.FetchBarsSince(ctx, symbol, now.AddDate(0, 0, -365))
	if err != nil {
		log.Printf("[WARN] 1y history for %s failed: %v", symbol, err)
		return ytd
	}
	if len(bars) < 2 {
		return ytd
	}
	ret, err := calculator.CalculatePeriodReturn(price, bars)
	if err != nil {
		return ytd
	}
	return ret
}

func (c *Collector) displayName(ctx context.Context, symbol string) string {
	fallback := symbol + " ETF"
	if c.Metadata == nil {
		return fallback
	}
	inst, err := c.Metadata.FetchInstrument(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] metadata lookup for %s failed: %v", symbol, err)
		return fallback
	}
	if inst == nil {
		return fallback
	}
	switch {
	case inst.LongName != "":
		return inst.LongName
	case inst.ShortName != "":
		return inst.ShortName
	default:
		return fallback
	}
}
