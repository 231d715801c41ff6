package collector

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"ETFSentinel/internal/model"
)

type fetchOutcome struct {
	symbol string
	record *model.QuoteRecord
	err    error
}

// FetchAll fetches every symbol through a fixed pool of workers.
// Failed symbols are logged and skipped; the batch itself never fails.
// Records are appended by a single owner in completion order.
func (c *Collector) FetchAll(ctx context.Context, symbols []string) *model.BatchResult {
	batchID := uuid.NewString()
	workers := c.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	retries := c.MaxRetries
	if retries <= 0 {
		retries = DefaultMaxRetries
	}
	log.Printf("[INFO] batch %s: fetching %d symbols with %d workers", batchID, len(symbols), workers)

	jobs := make(chan string)
	results := make(chan fetchOutcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sym := range jobs {
				results <- c.fetchOne(ctx, sym, retries)
			}
		}()
	}
	go func() {
		for _, sym := range symbols {
			jobs <- sym
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]model.QuoteRecord, 0, len(symbols))
	for out := range results {
		if out.err == nil && out.record != nil {
			records = append(records, *out.record)
			log.Printf("[INFO] batch %s: ✓ %s", batchID, out.symbol)
		} else {
			log.Printf("[WARN] batch %s: ✗ %s: %v", batchID, out.symbol, out.err)
		}
		// throttle pressure on the upstream provider
		_ = c.sleep(context.WithoutCancel(ctx), c.ResultPause)
	}

	log.Printf("[INFO] batch %s: fetched %d/%d symbols", batchID, len(records), len(symbols))
	return &model.BatchResult{
		ID:          batchID,
		Records:     records,
		Count:       len(records),
		Requested:   len(symbols),
		CompletedAt: c.now(),
	}
}

// fetchOne runs FetchQuote and turns a panic into an ordinary failure.
func (c *Collector) fetchOne(ctx context.Context, symbol string, retries int) (out fetchOutcome) {
	out.symbol = symbol
	defer func() {
		if r := recover(); r != nil {
			out.record = nil
			out.err = fmt.Errorf("%s: panic: %v", symbol, r)
		}
	}()
	out.record, out.err = c.FetchQuote(ctx, symbol, retries)
	return out
}
