package model

import "time"

// BatchResult is the outcome of fetching a set of symbols.
// Records are in completion order, not request order.
type BatchResult struct {
	ID          string
	Records     []QuoteRecord
	Count       int
	Requested   int
	CompletedAt time.Time
}
