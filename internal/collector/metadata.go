package collector

import (
	"context"
	"fmt"
	"net/http"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"

	"ETFSentinel/internal/model"
)

// YahooMetadata implements MetadataFetcher with the finance-go quote endpoint.
// The equity shape is used because it carries longName next to shortName.
type YahooMetadata struct {
	getQuote func(symbol string) (*finance.Equity, error)
}

// NewYahooMetadata creates a metadata fetcher. A nil client keeps finance-go's default.
func NewYahooMetadata(client *http.Client) *YahooMetadata {
	if client != nil {
		finance.SetHTTPClient(client)
	}
	return &YahooMetadata{getQuote: equity.Get}
}

func (m *YahooMetadata) FetchInstrument(ctx context.Context, symbol string) (*model.Instrument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := m.getQuote(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("yahoo quote %s: not found", symbol)
	}
	return &model.Instrument{
		Symbol:    q.Symbol,
		LongName:  q.LongName,
		ShortName: q.ShortName,
	}, nil
}
