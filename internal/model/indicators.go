package model

// QuoteRecord holds the computed metrics for one ETF.
// It is built once per request and never mutated afterwards.
type QuoteRecord struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	MA20          float64 `json:"ma20"`
	MA50          float64 `json:"ma50"`
	ReturnRate    float64 `json:"returnRate"` // YTD, percent
	YearReturn    float64 `json:"yearReturn"` // trailing 365 days, percent
	Volume        int64   `json:"volume"`
	BelowMA50     bool    `json:"belowMA50"`
	BelowMA20     bool    `json:"belowMA20"`
	ChangePercent float64 `json:"changePercent"`
}
