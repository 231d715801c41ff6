package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Instrument is the provider metadata used for display names.
type Instrument struct {
	Symbol    string
	LongName  string
	ShortName string
}
