package recorder

import "time"

// FetchSnapshot summarizes one successful history fetch for a symbol.
type FetchSnapshot struct {
	Symbol     string
	Horizon    string
	BarCount   int
	LastClose  float64
	Volatility float64
	FetchedAt  time.Time
}

// Recorder persists fetch history for operator analysis.
type Recorder interface {
	RecordFetch(snap *FetchSnapshot) error
	Close() error
}
