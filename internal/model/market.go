package model

import "time"

// Bar is a single candlestick bar as delivered by the upstream provider.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// SymbolSeries pairs a ticker symbol with its historical bars.
type SymbolSeries struct {
	Symbol string `json:"symbol"`
	Bars   []Bar  `json:"bars"`
}
