package acquisition

import (
	"fmt"

	"stockwatch/internal/model"
)

// EmptySeriesError reports that a symbol's bar series contained no data.
type EmptySeriesError struct {
	Symbol string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("ticker %s has no data", e.Symbol)
}

// Closes projects a bar series into its closing prices, preserving order and
// length. Empty input is an error: downstream volatility math works on
// log returns and an empty series is better reported than propagated.
func Closes(symbol string, bars []model.Bar) ([]float64, error) {
	if len(bars) == 0 {
		return nil, &EmptySeriesError{Symbol: symbol}
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes, nil
}
