package analytics

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// tradingDaysPerYear annualizes daily log-return volatility.
const tradingDaysPerYear = 252

// Volatility computes the annualized volatility of a closing-price series as
// the sample standard deviation of its log returns scaled by sqrt(252).
// Requires at least three closes (two returns, the minimum for a sample
// standard deviation); every price must be strictly positive.
func Volatility(closes []float64) (float64, error) {
	if len(closes) < 3 {
		return 0, errors.New("need at least three closes to compute return volatility")
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, errors.New("non-positive close in series")
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}
	sd, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, err
	}
	return sd * math.Sqrt(tradingDaysPerYear), nil
}
