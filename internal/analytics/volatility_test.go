package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolatility_ConstantSeriesIsZero(t *testing.T) {
	vol, err := Volatility([]float64{100, 100, 100, 100})
	require.NoError(t, err)
	assert.Zero(t, vol)
}

func TestVolatility_KnownSeries(t *testing.T) {
	// Log returns ln(1.05) and ln(103/105); sample stddev 0.048098
	// annualized by sqrt(252).
	vol, err := Volatility([]float64{100, 105, 103})
	require.NoError(t, err)
	assert.InDelta(t, 0.7635, vol, 0.001)
}

func TestVolatility_TooShort(t *testing.T) {
	_, err := Volatility([]float64{100})
	assert.Error(t, err)

	_, err = Volatility(nil)
	assert.Error(t, err)
}

func TestVolatility_TwoClosesIsAnError(t *testing.T) {
	// Two closes give a single return, and a sample standard deviation of
	// one value divides by zero. Must error, never yield NaN.
	vol, err := Volatility([]float64{100, 105})
	require.Error(t, err)
	assert.False(t, math.IsNaN(vol))
}

func TestVolatility_NonPositiveClose(t *testing.T) {
	_, err := Volatility([]float64{100, 0, 101})
	assert.Error(t, err)

	_, err = Volatility([]float64{-1, 100})
	assert.Error(t, err)
}
