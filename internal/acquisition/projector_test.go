package acquisition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch/internal/model"
	"stockwatch/internal/quote"
)

func TestCloses_ProjectsInOrder(t *testing.T) {
	bars := quote.GenerateBars(180, 30)
	closes, err := Closes("AAPL", bars)
	require.NoError(t, err)
	require.Len(t, closes, len(bars))
	for i := range bars {
		assert.Equal(t, bars[i].Close, closes[i])
	}
}

func TestCloses_EmptySeries(t *testing.T) {
	_, err := Closes("TSLA", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TSLA")

	var empty *EmptySeriesError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "TSLA", empty.Symbol)
}

func TestCloses_SingleBar(t *testing.T) {
	closes, err := Closes("MSFT", []model.Bar{{Close: 410.5}})
	require.NoError(t, err)
	assert.Equal(t, []float64{410.5}, closes)
}
