package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch/internal/acquisition"
	"stockwatch/internal/model"
	"stockwatch/internal/quote"
	"stockwatch/internal/recorder"
	"stockwatch/internal/watchlist"
)

type memoryRecorder struct {
	snaps []*recorder.FetchSnapshot
}

func (m *memoryRecorder) RecordFetch(snap *recorder.FetchSnapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memoryRecorder) Close() error { return nil }

func TestRefreshRecordsWatchlistSnapshots(t *testing.T) {
	svc := acquisition.NewService(&quote.MockProvider{Series: map[string][]model.Bar{
		"AAPL": quote.GenerateBars(180, 21),
		"MSFT": quote.GenerateBars(410, 21),
	}})
	store := watchlist.NewStore(svc)
	ctx := context.Background()
	require.True(t, store.Add(ctx, "AAPL"))
	require.True(t, store.Add(ctx, "MSFT"))

	rec := &memoryRecorder{}
	s := NewScheduler(ctx, store, svc, rec)
	s.RunNow()

	require.Len(t, rec.snaps, 2)
	assert.Equal(t, "AAPL", rec.snaps[0].Symbol)
	assert.Equal(t, "MSFT", rec.snaps[1].Symbol)
	for _, snap := range rec.snaps {
		assert.Equal(t, "short", snap.Horizon)
		assert.Equal(t, 21, snap.BarCount)
		assert.Greater(t, snap.LastClose, 0.0)
		assert.Greater(t, snap.Volatility, 0.0)
	}
}

func TestRefreshEmptyWatchlistDoesNothing(t *testing.T) {
	mock := &quote.MockProvider{}
	svc := acquisition.NewService(mock)
	store := watchlist.NewStore(svc)

	rec := &memoryRecorder{}
	s := NewScheduler(context.Background(), store, svc, rec)
	s.RunNow()

	assert.Empty(t, rec.snaps)
	assert.Empty(t, mock.Calls())
}

func TestRegisterRejectsBadCron(t *testing.T) {
	svc := acquisition.NewService(&quote.MockProvider{})
	s := NewScheduler(context.Background(), watchlist.NewStore(svc), svc, &memoryRecorder{})
	assert.Error(t, s.Register("not a cron expression"))
}
