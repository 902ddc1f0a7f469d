package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"stockwatch/internal/acquisition"
	"stockwatch/internal/analytics"
	"stockwatch/internal/model"
	"stockwatch/internal/recorder"
	"stockwatch/internal/watchlist"
)

// Scheduler periodically refreshes short-term history for every watchlist
// symbol and records the results.
type Scheduler struct {
	Cron     *cron.Cron
	Store    *watchlist.Store
	Service  *acquisition.Service
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, store *watchlist.Store, svc *acquisition.Service, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Store:    store,
		Service:  svc,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register registers the refresh task with the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("scheduler stopped")
}

// RunNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	symbols := s.Store.List()
	if len(symbols) == 0 {
		log.Debug("refresh: watchlist empty, nothing to do")
		return
	}
	log.Infof("refreshing %d watchlist symbols", len(symbols))

	now := time.Now()
	for _, series := range s.Service.FetchBatch(s.Ctx, symbols, model.ShortTerm) {
		snap := &recorder.FetchSnapshot{
			Symbol:    series.Symbol,
			Horizon:   model.ShortTerm.String(),
			BarCount:  len(series.Bars),
			FetchedAt: now,
		}
		closes, err := acquisition.Closes(series.Symbol, series.Bars)
		if err == nil {
			snap.LastClose = closes[len(closes)-1]
			if vol, err := analytics.Volatility(closes); err == nil {
				snap.Volatility = vol
			} else {
				log.WithField("symbol", series.Symbol).Warnf("volatility skipped: %v", err)
			}
		} else {
			log.WithField("symbol", series.Symbol).Warnf("close projection skipped: %v", err)
		}
		if err := s.Recorder.RecordFetch(snap); err != nil {
			log.WithField("symbol", series.Symbol).Errorf("record fetch: %v", err)
		}
	}
}
