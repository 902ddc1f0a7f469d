package acquisition

import (
	"context"

	log "github.com/sirupsen/logrus"

	"stockwatch/internal/model"
	"stockwatch/internal/quote"
)

// Service batch-fetches historical bars and validates symbols against the
// upstream provider. It holds no state beyond the provider reference.
type Service struct {
	Provider quote.Provider
}

// NewService creates a new acquisition Service.
func NewService(p quote.Provider) *Service {
	return &Service{Provider: p}
}

// Validate reports whether the upstream provider recognizes the symbol. Any
// provider error, of any category, counts as rejection.
func (s *Service) Validate(ctx context.Context, symbol string) bool {
	if err := s.Provider.Probe(ctx, symbol); err != nil {
		log.WithFields(log.Fields{"symbol": symbol, "source": s.Provider.Name()}).
			Debugf("symbol validation failed: %v", err)
		return false
	}
	return true
}

// FetchBatch retrieves the bar series for each symbol over the given horizon.
// Requests are issued sequentially in input order. A symbol whose fetch fails
// is logged and dropped from the result; the surviving entries preserve input
// order. FetchBatch itself never fails.
func (s *Service) FetchBatch(ctx context.Context, symbols []string, horizon model.Horizon) []model.SymbolSeries {
	out := make([]model.SymbolSeries, 0, len(symbols))
	for _, symbol := range symbols {
		bars, err := s.Provider.History(ctx, symbol, horizon)
		if err != nil {
			log.WithFields(log.Fields{"symbol": symbol, "horizon": horizon.String()}).
				Warnf("failed to retrieve ticker: %v", err)
			continue
		}
		out = append(out, model.SymbolSeries{Symbol: symbol, Bars: bars})
	}
	return out
}
