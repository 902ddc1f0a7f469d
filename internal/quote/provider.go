package quote

import (
	"context"

	"stockwatch/internal/model"
)

// Provider defines the interface for an upstream equities history source.
type Provider interface {
	// History returns the bar series for the symbol over the horizon's
	// window, exactly as delivered by the provider.
	History(ctx context.Context, symbol string, horizon model.Horizon) ([]model.Bar, error)
	// Probe issues a minimal one-minute-interval history request. A nil
	// error means the provider recognizes the symbol.
	Probe(ctx context.Context, symbol string) error
	Name() string
}
