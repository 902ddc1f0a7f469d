package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockwatch/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
// Safe for concurrent use.
type MockProvider struct {
	// Series maps symbol to the bars History returns for it. Symbols
	// absent from the map fail both History and Probe.
	Series map[string][]model.Bar

	mu    sync.Mutex
	calls []string
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) record(symbol string) {
	m.mu.Lock()
	m.calls = append(m.calls, symbol)
	m.mu.Unlock()
}

// Calls returns the symbols requested so far, in order.
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *MockProvider) History(_ context.Context, symbol string, _ model.Horizon) ([]model.Bar, error) {
	m.record(symbol)
	bars, ok := m.Series[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: unknown symbol %q", symbol)
	}
	return bars, nil
}

func (m *MockProvider) Probe(_ context.Context, symbol string) error {
	m.record(symbol)
	if _, ok := m.Series[symbol]; !ok {
		return fmt.Errorf("mock: unknown symbol %q", symbol)
	}
	return nil
}

// GenerateBars produces a deterministic bar series around a base price.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
