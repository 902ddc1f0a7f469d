package model

import "fmt"

// Horizon is a fixed look-back window for history queries.
type Horizon int

const (
	// ShortTerm covers the last month of trading.
	ShortTerm Horizon = iota
	// LongTerm covers the last five years.
	LongTerm
)

// Range returns the provider range code for the horizon.
func (h Horizon) Range() string {
	switch h {
	case ShortTerm:
		return "1mo"
	case LongTerm:
		return "5y"
	default:
		return ""
	}
}

func (h Horizon) String() string {
	switch h {
	case ShortTerm:
		return "short"
	case LongTerm:
		return "long"
	default:
		return fmt.Sprintf("Horizon(%d)", int(h))
	}
}

// ParseHorizon maps the external horizon name to a Horizon.
func ParseHorizon(s string) (Horizon, error) {
	switch s {
	case "short", "":
		return ShortTerm, nil
	case "long":
		return LongTerm, nil
	default:
		return 0, fmt.Errorf("unknown horizon %q", s)
	}
}
