package watchlist

import (
	"context"
	"sync"
)

// Validator decides whether a symbol may enter the watchlist. Satisfied by
// the acquisition service.
type Validator interface {
	Validate(ctx context.Context, symbol string) bool
}

// Store is an in-memory ordered set of ticker symbols shared across request
// handlers. The watchlist lives for the process lifetime only.
type Store struct {
	mu        sync.Mutex
	symbols   []string
	validator Validator
}

// NewStore creates an empty Store guarded by the given validator.
func NewStore(v Validator) *Store {
	return &Store{validator: v}
}

// Add validates the symbol upstream and, on success, appends it to the list.
// Validation happens before the lock is taken so the mutex is never held
// across network I/O. Adding a symbol already present is a no-op that still
// reports success. Returns false when validation rejects the symbol.
func (s *Store) Add(ctx context.Context, symbol string) bool {
	if !s.validator.Validate(ctx, symbol) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.symbols {
		if existing == symbol {
			return true
		}
	}
	s.symbols = append(s.symbols, symbol)
	return true
}

// Remove deletes the first occurrence of the symbol. Returns false when the
// symbol is not on the list.
func (s *Store) Remove(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.symbols {
		if existing == symbol {
			s.symbols = append(s.symbols[:i], s.symbols[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of the watchlist in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}
