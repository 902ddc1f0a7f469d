package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP router over the given handlers.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", h.Hello)
	r.Get("/add/{symbol}", h.AddSymbol)
	r.Get("/strings", h.ListSymbols)
	r.Get("/remove/{symbol}", h.RemoveSymbol)

	r.Get("/history/{symbol}", h.History)
	r.Get("/volatility/{symbol}", h.Volatility)

	return r
}
