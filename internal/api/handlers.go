package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"stockwatch/internal/acquisition"
	"stockwatch/internal/analytics"
	"stockwatch/internal/model"
	"stockwatch/internal/watchlist"
)

// Handlers binds the HTTP routes to the watchlist store and the acquisition
// service.
type Handlers struct {
	Store   *watchlist.Store
	Service *acquisition.Service
}

// NewHandlers creates the handler set.
func NewHandlers(store *watchlist.Store, svc *acquisition.Service) *Handlers {
	return &Handlers{Store: store, Service: svc}
}

// Hello handles GET / as a liveness greeting.
func (h *Handlers) Hello(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("Welcome to the stock analysis API!"))
}

// AddSymbol handles GET /add/{symbol}. 201 on success, 400 when the upstream
// provider rejects the symbol.
func (h *Handlers) AddSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if !h.Store.Add(r.Context(), symbol) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListSymbols handles GET /strings with the comma-space-joined watchlist.
func (h *Handlers) ListSymbols(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte(strings.Join(h.Store.List(), ", ")))
}

// RemoveSymbol handles GET /remove/{symbol}. 200 on removal, 404 when the
// symbol is not on the list.
func (h *Handlers) RemoveSymbol(w http.ResponseWriter, r *http.Request) {
	if !h.Store.Remove(chi.URLParam(r, "symbol")) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func horizonParam(r *http.Request) (model.Horizon, error) {
	return model.ParseHorizon(r.URL.Query().Get("horizon"))
}

// History handles GET /history/{symbol}?horizon=short|long with the raw bar
// series as JSON. 400 on an unknown horizon, 502 when the provider fails.
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	horizon, err := horizonParam(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	results := h.Service.FetchBatch(r.Context(), []string{symbol}, horizon)
	if len(results) == 0 {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	writeJSON(w, results[0])
}

type volatilityResponse struct {
	Symbol     string  `json:"symbol"`
	Horizon    string  `json:"horizon"`
	Bars       int     `json:"bars"`
	Volatility float64 `json:"volatility"`
}

// Volatility handles GET /volatility/{symbol}?horizon=short|long with the
// annualized log-return volatility of the close series. 422 when the series
// is empty or too short to produce returns.
func (h *Handlers) Volatility(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	horizon, err := horizonParam(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	results := h.Service.FetchBatch(r.Context(), []string{symbol}, horizon)
	if len(results) == 0 {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	closes, err := acquisition.Closes(symbol, results[0].Bars)
	if err != nil {
		var empty *acquisition.EmptySeriesError
		if errors.As(err, &empty) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	vol, err := analytics.Volatility(closes)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, volatilityResponse{
		Symbol:     symbol,
		Horizon:    horizon.String(),
		Bars:       len(results[0].Bars),
		Volatility: vol,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %v", err)
	}
}
