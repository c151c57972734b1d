package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"cinevoxa/services/watchlist"
)

type watchlistService interface {
	IDs() []string
	Toggle(id string) (bool, error)
}

var _ watchlistService = (*watchlist.Store)(nil)

// WatchlistHandler exposes watchlist membership and toggling.
type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

// List handles GET /api/watchlist and returns the persisted ids.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.IDs())
}

// ToggleResponse reports the new membership after a toggle.
type ToggleResponse struct {
	ID          string `json:"id"`
	Watchlisted bool   `json:"watchlisted"`
}

// Toggle handles POST /api/watchlist/{id}/toggle. Toggling the same id twice
// returns the watchlist to its original membership.
func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])

	watchlisted, err := h.Service.Toggle(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, watchlist.ErrIDRequired) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ToggleResponse{ID: id, Watchlisted: watchlisted})
}
