package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"cinevoxa/tvmaze"
)

// showSource is the upstream surface the gateway forwards to. Bodies come
// back as raw bytes so responses pass through unmodified.
type showSource interface {
	RawShows(ctx context.Context) ([]byte, error)
	RawSearch(ctx context.Context, query string) ([]byte, error)
	RawShow(ctx context.Context, id string) ([]byte, error)
	RawCast(ctx context.Context, id string) ([]byte, error)
}

var _ showSource = (*tvmaze.Client)(nil)

// ShowsHandler is the pass-through proxy gateway. Every upstream failure
// collapses into one generic 500 per endpoint with a static message; a true
// not-found and a network timeout present identically to the client.
type ShowsHandler struct {
	Source showSource
}

func NewShowsHandler(source showSource) *ShowsHandler {
	return &ShowsHandler{Source: source}
}

// ListShows proxies GET /api/shows.
func (h *ShowsHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	body, err := h.Source.RawShows(r.Context())
	if err != nil {
		log.Printf("[gateway] list shows failed: %v", err)
		writeGatewayError(w, "Failed to fetch shows")
		return
	}
	writeRawJSON(w, body)
}

// SearchShows proxies GET /api/shows/search?q=. The query is forwarded
// verbatim; an absent query is passed through without local validation.
func (h *ShowsHandler) SearchShows(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	body, err := h.Source.RawSearch(r.Context(), query)
	if err != nil {
		log.Printf("[gateway] search failed q=%q err=%v", query, err)
		writeGatewayError(w, "Search failed")
		return
	}
	writeRawJSON(w, body)
}

// GetShow proxies GET /api/shows/{id}.
func (h *ShowsHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	body, err := h.Source.RawShow(r.Context(), id)
	if err != nil {
		log.Printf("[gateway] show fetch failed id=%s err=%v", id, err)
		writeGatewayError(w, "Show not found")
		return
	}
	writeRawJSON(w, body)
}

// GetCast proxies GET /api/shows/{id}/cast.
func (h *ShowsHandler) GetCast(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	body, err := h.Source.RawCast(r.Context(), id)
	if err != nil {
		log.Printf("[gateway] cast fetch failed id=%s err=%v", id, err)
		writeGatewayError(w, "Failed to fetch cast")
		return
	}
	writeRawJSON(w, body)
}

func writeRawJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeGatewayError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
