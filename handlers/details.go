package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"cinevoxa/services/details"
)

// detailResolver resolves one identifier to an item plus its cast.
type detailResolver interface {
	Resolve(ctx context.Context, id string) (details.Resolution, error)
}

var _ detailResolver = (*details.Resolver)(nil)

// DetailsHandler serves the details-page bundle: the resolved item and its
// cast in one response.
type DetailsHandler struct {
	Resolver detailResolver
}

func NewDetailsHandler(resolver detailResolver) *DetailsHandler {
	return &DetailsHandler{Resolver: resolver}
}

// GetDetails handles GET /api/details/{id}. A missing item is a 404 with a
// found:false payload, never an error page; the UI renders it as not-found.
func (h *DetailsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		http.Error(w, "show id is required", http.StatusBadRequest)
		return
	}

	res, err := h.Resolver.Resolve(r.Context(), id)
	if err != nil {
		// Only cancellation reaches here; the client went away.
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !res.Found {
		w.WriteHeader(http.StatusNotFound)
	}
	json.NewEncoder(w).Encode(res)
}
