package handlers

import (
	"encoding/json"
	"net/http"

	"cinevoxa/services/catalog"
)

// catalogSession is the browsing-session surface the home handler needs.
type catalogSession interface {
	Hero() catalog.HeroState
	Rows(watchlist map[string]struct{}) catalog.HomeRows
	SetQuery(query string)
	SearchState() catalog.SearchState
}

var _ catalogSession = (*catalog.Session)(nil)

// watchlistMembers provides watchlist membership for the watchlist row.
type watchlistMembers interface {
	Members() map[string]struct{}
}

// HomeHandler serves the home-feed payload backed by the catalog session.
type HomeHandler struct {
	Session   catalogSession
	Watchlist watchlistMembers
}

func NewHomeHandler(session catalogSession, watchlist watchlistMembers) *HomeHandler {
	return &HomeHandler{Session: session, Watchlist: watchlist}
}

// HomeResponse is the combined payload for GET /api/home: the current hero
// slot plus every derived row, computed fresh per request.
type HomeResponse struct {
	Hero catalog.HeroState `json:"hero"`
	Rows catalog.HomeRows  `json:"rows"`
}

// GetHome returns the hero state and all display rows.
func (h *HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	var members map[string]struct{}
	if h.Watchlist != nil {
		members = h.Watchlist.Members()
	}

	resp := HomeResponse{
		Hero: h.Session.Hero(),
		Rows: h.Session.Rows(members),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Search feeds GET /api/home/search?q= into the session's debounced pipeline
// and returns the current snapshot. The debounce means a fast typist's
// intermediate queries never reach upstream; clients poll for settled
// results.
func (h *HomeHandler) Search(w http.ResponseWriter, r *http.Request) {
	if q, ok := r.URL.Query()["q"]; ok && len(q) > 0 {
		h.Session.SetQuery(q[0])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.SearchState())
}
