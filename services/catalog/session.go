package catalog

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"cinevoxa/models"
)

const (
	heroRotatePeriod = 7 * time.Second
	searchDebounce   = 400 * time.Millisecond
)

// showClient is the remote surface the session depends on.
type showClient interface {
	ListShows(ctx context.Context) ([]models.RawShow, error)
	SearchShows(ctx context.Context, query string) ([]models.RawSearchResult, error)
}

// SearchState is a snapshot of the debounced search pipeline.
type SearchState struct {
	Query       string               `json:"query"`
	IsSearching bool                 `json:"isSearching"`
	Results     []models.CatalogItem `json:"results"`
}

// HeroState is a snapshot of the rotating hero banner.
type HeroState struct {
	Item  *models.CatalogItem `json:"item,omitempty"`
	Index int                 `json:"index"`
	Count int                 `json:"count"`
}

// Session owns the browsing state of the application: the fetched catalog,
// the rotating hero banner, and the debounced search pipeline. All mutation
// happens under one mutex; background work (rotation loop, debounce timer,
// in-flight search) is torn down by Stop.
type Session struct {
	client showClient

	mu            sync.Mutex
	catalog       []models.CatalogItem
	searchQuery   string
	searchResults []models.CatalogItem
	isSearching   bool
	searchGen     uint64
	searchCancel  context.CancelFunc
	debounce      *time.Timer
	heroIndex     int
	heroStop      chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	bg     conc.WaitGroup

	// overridable for tests
	rotatePeriod  time.Duration
	debounceDelay time.Duration
}

func NewSession(client showClient) *Session {
	return &Session{
		client:        client,
		rotatePeriod:  heroRotatePeriod,
		debounceDelay: searchDebounce,
	}
}

// Start fetches the catalog in the background and begins hero rotation.
// A failed fetch degrades silently to an empty remote catalog; the local
// heroes keep rotating regardless.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.restartHeroLocked()
	s.mu.Unlock()

	s.bg.Go(s.loadCatalog)
}

// Stop tears down the rotation loop, any pending debounce, and any in-flight
// search, then waits for background work to finish.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	if s.searchCancel != nil {
		s.searchCancel()
		s.searchCancel = nil
	}
	if s.heroStop != nil {
		close(s.heroStop)
		s.heroStop = nil
	}
	s.mu.Unlock()

	s.bg.Wait()
}

func (s *Session) loadCatalog() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	raws, err := s.client.ListShows(ctx)
	if err != nil {
		log.Printf("[catalog] initial fetch failed, continuing with empty remote catalog: %v", err)
		return
	}

	items := NormalizeAll(raws)
	log.Printf("[catalog] loaded %d shows", len(items))

	s.mu.Lock()
	s.catalog = items
	s.restartHeroLocked()
	s.mu.Unlock()
}

// Catalog returns the normalized remote catalog in fetch order.
func (s *Session) Catalog() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CatalogItem, len(s.catalog))
	copy(items, s.catalog)
	return items
}

// FetchedItems returns the union of fetched catalog and search results,
// the in-memory cache the detail resolver consults before going remote.
func (s *Session) FetchedItems() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CatalogItem, 0, len(s.catalog)+len(s.searchResults))
	items = append(items, s.catalog...)
	items = append(items, s.searchResults...)
	return items
}

// Rows computes the home display rows for the given watchlist membership.
func (s *Session) Rows(watchlist map[string]struct{}) HomeRows {
	return BuildRows(s.Catalog(), watchlist)
}

// Hero returns the current hero banner state. The index is reduced modulo
// the current list length so a list that shrank between ticks still maps to
// a valid item.
func (s *Session) Hero() HeroState {
	s.mu.Lock()
	defer s.mu.Unlock()
	heroes := HeroList(s.catalog)
	if len(heroes) == 0 {
		return HeroState{}
	}
	idx := s.heroIndex % len(heroes)
	item := heroes[idx]
	return HeroState{Item: &item, Index: idx, Count: len(heroes)}
}

// restartHeroLocked tears down the current rotation loop and starts a new
// one when the hero list is non-empty. Callers hold s.mu.
func (s *Session) restartHeroLocked() {
	if s.heroStop != nil {
		close(s.heroStop)
		s.heroStop = nil
	}
	if s.ctx == nil || len(HeroList(s.catalog)) == 0 {
		return
	}

	stop := make(chan struct{})
	s.heroStop = stop
	ctx := s.ctx
	s.bg.Go(func() {
		ticker := time.NewTicker(s.rotatePeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.advanceHero()
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	})
}

// advanceHero moves the rotation cursor one step, wrapping on the current
// list length.
func (s *Session) advanceHero() {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(HeroList(s.catalog))
	if n == 0 {
		return
	}
	s.heroIndex = (s.heroIndex + 1) % n
}

// SetQuery feeds the debounced search pipeline. Any previously scheduled
// search is superseded: its debounce timer is stopped, its transport is
// aborted, and its eventual settlement is discarded. A blank query clears
// results immediately with no network call.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
	s.searchGen++
	gen := s.searchGen

	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	if s.searchCancel != nil {
		s.searchCancel()
		s.searchCancel = nil
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		s.searchResults = nil
		s.isSearching = false
		return
	}

	s.debounce = time.AfterFunc(s.debounceDelay, func() {
		s.runSearch(gen, trimmed)
	})
}

// runSearch issues the network call for one debounced query. The generation
// token guards every state write: once a newer query exists, this call's
// outcome is dropped without touching results or the searching flag.
func (s *Session) runSearch(gen uint64, query string) {
	s.mu.Lock()
	if gen != s.searchGen || s.ctx == nil {
		s.mu.Unlock()
		return
	}
	s.isSearching = true
	ctx, cancel := context.WithCancel(s.ctx)
	s.searchCancel = cancel
	s.mu.Unlock()

	results, err := s.client.SearchShows(ctx, query)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		// Superseded while in flight. A newer call owns isSearching now.
		return
	}
	s.searchCancel = nil
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("[catalog] search failed query=%q err=%v", query, err)
		s.searchResults = nil
		s.isSearching = false
		return
	}
	s.searchResults = NormalizeSearch(results)
	s.isSearching = false
}

// SearchState returns a snapshot of the search pipeline.
func (s *Session) SearchState() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.CatalogItem, len(s.searchResults))
	copy(results, s.searchResults)
	return SearchState{
		Query:       s.searchQuery,
		IsSearching: s.isSearching,
		Results:     results,
	}
}
