package details

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"cinevoxa/models"
	"cinevoxa/services/catalog"
)

const (
	castLimit = 20

	resolvedTTL     = 30 * time.Minute
	resolvedCleanup = 10 * time.Minute
)

// showGetter is the remote surface the resolver depends on.
type showGetter interface {
	GetShow(ctx context.Context, id string) (*models.RawShow, error)
	GetCast(ctx context.Context, id string) ([]models.CastMember, error)
}

// fetchedSource exposes the items a browsing session has already fetched
// (catalog plus search results); the resolver consults it before going
// remote.
type fetchedSource interface {
	FetchedItems() []models.CatalogItem
}

// Resolution is the outcome of resolving one identifier. Found is false when
// every lookup missed and the remote fetch failed; the caller renders that as
// a not-found state rather than an error.
type Resolution struct {
	ID    string              `json:"id"`
	Found bool                `json:"found"`
	Item  *models.CatalogItem `json:"item,omitempty"`
	Cast  []models.CastMember `json:"cast"`
}

// lookupFunc is one resolution strategy: local catalog, session cache, or the
// TTL cache of past remote fetches. First match wins.
type lookupFunc func(id string) (models.CatalogItem, bool)

// Resolver resolves an identifier to a catalog item through an ordered list
// of lookup strategies, falling back to a remote fetch, then fetches the cast
// list for whatever resolved. Navigation state ("last navigation wins") is
// held behind a generation counter.
type Resolver struct {
	client   showGetter
	lookups  []lookupFunc
	resolved *gocache.Cache

	mu      sync.Mutex
	gen     uint64
	current *Resolution
}

func NewResolver(client showGetter, session fetchedSource) *Resolver {
	resolved := gocache.New(resolvedTTL, resolvedCleanup)

	lookups := []lookupFunc{
		catalog.LocalByID,
	}
	if session != nil {
		lookups = append(lookups, func(id string) (models.CatalogItem, bool) {
			for _, item := range session.FetchedItems() {
				if item.ID == id {
					return item, true
				}
			}
			return models.CatalogItem{}, false
		})
	}
	lookups = append(lookups, func(id string) (models.CatalogItem, bool) {
		if v, ok := resolved.Get(id); ok {
			return v.(models.CatalogItem), true
		}
		return models.CatalogItem{}, false
	})

	return &Resolver{
		client:   client,
		lookups:  lookups,
		resolved: resolved,
	}
}

// Resolve runs the lookup chain for one identifier and then fetches its cast.
// It never fails for a missing item: a failed remote fetch yields a
// not-found Resolution. A canceled context is the only error returned.
func (r *Resolver) Resolve(ctx context.Context, id string) (Resolution, error) {
	res := Resolution{ID: id, Cast: []models.CastMember{}}

	item, ok := r.lookup(id)
	if !ok {
		raw, err := r.client.GetShow(ctx, id)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return res, err
			}
			log.Printf("[details] show fetch failed id=%s err=%v", id, err)
			return res, nil
		}
		item = catalog.Normalize(*raw)
		r.resolved.SetDefault(id, item)
	}

	res.Found = true
	res.Item = &item

	// Cast is fetched for every resolved item, locally sourced ones
	// included, and degrades silently to an empty list.
	cast, err := r.client.GetCast(ctx, id)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return res, err
		}
		log.Printf("[details] cast fetch failed id=%s err=%v", id, err)
		return res, nil
	}
	if len(cast) > castLimit {
		cast = cast[:castLimit]
	}
	if len(cast) > 0 {
		res.Cast = cast
	}
	return res, nil
}

func (r *Resolver) lookup(id string) (models.CatalogItem, bool) {
	for _, fn := range r.lookups {
		if item, ok := fn(id); ok {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// Navigate restarts the resolution sequence for a new identifier. The result
// is applied only if no newer navigation happened while it ran, so a slow
// resolution for a previous id can never overwrite the current page.
func (r *Resolver) Navigate(ctx context.Context, id string) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	res, err := r.Resolve(ctx, id)
	if err != nil {
		// Canceled: a newer navigation owns the state.
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	r.current = &res
}

// Current returns the most recently applied navigation result, or nil before
// the first navigation settles.
func (r *Resolver) Current() *Resolution {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
