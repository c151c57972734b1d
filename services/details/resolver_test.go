package details

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cinevoxa/models"
	"cinevoxa/tvmaze"
)

type fakeGetter struct {
	mu        sync.Mutex
	shows     map[string]*models.RawShow
	cast      map[string][]models.CastMember
	castErr   error
	showCalls []string
	gate      chan struct{} // blocks the next GetShow until closed
}

func (f *fakeGetter) GetShow(ctx context.Context, id string) (*models.RawShow, error) {
	f.mu.Lock()
	f.showCalls = append(f.showCalls, id)
	gate := f.gate
	f.gate = nil
	show := f.shows[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if show == nil {
		return nil, fmt.Errorf("%w: GET /shows/%s returned status 404", tvmaze.ErrUpstream, id)
	}
	return show, nil
}

func (f *fakeGetter) GetCast(ctx context.Context, id string) ([]models.CastMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.castErr != nil {
		return nil, f.castErr
	}
	return f.cast[id], nil
}

type fakeSession struct {
	items []models.CatalogItem
}

func (f *fakeSession) FetchedItems() []models.CatalogItem { return f.items }

func TestResolveLocalCatalogWinsOverCache(t *testing.T) {
	// Local id "1" also exists in the session cache under a different title;
	// the local entry must win.
	session := &fakeSession{items: []models.CatalogItem{{ID: "1", Title: "cached impostor"}}}
	getter := &fakeGetter{}
	r := NewResolver(getter, session)

	res, err := r.Resolve(context.Background(), "1")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected item to resolve")
	}
	if res.Item.Title == "cached impostor" {
		t.Fatal("local catalog must take precedence over the session cache")
	}
	if len(getter.showCalls) != 0 {
		t.Fatalf("local resolution must not hit the network, got calls %v", getter.showCalls)
	}
}

func TestResolveFromSessionCacheSkipsRemote(t *testing.T) {
	session := &fakeSession{items: []models.CatalogItem{{ID: "512", Title: "cached show"}}}
	getter := &fakeGetter{}
	r := NewResolver(getter, session)

	res, err := r.Resolve(context.Background(), "512")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Found || res.Item.Title != "cached show" {
		t.Fatalf("expected cached item, got %+v", res)
	}
	if len(getter.showCalls) != 0 {
		t.Fatalf("cached resolution must not hit the network, got calls %v", getter.showCalls)
	}
}

func TestResolveRemoteFallbackNormalizesAndCaches(t *testing.T) {
	getter := &fakeGetter{shows: map[string]*models.RawShow{
		"777": {ID: 777, Name: "Remote Show", Premiered: "2014-03-01"},
	}}
	r := NewResolver(getter, nil)

	res, err := r.Resolve(context.Background(), "777")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Found || res.Item.Title != "Remote Show" || res.Item.Year != "2014" {
		t.Fatalf("unexpected resolution: %+v", res)
	}

	// Second resolve hits the TTL cache, not the network.
	if _, err := r.Resolve(context.Background(), "777"); err != nil {
		t.Fatalf("second Resolve returned error: %v", err)
	}
	if len(getter.showCalls) != 1 {
		t.Fatalf("expected one remote fetch, got %v", getter.showCalls)
	}
}

func TestResolveMissEverywhereIsNotFoundNotError(t *testing.T) {
	getter := &fakeGetter{}
	r := NewResolver(getter, nil)

	res, err := r.Resolve(context.Background(), "424242")
	if err != nil {
		t.Fatalf("a failed remote fetch must not surface an error, got %v", err)
	}
	if res.Found || res.Item != nil {
		t.Fatalf("expected not-found resolution, got %+v", res)
	}
	if res.Cast == nil || len(res.Cast) != 0 {
		t.Fatalf("expected empty cast on not-found, got %+v", res.Cast)
	}
}

func TestResolveFetchesCastForLocalItems(t *testing.T) {
	getter := &fakeGetter{cast: map[string][]models.CastMember{
		"1": {{Person: models.CastPerson{ID: 9, Name: "Duane Jones"}}},
	}}
	r := NewResolver(getter, nil)

	res, err := r.Resolve(context.Background(), "1")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(res.Cast) != 1 || res.Cast[0].Person.Name != "Duane Jones" {
		t.Fatalf("cast must be fetched for locally resolved items too, got %+v", res.Cast)
	}
}

func TestResolveTruncatesCastToTwenty(t *testing.T) {
	var cast []models.CastMember
	for i := 0; i < 35; i++ {
		cast = append(cast, models.CastMember{Person: models.CastPerson{ID: int64(i)}})
	}
	getter := &fakeGetter{cast: map[string][]models.CastMember{"1": cast}}
	r := NewResolver(getter, nil)

	res, err := r.Resolve(context.Background(), "1")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(res.Cast) != 20 {
		t.Fatalf("expected cast truncated to 20, got %d", len(res.Cast))
	}
	if res.Cast[0].Person.ID != 0 || res.Cast[19].Person.ID != 19 {
		t.Fatalf("truncation must keep the first entries, got %+v", res.Cast)
	}
}

func TestResolveCastFailureDegradesToEmpty(t *testing.T) {
	getter := &fakeGetter{castErr: fmt.Errorf("%w: boom", tvmaze.ErrUpstream)}
	r := NewResolver(getter, nil)

	res, err := r.Resolve(context.Background(), "1")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Found {
		t.Fatal("cast failure must not unresolve the item")
	}
	if len(res.Cast) != 0 {
		t.Fatalf("expected empty cast after failure, got %+v", res.Cast)
	}
}

func TestNavigateLastWins(t *testing.T) {
	gate := make(chan struct{})
	getter := &fakeGetter{
		gate: gate,
		shows: map[string]*models.RawShow{
			"100": {ID: 100, Name: "Slow Show"},
			"200": {ID: 200, Name: "Fast Show"},
		},
	}
	r := NewResolver(getter, nil)

	slowDone := make(chan struct{})
	go func() {
		r.Navigate(context.Background(), "100") // blocked on the gate
		close(slowDone)
	}()

	// Wait for the slow navigation to reach the remote fetch, then navigate
	// away before it settles.
	waitUntil(t, func() bool {
		getter.mu.Lock()
		defer getter.mu.Unlock()
		return len(getter.showCalls) == 1
	})
	r.Navigate(context.Background(), "200")
	close(gate)
	<-slowDone

	cur := r.Current()
	if cur == nil || cur.ID != "200" {
		t.Fatalf("expected last navigation to win, got %+v", cur)
	}
	if cur.Item == nil || cur.Item.Title != "Fast Show" {
		t.Fatalf("stale resolution overwrote current state: %+v", cur)
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	for i := 0; i < 400; i++ {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}
