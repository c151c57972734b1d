package catalog

import (
	"sort"

	"cinevoxa/models"
)

const (
	trendingLimit       = 15
	topRatedLimit       = 15
	hiddenGemsLimit     = 15
	internationalLimit  = 12
	hiddenGemsMinRating = 7.0
)

// HomeRows is the computed set of display rows. Rows are derived on demand
// from the fetched catalog, the local catalog, and watchlist membership;
// nothing here is stored.
type HomeRows struct {
	Watchlist         []models.CatalogItem `json:"watchlist"`
	Trending          []models.CatalogItem `json:"trending"`
	PersonalFavorites []models.CatalogItem `json:"personalFavorites"`
	TopRated          []models.CatalogItem `json:"topRated"`
	HiddenGems        []models.CatalogItem `json:"hiddenGems"`
	InternationalHits []models.CatalogItem `json:"internationalHits"`
}

// BuildRows computes every home row from the fetched remote items and the
// current watchlist membership.
func BuildRows(fetched []models.CatalogItem, watchlist map[string]struct{}) HomeRows {
	return HomeRows{
		Watchlist:         WatchlistRow(watchlist),
		Trending:          firstN(fetched, trendingLimit),
		PersonalFavorites: LocalCatalog(),
		TopRated:          TopRated(fetched, topRatedLimit),
		HiddenGems:        HiddenGems(fetched),
		InternationalHits: InternationalHits(fetched),
	}
}

// WatchlistRow returns the local catalog items whose id is in the watchlist.
func WatchlistRow(ids map[string]struct{}) []models.CatalogItem {
	var row []models.CatalogItem
	for _, item := range localCatalog {
		if _, ok := ids[item.ID]; ok {
			row = append(row, item)
		}
	}
	return row
}

// TopRated sorts fetched items by rating, highest first, and keeps the top
// limit entries. An absent rating sorts below every present rating, including
// a genuine 0; ties keep fetch order.
func TopRated(items []models.CatalogItem, limit int) []models.CatalogItem {
	sorted := make([]models.CatalogItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ratingForSort(sorted[i]) > ratingForSort(sorted[j])
	})
	return firstN(sorted, limit)
}

// ratingForSort substitutes a value below any real rating for absence. The
// substitution lives only in this comparator so a true 0 stays distinct from
// "not rated" everywhere else.
func ratingForSort(item models.CatalogItem) float64 {
	if item.Rating == nil {
		return -1
	}
	return *item.Rating
}

// HiddenGems keeps fetched items with a present rating of at least 7,
// in fetch order.
func HiddenGems(items []models.CatalogItem) []models.CatalogItem {
	var row []models.CatalogItem
	for _, item := range items {
		if item.Rating != nil && *item.Rating >= hiddenGemsMinRating {
			row = append(row, item)
			if len(row) == hiddenGemsLimit {
				break
			}
		}
	}
	return row
}

// InternationalHits keeps fetched items with a known language other than
// English, in fetch order.
func InternationalHits(items []models.CatalogItem) []models.CatalogItem {
	var row []models.CatalogItem
	for _, item := range items {
		if item.Language != "" && item.Language != "English" {
			row = append(row, item)
			if len(row) == internationalLimit {
				break
			}
		}
	}
	return row
}

// HeroList merges the flagged local items with the fetched remote items.
// Local entries come first and win any id collision; the merge builds the
// local id set once instead of rescanning per remote item.
func HeroList(fetched []models.CatalogItem) []models.CatalogItem {
	var heroes []models.CatalogItem
	localIDs := make(map[string]struct{})
	for _, item := range localCatalog {
		if item.IsFeatured || item.IsTrending {
			heroes = append(heroes, item)
			localIDs[item.ID] = struct{}{}
		}
	}
	for _, item := range fetched {
		if _, taken := localIDs[item.ID]; taken {
			continue
		}
		heroes = append(heroes, item)
	}
	return heroes
}

func firstN(items []models.CatalogItem, n int) []models.CatalogItem {
	if len(items) <= n {
		out := make([]models.CatalogItem, len(items))
		copy(out, items)
		return out
	}
	out := make([]models.CatalogItem, n)
	copy(out, items[:n])
	return out
}
