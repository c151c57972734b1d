package catalog

import "cinevoxa/models"

func ratingOf(v float64) *float64 { return &v }

// localCatalog is the bundled, curated set shipped with the application.
// These items seed the hero rotation (isFeatured/isTrending) and fill the
// Personal Favorites row; their ids take precedence over remote items when
// the two collide in the hero list.
var localCatalog = []models.CatalogItem{
	{
		ID:          "1",
		Title:       "Night of the Living Dead",
		Year:        "1968",
		Genre:       "Horror • Thriller",
		Rating:      ratingOf(7.8),
		Image:       "/posters/night-of-the-living-dead.jpg",
		Backdrop:    "/backdrops/night-of-the-living-dead.jpg",
		Description: "A group of survivors barricade themselves in a farmhouse as the dead return to life and hunger for the living.",
		Language:    "English",
		IsFeatured:  true,
	},
	{
		ID:          "2",
		Title:       "Detour",
		Year:        "1945",
		Genre:       "Crime • Film-Noir",
		Rating:      ratingOf(7.2),
		Image:       "/posters/detour.jpg",
		Backdrop:    "/backdrops/detour.jpg",
		Description: "A down-on-his-luck musician hitchhiking to Hollywood gets caught up in a web of fate and murder.",
		Language:    "English",
		IsTrending:  true,
	},
	{
		ID:          "3",
		Title:       "The Beverly Hillbillies",
		Year:        "1962",
		Genre:       "Comedy • Family",
		Rating:      ratingOf(7.0),
		Image:       "/posters/beverly-hillbillies.jpg",
		Backdrop:    "/backdrops/beverly-hillbillies.jpg",
		Description: "A poor backwoods family strikes oil and moves to Beverly Hills, where their down-home ways clash hilariously with high society.",
		Language:    "English",
	},
	{
		ID:          "4",
		Title:       "One Step Beyond",
		Year:        "1959",
		Genre:       "Anthology • Mystery",
		Rating:      ratingOf(8.1),
		Image:       "/posters/one-step-beyond.jpg",
		Backdrop:    "/backdrops/one-step-beyond.jpg",
		Description: "Hosted by John Newland, this anthology explores allegedly true tales of the paranormal and unexplained.",
		Language:    "English",
		IsFeatured:  true,
	},
	{
		ID:          "5",
		Title:       "The Cisco Kid",
		Year:        "1950",
		Genre:       "Western • Adventure",
		Rating:      ratingOf(6.9),
		Image:       "/posters/cisco-kid.jpg",
		Backdrop:    "/backdrops/cisco-kid.jpg",
		Description: "The charming Mexican caballero and his sidekick Pancho ride through the Old West helping those in need.",
		Language:    "Spanish",
	},
	{
		ID:          "6",
		Title:       "The Brain That Wouldn't Die",
		Year:        "1962",
		Genre:       "Horror • Sci-Fi",
		Rating:      ratingOf(5.4),
		Image:       "/posters/brain-that-wouldnt-die.jpg",
		Backdrop:    "/backdrops/brain-that-wouldnt-die.jpg",
		Description: "A scientist keeps his fiancée's severed head alive while searching for a new body to complete his experiment.",
		Language:    "English",
		IsTrending:  true,
	},
}

// LocalCatalog returns a copy of the bundled catalog so callers cannot
// mutate the curated entries.
func LocalCatalog() []models.CatalogItem {
	items := make([]models.CatalogItem, len(localCatalog))
	copy(items, localCatalog)
	return items
}

// LocalByID looks up a bundled item. Ids are compared as strings to tolerate
// numeric/string mismatches between sources.
func LocalByID(id string) (models.CatalogItem, bool) {
	for _, item := range localCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}
