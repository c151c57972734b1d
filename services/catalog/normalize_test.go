package catalog

import (
	"testing"

	"cinevoxa/models"
)

func TestNormalizeAllFieldsAbsent(t *testing.T) {
	// A show with nothing but an id must still normalize: placeholder
	// artwork, fallback description, everything else absent.
	item := Normalize(models.RawShow{ID: 7})

	if item.ID != "7" {
		t.Fatalf("expected id %q, got %q", "7", item.ID)
	}
	if item.Image != PlaceholderImage {
		t.Fatalf("expected placeholder image, got %q", item.Image)
	}
	if item.Backdrop != PlaceholderImage {
		t.Fatalf("expected placeholder backdrop, got %q", item.Backdrop)
	}
	if item.Description != NoDescription {
		t.Fatalf("expected fallback description, got %q", item.Description)
	}
	if item.Year != "" || item.Genre != "" || item.Rating != nil {
		t.Fatalf("expected absent optional fields, got %+v", item)
	}
}

func TestNormalizeYearFromPremiered(t *testing.T) {
	item := Normalize(models.RawShow{ID: 1, Premiered: "2014-03-01"})
	if item.Year != "2014" {
		t.Fatalf("expected year 2014, got %q", item.Year)
	}
}

func TestNormalizeStripsMarkup(t *testing.T) {
	item := Normalize(models.RawShow{ID: 1, Summary: "<p>Hello <b>world</b></p>"})
	if item.Description != "Hello world" {
		t.Fatalf("expected markup stripped, got %q", item.Description)
	}
}

func TestNormalizeGenreJoin(t *testing.T) {
	item := Normalize(models.RawShow{ID: 1, Genres: []string{"Drama", "Horror"}})
	if item.Genre != "Drama • Horror" {
		t.Fatalf("unexpected genre %q", item.Genre)
	}

	empty := Normalize(models.RawShow{ID: 2, Genres: []string{}})
	if empty.Genre != "" {
		t.Fatalf("expected absent genre for empty list, got %q", empty.Genre)
	}
}

func TestNormalizeZeroRatingIsNotAbsent(t *testing.T) {
	zero := 0.0
	item := Normalize(models.RawShow{ID: 1, Rating: &models.RawRating{Average: &zero}})
	if item.Rating == nil || *item.Rating != 0 {
		t.Fatalf("expected real 0 rating, got %v", item.Rating)
	}

	unrated := Normalize(models.RawShow{ID: 2, Rating: &models.RawRating{}})
	if unrated.Rating != nil {
		t.Fatalf("expected absent rating for null average, got %v", *unrated.Rating)
	}
}

func TestNormalizeImageFallbackChain(t *testing.T) {
	// original present: backdrop uses it, poster uses medium
	both := Normalize(models.RawShow{ID: 1, Image: &models.RawImage{
		Medium:   "https://img/medium.jpg",
		Original: "https://img/original.jpg",
	}})
	if both.Image != "https://img/medium.jpg" || both.Backdrop != "https://img/original.jpg" {
		t.Fatalf("unexpected artwork: image=%q backdrop=%q", both.Image, both.Backdrop)
	}

	// only medium: backdrop falls back to it
	mediumOnly := Normalize(models.RawShow{ID: 2, Image: &models.RawImage{Medium: "https://img/medium.jpg"}})
	if mediumOnly.Backdrop != "https://img/medium.jpg" {
		t.Fatalf("expected backdrop to fall back to medium, got %q", mediumOnly.Backdrop)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	raw := models.RawShow{
		ID:        3,
		Name:      "Detour",
		Premiered: "1945-11-30",
		Genres:    []string{"Crime"},
		Summary:   "<p>Fate, or some mysterious force.</p>",
	}
	first := Normalize(raw)
	second := Normalize(raw)
	if first.Description != second.Description || first.Year != second.Year {
		t.Fatalf("normalize not deterministic: %+v vs %+v", first, second)
	}
}

func TestNormalizeSearchUnwrapsShows(t *testing.T) {
	items := NormalizeSearch([]models.RawSearchResult{
		{Score: 9.1, Show: models.RawShow{ID: 11, Name: "Batman"}},
		{Score: 3.2, Show: models.RawShow{ID: 12, Name: "Batman Beyond"}},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Batman" || items[1].Title != "Batman Beyond" {
		t.Fatalf("unexpected titles: %+v", items)
	}
}
