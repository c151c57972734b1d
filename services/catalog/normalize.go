package catalog

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cinevoxa/models"
)

const (
	// PlaceholderImage is substituted whenever upstream carries no artwork,
	// so Image and Backdrop are never empty on a normalized item.
	PlaceholderImage = "/placeholder.jpg"

	// NoDescription is the fixed fallback when upstream has no summary.
	NoDescription = "No description available"

	genreSeparator = " • "
)

// Normalize maps a raw upstream show into the common display shape. It is
// total: every field access tolerates absence, so a show with nothing but an
// id still normalizes without error.
func Normalize(raw models.RawShow) models.CatalogItem {
	item := models.CatalogItem{
		ID:       strconv.FormatInt(raw.ID, 10),
		Title:    raw.Name,
		Language: raw.Language,
	}

	if raw.Premiered != "" {
		item.Year = raw.Premiered
		if i := strings.Index(raw.Premiered, "-"); i >= 0 {
			item.Year = raw.Premiered[:i]
		}
	}

	if len(raw.Genres) > 0 {
		item.Genre = strings.Join(raw.Genres, genreSeparator)
	}

	if raw.Rating != nil && raw.Rating.Average != nil {
		avg := *raw.Rating.Average
		item.Rating = &avg
	}

	item.Image = PlaceholderImage
	item.Backdrop = PlaceholderImage
	if raw.Image != nil {
		if raw.Image.Medium != "" {
			item.Image = raw.Image.Medium
			item.Backdrop = raw.Image.Medium
		}
		if raw.Image.Original != "" {
			item.Backdrop = raw.Image.Original
		}
	}

	item.Description = NoDescription
	if raw.Summary != "" {
		if text := stripMarkup(raw.Summary); text != "" {
			item.Description = text
		}
	}

	return item
}

// NormalizeAll normalizes a full show index, preserving fetch order.
func NormalizeAll(raws []models.RawShow) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, Normalize(raw))
	}
	return items
}

// NormalizeSearch unwraps search results and normalizes the embedded shows.
func NormalizeSearch(results []models.RawSearchResult) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(results))
	for _, r := range results {
		items = append(items, Normalize(r.Show))
	}
	return items
}

// stripMarkup flattens an HTML fragment to plain text.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
