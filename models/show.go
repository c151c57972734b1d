package models

// CatalogItem is the common display shape every row, hero slot, and details
// page consumes. Both the bundled local catalog and normalized remote shows
// use it, so the two sources can be merged freely.
type CatalogItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        string   `json:"year,omitempty"`
	Genre       string   `json:"genre,omitempty"`
	Rating      *float64 `json:"rating,omitempty"` // nil when the source has no average; 0 is a real rating
	Image       string   `json:"image"`
	Backdrop    string   `json:"backdrop"`
	Description string   `json:"description"`
	Language    string   `json:"language,omitempty"`
	IsFeatured  bool     `json:"isFeatured,omitempty"` // local catalog only
	IsTrending  bool     `json:"isTrending,omitempty"` // local catalog only
}

// RawShow is the upstream show object as TVMaze returns it. Only the fields
// the catalog depends on are decoded; everything else passes through the
// gateway untouched as raw bytes.
type RawShow struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Premiered string     `json:"premiered,omitempty"` // YYYY-MM-DD
	Genres    []string   `json:"genres,omitempty"`
	Language  string     `json:"language,omitempty"`
	Rating    *RawRating `json:"rating,omitempty"`
	Image     *RawImage  `json:"image,omitempty"`
	Summary   string     `json:"summary,omitempty"` // HTML
}

// RawRating carries the upstream average. Average stays a pointer because
// TVMaze sends null for unrated shows and that is not the same as 0.
type RawRating struct {
	Average *float64 `json:"average"`
}

type RawImage struct {
	Medium   string `json:"medium,omitempty"`
	Original string `json:"original,omitempty"`
}

// RawSearchResult is one entry of the upstream search response:
// a relevance score wrapping a show.
type RawSearchResult struct {
	Score float64 `json:"score"`
	Show  RawShow `json:"show"`
}

// CastMember is served to the details page unmodified from upstream,
// truncated to the first entries only.
type CastMember struct {
	Person    CastPerson    `json:"person"`
	Character CastCharacter `json:"character"`
}

type CastPerson struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Image *RawImage `json:"image,omitempty"`
}

type CastCharacter struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
