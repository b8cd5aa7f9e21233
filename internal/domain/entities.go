package domain

import (
	"fmt"
	"strings"
)

// MediaKind distinguishes the two catalog content types
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindTV    MediaKind = "tv"
)

// String returns the catalog path segment for the media kind
func (k MediaKind) String() string { return string(k) }

// Status is the lifecycle label of a watchlist entry.
// The store accepts arbitrary strings; these are the recognized values.
type Status string

const (
	StatusPlan     Status = "plan"
	StatusWatching Status = "watching"
	StatusWatched  Status = "watched"
)

// Display returns a human-readable label for the status
func (s Status) Display() string {
	switch s {
	case StatusWatching:
		return "Watching"
	case StatusWatched:
		return "Watched"
	default:
		return "Plan to Watch"
	}
}

// WatchlistEntry is one tracked catalog item. JSON tags follow the TMDB
// field names so the persisted payload matches the catalog's wire shape.
type WatchlistEntry struct {
	ID           int64    `json:"id"`                      // Catalog-assigned identifier, primary key
	Title        string   `json:"title"`                   // Display title
	PosterPath   string   `json:"poster_path,omitempty"`   // Partial poster URL path
	BackdropPath string   `json:"backdrop_path,omitempty"` // Partial backdrop URL path
	ReleaseDate  string   `json:"release_date,omitempty"`  // "YYYY-MM-DD", may be empty
	VoteAverage  float64  `json:"vote_average,omitempty"`  // Community score 0-10
	Popularity   float64  `json:"popularity,omitempty"`    // Catalog popularity index
	GenreIDs     []int64  `json:"genre_ids,omitempty"`     // Genre references, may be empty
	Genres       []string `json:"genres,omitempty"`        // Genre names from the detail endpoint

	Status  Status  `json:"status,omitempty"`  // Lifecycle label, zero value means plan
	Rating  float64 `json:"rating,omitempty"`  // User rating 0-10 in 0.5 steps, 0 = unrated
	AddedAt int64   `json:"addedAt,omitempty"` // Unix timestamp, insertion order marker
}

// Year returns the 4-digit year prefix of the release date, or "" when
// the date is missing or malformed.
func (e WatchlistEntry) Year() string {
	if len(e.ReleaseDate) < 4 {
		return ""
	}
	year := e.ReleaseDate[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}

// Rated reports whether the user has assigned a rating
func (e WatchlistEntry) Rated() bool { return e.Rating != 0 }

// WatchlistState is an ordered snapshot of the watchlist plus the browse
// counter. Entries keep insertion order; sorting happens only in derived
// projections.
type WatchlistState struct {
	Entries     []WatchlistEntry
	BrowseCount int64
}

// Genre is a catalog genre reference
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreMap maps catalog genre ids to display names
type GenreMap map[int64]string

// CatalogItem is a movie or TV record as returned by the catalog.
// Optional fields may be absent; the core tolerates zero values.
type CatalogItem struct {
	ID           int64
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	VoteAverage  float64
	Popularity   float64
	GenreIDs     []int64
	Genres       []string // Populated by the detail endpoint only
	Runtime      int      // Minutes, detail endpoint only
	Kind         MediaKind
}

// Entry converts a catalog item into a watchlist entry. AddedAt and the
// user fields are left for the watchlist store to stamp.
func (c CatalogItem) Entry() WatchlistEntry {
	return WatchlistEntry{
		ID:           c.ID,
		Title:        c.Title,
		PosterPath:   c.PosterPath,
		BackdropPath: c.BackdropPath,
		ReleaseDate:  c.ReleaseDate,
		VoteAverage:  c.VoteAverage,
		Popularity:   c.Popularity,
		GenreIDs:     c.GenreIDs,
		Genres:       c.Genres,
	}
}

// FormattedRuntime returns the runtime in a human-readable format
func (c CatalogItem) FormattedRuntime() string {
	if c.Runtime <= 0 {
		return ""
	}
	h := c.Runtime / 60
	m := c.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// GenreNames resolves the item's genre ids through the map, preferring
// names already present from the detail endpoint.
func (c CatalogItem) GenreNames(genres GenreMap) []string {
	if len(c.Genres) > 0 {
		return c.Genres
	}
	names := make([]string, 0, len(c.GenreIDs))
	for _, id := range c.GenreIDs {
		if name, ok := genres[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// CatalogPage is one page of catalog results
type CatalogPage struct {
	Results    []CatalogItem
	Page       int
	TotalPages int
}

// DiscoverFilter narrows a catalog discover query. Zero values mean
// "no constraint".
type DiscoverFilter struct {
	GenreID int64
	Year    string
	MinVote float64
	SortBy  string // popularity.desc | vote_average.desc | release_date.desc
}

// Profile is the locally configured identity surfaced on the stats view.
// The core never depends on it beyond display labeling.
type Profile struct {
	Name      string
	Email     string
	AvatarURL string
}

// SignedIn reports whether a profile has been configured
func (p Profile) SignedIn() bool {
	return strings.TrimSpace(p.Name) != "" || strings.TrimSpace(p.Email) != ""
}
