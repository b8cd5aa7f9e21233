package tmdb

// pageResponse is the envelope for every TMDB list endpoint
type pageResponse struct {
	Page         int          `json:"page"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
	Results      []itemResult `json:"results"`
}

// itemResult is a catalog item as returned by list endpoints. Movie and
// TV payloads differ in the title/date field names; both sets are mapped.
type itemResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`          // Movies
	Name         string  `json:"name,omitempty"`           // TV
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`   // Movies
	FirstAirDate string  `json:"first_air_date,omitempty"` // TV
	VoteAverage  float64 `json:"vote_average,omitempty"`
	Popularity   float64 `json:"popularity,omitempty"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
}

// detailResult extends itemResult with the detail-only fields
type detailResult struct {
	itemResult
	Runtime int           `json:"runtime,omitempty"`
	Genres  []genreResult `json:"genres,omitempty"` // Objects, not ids
}

type genreResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genreResult `json:"genres"`
}
