package domain

import "context"

// CatalogRepository provides access to the external media-metadata catalog.
// Implemented by the TMDB client; consumers degrade gracefully when calls
// fail (the watchlist never depends on the catalog being reachable).
type CatalogRepository interface {
	// Genres returns the id/name genre list for a media kind
	Genres(ctx context.Context, kind MediaKind) ([]Genre, error)

	// Trending returns the daily trending page for a media kind
	Trending(ctx context.Context, kind MediaKind, page int) (*CatalogPage, error)

	// Popular returns the popular page for a media kind
	Popular(ctx context.Context, kind MediaKind, page int) (*CatalogPage, error)

	// Search queries the catalog by title/keyword
	Search(ctx context.Context, kind MediaKind, query string, page int) (*CatalogPage, error)

	// Discover lists items matching the filter
	Discover(ctx context.Context, kind MediaKind, filter DiscoverFilter, page int) (*CatalogPage, error)

	// Detail returns one item with extended fields (runtime, genres as names)
	Detail(ctx context.Context, kind MediaKind, id int64) (*CatalogItem, error)
}
