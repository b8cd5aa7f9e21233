package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgray/cinelog/internal/domain"
	"github.com/rgray/cinelog/internal/genres"
)

const fetchTimeout = 30 * time.Second

// BrowseSource selects which catalog listing the browse view shows
type BrowseSource int

const (
	SourceTrending BrowseSource = iota
	SourcePopular
	SourceSearch
	SourceDiscover
)

// String returns the display label for the source
func (s BrowseSource) String() string {
	switch s {
	case SourcePopular:
		return "Popular"
	case SourceSearch:
		return "Search"
	case SourceDiscover:
		return "Discover"
	default:
		return "Trending"
	}
}

// fetchPage loads one catalog page for the given source. The filter
// applies to the Discover source only.
func fetchPage(catalog domain.CatalogRepository, kind domain.MediaKind, source BrowseSource, query string, filter domain.DiscoverFilter, page, requestID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var (
			result *domain.CatalogPage
			err    error
		)
		switch source {
		case SourcePopular:
			result, err = catalog.Popular(ctx, kind, page)
		case SourceSearch:
			result, err = catalog.Search(ctx, kind, query, page)
		case SourceDiscover:
			result, err = catalog.Discover(ctx, kind, filter, page)
		default:
			result, err = catalog.Trending(ctx, kind, page)
		}
		if err != nil {
			return CatalogErrMsg{Err: err, RequestID: requestID}
		}
		return CatalogPageMsg{Page: result, Source: source, RequestID: requestID}
	}
}

// fetchDetail loads the extended record for one item
func fetchDetail(catalog domain.CatalogRepository, kind domain.MediaKind, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		item, err := catalog.Detail(ctx, kind, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading details"}
		}
		return DetailLoadedMsg{Item: item}
	}
}

// loadGenres builds the genre map for a media kind. The resolver swallows
// fetch failures, so this always produces a usable (possibly empty) map.
func loadGenres(resolver *genres.Resolver, kind domain.MediaKind) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return GenresLoadedMsg{Kind: kind, Map: resolver.Map(ctx, kind)}
	}
}
