package tui

import (
	"github.com/rgray/cinelog/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogPageMsg signals that a catalog page has been loaded. RequestID
// ties the result to the fetch that asked for it; the browse view drops
// pages from superseded requests.
type CatalogPageMsg struct {
	Page      *domain.CatalogPage
	Source    BrowseSource
	RequestID int
}

// CatalogErrMsg signals a failed catalog fetch
type CatalogErrMsg struct {
	Err       error
	RequestID int
}

// DetailLoadedMsg signals that an item detail has been loaded
type DetailLoadedMsg struct {
	Item *domain.CatalogItem
}

// GenresLoadedMsg signals that the genre map has been (re)built
type GenresLoadedMsg struct {
	Kind domain.MediaKind
	Map  domain.GenreMap
}

// WatchlistChangedMsg signals that the watchlist service mutated state
type WatchlistChangedMsg struct{}
