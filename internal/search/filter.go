// Package search filters the watchlist by title for the filter box.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rgray/cinelog/internal/domain"
)

// FilterByTitle returns the entries whose titles fuzzily match the query,
// best match first. An empty query returns the input order untouched.
func FilterByTitle(entries []domain.WatchlistEntry, query string) []domain.WatchlistEntry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		out := make([]domain.WatchlistEntry, len(entries))
		copy(out, entries)
		return out
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = strings.ToLower(e.Title)
	}

	matches := fuzzy.RankFindFold(query, titles)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	out := make([]domain.WatchlistEntry, 0, len(matches))
	for _, m := range matches {
		out = append(out, entries[m.OriginalIndex])
	}
	return out
}
