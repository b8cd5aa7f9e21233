// Package stats derives aggregate views from a watchlist snapshot. Every
// function is pure: snapshot and genre map come in as arguments, nothing
// is cached and the input is never mutated.
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rgray/cinelog/internal/domain"
)

// GenreFallback labels genre ids that cannot be resolved through the map
// (or any id when the map has not loaded yet).
const GenreFallback = "Other"

// NoData is the sentinel rendered when an aggregate has no input.
const NoData = "-"

// GenreCount is one bar of the genre histogram
type GenreCount struct {
	Name  string
	Count int
}

// GenreHistogram counts watchlist entries per resolved genre name, in
// encounter order of distinct names. Unresolvable ids fall back to
// GenreFallback. An empty watchlist yields an empty slice.
func GenreHistogram(entries []domain.WatchlistEntry, genres domain.GenreMap) []GenreCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, id := range e.GenreIDs {
			name, ok := genres[id]
			if !ok {
				name = GenreFallback
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}
	out := make([]GenreCount, 0, len(order))
	for _, name := range order {
		out = append(out, GenreCount{Name: name, Count: counts[name]})
	}
	return out
}

// VoteBucket is one fixed community-score range
type VoteBucket struct {
	Label string
	Count int
}

var voteBucketLabels = []string{"0-5", "5-6", "6-7", "7-8", "8+"}

// VoteDistribution partitions entries by community score into the five
// fixed buckets. All buckets are always present, in fixed order, so the
// counts sum to the watchlist size. A missing score counts as 0.
func VoteDistribution(entries []domain.WatchlistEntry) []VoteBucket {
	counts := make([]int, len(voteBucketLabels))
	for _, e := range entries {
		switch v := e.VoteAverage; {
		case v < 5:
			counts[0]++
		case v < 6:
			counts[1]++
		case v < 7:
			counts[2]++
		case v < 8:
			counts[3]++
		default:
			counts[4]++
		}
	}
	out := make([]VoteBucket, len(voteBucketLabels))
	for i, label := range voteBucketLabels {
		out[i] = VoteBucket{Label: label, Count: counts[i]}
	}
	return out
}

// AverageVote is the arithmetic mean of the community score across all
// entries, missing scores counted as 0. ok is false when the watchlist
// is empty; callers render a placeholder.
func AverageVote(entries []domain.WatchlistEntry) (float64, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	var sum float64
	for _, e := range entries {
		sum += e.VoteAverage
	}
	return sum / float64(len(entries)), true
}

// YearCount is one bar of the release-year distribution
type YearCount struct {
	Year  string
	Count int
}

// YearDistribution groups entries by release year, ascending. Entries
// with a missing or unparseable date are excluded.
func YearDistribution(entries []domain.WatchlistEntry) []YearCount {
	counts := make(map[string]int)
	for _, e := range entries {
		if year := e.Year(); year != "" {
			counts[year]++
		}
	}
	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Slice(years, func(i, j int) bool {
		a, _ := strconv.Atoi(years[i])
		b, _ := strconv.Atoi(years[j])
		return a < b
	})
	out := make([]YearCount, 0, len(years))
	for _, year := range years {
		out = append(out, YearCount{Year: year, Count: counts[year]})
	}
	return out
}

// StatusTally holds per-status entry counts
type StatusTally struct {
	Plan     int
	Watching int
	Watched  int
}

// Total returns the sum across all statuses
func (t StatusTally) Total() int { return t.Plan + t.Watching + t.Watched }

// StatusCounts tallies entries per status. An absent or unrecognized
// status counts as plan, so the tally always covers the whole list.
func StatusCounts(entries []domain.WatchlistEntry) StatusTally {
	var tally StatusTally
	for _, e := range entries {
		switch e.Status {
		case domain.StatusWatching:
			tally.Watching++
		case domain.StatusWatched:
			tally.Watched++
		default:
			tally.Plan++
		}
	}
	return tally
}

// UserRatingAverage is the mean of user-assigned ratings over entries
// that have one. ok is false when no entry is rated.
func UserRatingAverage(entries []domain.WatchlistEntry) (float64, bool) {
	var sum float64
	var n int
	for _, e := range entries {
		if e.Rated() {
			sum += e.Rating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// RatingCount is one bar of the user rating histogram
type RatingCount struct {
	Rating int
	Count  int
}

// UserRatingHistogram buckets user ratings by nearest integer, ascending,
// including only buckets with at least one entry.
func UserRatingHistogram(entries []domain.WatchlistEntry) []RatingCount {
	counts := make(map[int]int)
	for _, e := range entries {
		if e.Rated() {
			counts[int(math.Round(e.Rating))]++
		}
	}
	ratings := make([]int, 0, len(counts))
	for r := range counts {
		ratings = append(ratings, r)
	}
	sort.Ints(ratings)
	out := make([]RatingCount, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, RatingCount{Rating: r, Count: counts[r]})
	}
	return out
}

// TopGenre returns the most frequent genre across the watchlist, counting
// detail-endpoint genre names where present and falling back to ids
// resolved through the map. Ties break toward the first genre
// encountered. Returns the NoData sentinel when no genre data exists.
func TopGenre(entries []domain.WatchlistEntry, genres domain.GenreMap) string {
	counts := make(map[string]int)
	var order []string
	tally := func(name string) {
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, e := range entries {
		if len(e.Genres) > 0 {
			for _, name := range e.Genres {
				tally(name)
			}
			continue
		}
		for _, id := range e.GenreIDs {
			if name, ok := genres[id]; ok {
				tally(name)
			}
		}
	}
	top := NoData
	best := 0
	for _, name := range order {
		if counts[name] > best {
			top = name
			best = counts[name]
		}
	}
	return top
}

// SortKey selects the ordering of a watchlist projection
type SortKey string

const (
	SortByRecency SortKey = "date"   // AddedAt descending
	SortByTitle   SortKey = "title"  // Case-insensitive ascending
	SortByRating  SortKey = "rating" // User rating descending, unrated last
)

// Project returns a filtered, sorted copy of the entries for display.
// An empty status means no filter. The input is never mutated.
func Project(entries []domain.WatchlistEntry, status domain.Status, key SortKey) []domain.WatchlistEntry {
	out := make([]domain.WatchlistEntry, 0, len(entries))
	for _, e := range entries {
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	switch key {
	case SortByTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AddedAt > out[j].AddedAt
		})
	}
	return out
}
