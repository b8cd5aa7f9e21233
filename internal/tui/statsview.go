package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgray/cinelog/internal/domain"
	"github.com/rgray/cinelog/internal/stats"
	"github.com/rgray/cinelog/internal/tui/styles"
	"github.com/rgray/cinelog/internal/watchlist"
)

const maxBarWidth = 30

// statsModel is the dashboard/profile view: aggregate charts derived
// from the current watchlist snapshot. Everything is recomputed from the
// snapshot on each refresh - the view holds no derived state of its own.
type statsModel struct {
	watchlist *watchlist.Service
	profile   domain.Profile

	genreMap domain.GenreMap

	width  int
	height int
}

func newStatsModel(svc *watchlist.Service, profile domain.Profile) *statsModel {
	return &statsModel{
		watchlist: svc,
		profile:   profile,
		genreMap:  domain.GenreMap{},
	}
}

func (m *statsModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *statsModel) Update(msg tea.Msg) tea.Cmd {
	// Merge maps from both kinds so TV genre ids resolve too. The
	// first-loaded name wins when an id appears in both namespaces.
	if msg, ok := msg.(GenresLoadedMsg); ok {
		for id, name := range msg.Map {
			if _, seen := m.genreMap[id]; !seen {
				m.genreMap[id] = name
			}
		}
	}
	return nil
}

func (m *statsModel) View() string {
	snapshot := m.watchlist.Snapshot()
	entries := snapshot.Entries

	var b strings.Builder

	// Profile header
	if m.profile.SignedIn() {
		b.WriteString(styles.TitleStyle.Render(m.profile.Name))
		if m.profile.Email != "" {
			b.WriteString(styles.SubtitleStyle.Render("  " + m.profile.Email))
		}
		b.WriteString("\n\n")
	}

	// Stat cards
	tally := stats.StatusCounts(entries)
	avgVote := stats.NoData
	if v, ok := stats.AverageVote(entries); ok {
		avgVote = fmt.Sprintf("%.1f", v)
	}
	userAvg := "N/A"
	if v, ok := stats.UserRatingAverage(entries); ok {
		userAvg = fmt.Sprintf("%.1f", v)
	}

	b.WriteString(statLine("Browsed", fmt.Sprintf("%d", snapshot.BrowseCount)))
	b.WriteString(statLine("Watchlist", fmt.Sprintf("%d", len(entries))))
	b.WriteString(statLine("Plan / Watching / Watched",
		fmt.Sprintf("%d / %d / %d", tally.Plan, tally.Watching, tally.Watched)))
	b.WriteString(statLine("Avg Catalog Rating", avgVote))
	b.WriteString(statLine("Your Avg Rating", userAvg))
	b.WriteString(statLine("Top Genre", stats.TopGenre(entries, m.genreMap)))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styles.DimStyle.Render("Add some titles to your watchlist to see statistics."))
		return b.String()
	}

	b.WriteString(m.genreChart(entries))
	b.WriteString(m.voteChart(entries))
	b.WriteString(m.yearChart(entries))
	b.WriteString(m.userRatingChart(entries))

	return b.String()
}

func statLine(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		styles.SubtitleStyle.Render(fmt.Sprintf("%-28s", label)),
		styles.TitleStyle.Render(value))
}

func (m *statsModel) genreChart(entries []domain.WatchlistEntry) string {
	hist := stats.GenreHistogram(entries, m.genreMap)
	if len(hist) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render("Watchlist by Genre"))
	b.WriteString("\n")
	max := 0
	for _, g := range hist {
		if g.Count > max {
			max = g.Count
		}
	}
	for _, g := range hist {
		b.WriteString(barRow(g.Name, g.Count, max, styles.BarStyle))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *statsModel) voteChart(entries []domain.WatchlistEntry) string {
	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render("Rating Distribution"))
	b.WriteString("\n")
	buckets := stats.VoteDistribution(entries)
	max := 0
	for _, bucket := range buckets {
		if bucket.Count > max {
			max = bucket.Count
		}
	}
	for _, bucket := range buckets {
		b.WriteString(barRow(bucket.Label, bucket.Count, max, styles.BarAltStyle))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *statsModel) yearChart(entries []domain.WatchlistEntry) string {
	years := stats.YearDistribution(entries)
	if len(years) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render("Titles by Year"))
	b.WriteString("\n")
	max := 0
	for _, y := range years {
		if y.Count > max {
			max = y.Count
		}
	}
	for _, y := range years {
		b.WriteString(barRow(y.Year, y.Count, max, styles.BarStyle))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *statsModel) userRatingChart(entries []domain.WatchlistEntry) string {
	hist := stats.UserRatingHistogram(entries)
	if len(hist) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render("Your Ratings"))
	b.WriteString("\n")
	max := 0
	for _, r := range hist {
		if r.Count > max {
			max = r.Count
		}
	}
	for _, r := range hist {
		b.WriteString(barRow(fmt.Sprintf("%d", r.Rating), r.Count, max, styles.BarAltStyle))
	}
	b.WriteString("\n")
	return b.String()
}

// barRow renders one horizontal chart bar scaled to the largest count
func barRow(label string, count, max int, style interface{ Render(...string) string }) string {
	width := 0
	if max > 0 {
		width = count * maxBarWidth / max
	}
	if count > 0 && width == 0 {
		width = 1
	}
	return fmt.Sprintf("%s %s %d\n",
		styles.BarLabelStyle.Render(fmt.Sprintf("%-16s", truncateLabel(label, 16))),
		style.Render(strings.Repeat("█", width)),
		count)
}

func truncateLabel(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
