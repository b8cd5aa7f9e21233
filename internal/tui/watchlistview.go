package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgray/cinelog/internal/domain"
	"github.com/rgray/cinelog/internal/search"
	"github.com/rgray/cinelog/internal/stats"
	"github.com/rgray/cinelog/internal/tui/components"
	"github.com/rgray/cinelog/internal/tui/styles"
	"github.com/rgray/cinelog/internal/watchlist"
)

// Status filter cycle: all -> plan -> watching -> watched
var statusFilters = []domain.Status{"", domain.StatusPlan, domain.StatusWatching, domain.StatusWatched}

var sortKeys = []stats.SortKey{stats.SortByRecency, stats.SortByTitle, stats.SortByRating}

// watchModel is the "your videos" view: the watchlist projected through a
// status filter, a sort key and an optional fuzzy title query, with keys
// for rating, status and removal.
type watchModel struct {
	keys      KeyMap
	watchlist *watchlist.Service

	list    *components.List
	visible []domain.WatchlistEntry // current projection, row-aligned with list

	statusIdx int
	sortIdx   int

	queryInput textinput.Model
	querying   bool
	query      string

	width  int
	height int
}

func newWatchModel(svc *watchlist.Service, keys KeyMap) *watchModel {
	ti := textinput.New()
	ti.Placeholder = "filter by title..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle

	list := components.NewList()
	list.Focus(true)

	m := &watchModel{
		keys:       keys,
		watchlist:  svc,
		list:       list,
		queryInput: ti,
	}
	m.refresh()
	return m
}

func (m *watchModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-4)
}

// refresh recomputes the projection from a fresh snapshot
func (m *watchModel) refresh() {
	snapshot := m.watchlist.Snapshot()
	projected := stats.Project(snapshot.Entries, statusFilters[m.statusIdx], sortKeys[m.sortIdx])
	if m.query != "" {
		projected = search.FilterByTitle(projected, m.query)
	}
	m.visible = projected

	rows := make([]components.ListItem, len(projected))
	for i, e := range projected {
		rows[i] = components.ListItem{
			Title: e.Title,
			Desc:  entryDesc(e),
			Badge: statusBadge(e.Status),
		}
	}
	m.list.SetItems(rows)
}

func entryDesc(e domain.WatchlistEntry) string {
	rating := "unrated"
	if e.Rated() {
		rating = fmt.Sprintf("★%.1f", e.Rating)
	}
	if year := e.Year(); year != "" {
		return fmt.Sprintf("%s  %s", year, rating)
	}
	return rating
}

func statusBadge(s domain.Status) string {
	switch s {
	case domain.StatusWatching:
		return styles.StatusWatchingStyle.Render("●")
	case domain.StatusWatched:
		return styles.StatusWatchedStyle.Render("●")
	default:
		return styles.StatusPlanStyle.Render("●")
	}
}

func (m *watchModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case WatchlistChangedMsg:
		m.refresh()
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *watchModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.querying {
		switch msg.String() {
		case "enter":
			m.querying = false
			m.queryInput.Blur()
			m.query = strings.TrimSpace(m.queryInput.Value())
			m.refresh()
			return nil
		case "esc":
			m.querying = false
			m.queryInput.Blur()
			m.queryInput.SetValue("")
			m.query = ""
			m.refresh()
			return nil
		}
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		m.querying = true
		return m.queryInput.Focus()

	case key.Matches(msg, m.keys.CycleState):
		m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
		m.refresh()
		return nil

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIdx = (m.sortIdx + 1) % len(sortKeys)
		m.refresh()
		return nil

	case key.Matches(msg, m.keys.Remove):
		if e, ok := m.selected(); ok {
			m.watchlist.Remove(e.ID)
		}
		return nil

	case key.Matches(msg, m.keys.Status):
		if e, ok := m.selected(); ok {
			m.watchlist.SetStatus(e.ID, nextStatus(e.Status))
		}
		return nil

	case key.Matches(msg, m.keys.RateUp):
		if e, ok := m.selected(); ok {
			m.watchlist.SetRating(e.ID, clampRating(e.Rating+0.5))
		}
		return nil

	case key.Matches(msg, m.keys.RateDown):
		if e, ok := m.selected(); ok {
			m.watchlist.SetRating(e.ID, clampRating(e.Rating-0.5))
		}
		return nil
	}

	return m.list.Update(msg)
}

func (m *watchModel) selected() (domain.WatchlistEntry, bool) {
	i := m.list.Selected()
	if i < 0 || i >= len(m.visible) {
		return domain.WatchlistEntry{}, false
	}
	return m.visible[i], true
}

// nextStatus cycles plan -> watching -> watched -> plan. Unrecognized
// stored values restart the cycle at watching, same as plan.
func nextStatus(s domain.Status) domain.Status {
	switch s {
	case domain.StatusWatching:
		return domain.StatusWatched
	case domain.StatusWatched:
		return domain.StatusPlan
	default:
		return domain.StatusWatching
	}
}

// clampRating keeps the UI's ratings inside 0-10; the store itself does
// not enforce this.
func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 10 {
		return 10
	}
	return r
}

func (m *watchModel) View() string {
	var b strings.Builder

	filter := "All"
	if s := statusFilters[m.statusIdx]; s != "" {
		filter = s.Display()
	}
	header := fmt.Sprintf("%d titles · filter: %s · sort: %s", len(m.visible), filter, sortLabel(sortKeys[m.sortIdx]))
	b.WriteString(styles.SubtitleStyle.Render(header))
	b.WriteString("\n")

	if m.querying {
		b.WriteString(m.queryInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.list.View())
	return b.String()
}

func sortLabel(k stats.SortKey) string {
	switch k {
	case stats.SortByTitle:
		return "Title (A-Z)"
	case stats.SortByRating:
		return "Rating"
	default:
		return "Recently Added"
	}
}
