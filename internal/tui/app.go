// Package tui is the terminal presentation layer. It consumes the
// watchlist service, the stats engine and the catalog client; no state
// of record lives here.
package tui

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgray/cinelog/internal/domain"
	"github.com/rgray/cinelog/internal/genres"
	"github.com/rgray/cinelog/internal/tui/styles"
	"github.com/rgray/cinelog/internal/watchlist"
)

// View identifies the active tab
type View int

const (
	ViewBrowse View = iota
	ViewWatchlist
	ViewStats
)

var viewLabels = []string{"Browse", "Watchlist", "Stats"}

// Model is the main Bubble Tea model for the application
type Model struct {
	keys     KeyMap
	view     View
	ready    bool
	width    int
	height   int

	resolver *genres.Resolver

	browse *browseModel
	watch  *watchModel
	stats  *statsModel

	// Set by the watchlist service's change callback; drained into a
	// WatchlistChangedMsg after each update so every view refreshes.
	dirty *atomic.Bool
}

// NewModel wires the views to their services. The watchlist service is
// passed in by the caller - there is no ambient singleton.
func NewModel(svc *watchlist.Service, catalog domain.CatalogRepository, resolver *genres.Resolver, profile domain.Profile, kind domain.MediaKind, defaultView string) *Model {
	keys := DefaultKeyMap()
	m := &Model{
		keys:     keys,
		resolver: resolver,
		browse:   newBrowseModel(catalog, svc, resolver, kind, keys),
		watch:    newWatchModel(svc, keys),
		stats:    newStatsModel(svc, profile),
		dirty:    &atomic.Bool{},
	}
	switch defaultView {
	case "watchlist":
		m.view = ViewWatchlist
	case "stats":
		m.view = ViewStats
	}
	svc.OnChange(func() { m.dirty.Store(true) })
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.browse.load(),
		loadGenres(m.resolver, domain.MediaKindMovie),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		content := m.height - 3 // tab bar + footer
		m.browse.setSize(m.width, content)
		m.watch.setSize(m.width, content)
		m.stats.setSize(m.width, content)

	case tea.KeyMsg:
		if !m.capturingInput() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.NextTab):
				m.view = (m.view + 1) % 3
				return m, nil
			case key.Matches(msg, m.keys.Browse):
				m.view = ViewBrowse
				return m, nil
			case key.Matches(msg, m.keys.List):
				m.view = ViewWatchlist
				return m, nil
			case key.Matches(msg, m.keys.Stats):
				m.view = ViewStats
				return m, nil
			}
		}
		// Keys go only to the active view
		cmds = append(cmds, m.activeView().Update(msg))

	default:
		// Data messages go to every view
		cmds = append(cmds, m.browse.Update(msg), m.watch.Update(msg), m.stats.Update(msg))
	}

	// A mutation happened during this update: fan out a change message
	if m.dirty.Swap(false) {
		cmds = append(cmds, func() tea.Msg { return WatchlistChangedMsg{} })
	}

	return m, tea.Batch(cmds...)
}

// viewUpdater is the shared surface of the three tab models
type viewUpdater interface {
	Update(tea.Msg) tea.Cmd
	View() string
}

func (m *Model) activeView() viewUpdater {
	switch m.view {
	case ViewWatchlist:
		return m.watch
	case ViewStats:
		return m.stats
	default:
		return m.browse
	}
}

// capturingInput reports whether a text input currently owns the keyboard
func (m *Model) capturingInput() bool {
	switch m.view {
	case ViewBrowse:
		return m.browse.searching || m.browse.enteringYear
	case ViewWatchlist:
		return m.watch.querying
	}
	return false
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var tabs []string
	for i, label := range viewLabels {
		if View(i) == m.view {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	content := m.activeView().View()

	footer := styles.DimStyle.Render(m.footerHelp())

	return tabBar + "\n" + content + "\n" + footer
}

func (m *Model) footerHelp() string {
	common := "tab: switch view · q: quit"
	switch m.view {
	case ViewBrowse:
		return strings.Join([]string{"a: add · enter: details · /: search · t: source · m: movies/tv · h/l: page · g/y/+/-: discover filters", common}, " · ")
	case ViewWatchlist:
		return strings.Join([]string{"s: status · +/-: rate · x: remove · f: filter · o: sort · /: title filter", common}, " · ")
	default:
		return common
	}
}
