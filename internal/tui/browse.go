package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgray/cinelog/internal/domain"
	"github.com/rgray/cinelog/internal/genres"
	"github.com/rgray/cinelog/internal/tui/components"
	"github.com/rgray/cinelog/internal/tui/styles"
	"github.com/rgray/cinelog/internal/watchlist"
)

// browseModel is the catalog browsing view: trending/popular/search
// listings with paging, add-to-watchlist and a detail panel. Results of
// superseded fetches are discarded by request id - last write wins.
type browseModel struct {
	keys      KeyMap
	catalog   domain.CatalogRepository
	watchlist *watchlist.Service
	resolver  *genres.Resolver

	list  *components.List
	items []domain.CatalogItem

	source     BrowseSource
	kind       domain.MediaKind
	page       int
	totalPages int

	searchInput textinput.Model
	searching   bool
	query       string

	// Discover filter state. genreIDs holds the loaded genre ids per
	// kind, name-sorted, so the genre key cycles in a stable order.
	filter    domain.DiscoverFilter
	genreIdx  int // 0 = any genre, i = genreIDs[kind][i-1]
	genreIDs  map[domain.MediaKind][]int64
	genreMaps map[domain.MediaKind]domain.GenreMap

	yearInput    textinput.Model
	enteringYear bool

	spinner spinner.Model
	loading bool
	reqSeq  int // id of the most recently issued fetch

	detail *domain.CatalogItem
	err    error

	width  int
	height int
}

func newBrowseModel(catalog domain.CatalogRepository, svc *watchlist.Service, resolver *genres.Resolver, kind domain.MediaKind, keys KeyMap) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "search the catalog..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle

	yi := textinput.New()
	yi.Placeholder = "1999"
	yi.Prompt = "year: "
	yi.PromptStyle = styles.FilterPromptStyle
	yi.CharLimit = 4

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AccentStyle

	list := components.NewList()
	list.Focus(true)

	return &browseModel{
		keys:        keys,
		catalog:     catalog,
		watchlist:   svc,
		resolver:    resolver,
		list:        list,
		kind:        kind,
		page:        1,
		searchInput: ti,
		yearInput:   yi,
		spinner:     sp,
		genreIDs:    make(map[domain.MediaKind][]int64),
		genreMaps:   make(map[domain.MediaKind]domain.GenreMap),
	}
}

// load issues a fetch for the current source/kind/page, superseding any
// in-flight request.
func (m *browseModel) load() tea.Cmd {
	m.reqSeq++
	m.loading = true
	m.err = nil
	return tea.Batch(
		fetchPage(m.catalog, m.kind, m.source, m.query, m.filter, m.page, m.reqSeq),
		m.spinner.Tick,
	)
}

func (m *browseModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-4)
}

func (m *browseModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CatalogPageMsg:
		if msg.RequestID != m.reqSeq {
			return nil // Stale result from a superseded fetch
		}
		m.loading = false
		m.items = msg.Page.Results
		m.totalPages = msg.Page.TotalPages
		m.refreshList()
		return nil

	case CatalogErrMsg:
		if msg.RequestID != m.reqSeq {
			return nil
		}
		m.loading = false
		m.err = msg.Err
		return nil

	case DetailLoadedMsg:
		m.detail = msg.Item
		return nil

	case GenresLoadedMsg:
		m.genreMaps[msg.Kind] = msg.Map
		ids := make([]int64, 0, len(msg.Map))
		for id := range msg.Map {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return msg.Map[ids[i]] < msg.Map[ids[j]]
		})
		m.genreIDs[msg.Kind] = ids
		return nil

	case WatchlistChangedMsg:
		m.refreshList()
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Search input captures everything while open
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.query = strings.TrimSpace(m.searchInput.Value())
			if m.query != "" {
				m.source = SourceSearch
				m.page = 1
				return m.load()
			}
			return nil
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			return nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}

	// So does the year input
	if m.enteringYear {
		switch msg.String() {
		case "enter":
			m.enteringYear = false
			m.yearInput.Blur()
			y := strings.TrimSpace(m.yearInput.Value())
			if y == "" || validYear(y) {
				m.filter.Year = y
				m.page = 1
				return m.load()
			}
			return nil
		case "esc":
			m.enteringYear = false
			m.yearInput.Blur()
			m.yearInput.SetValue("")
			return nil
		}
		var cmd tea.Cmd
		m.yearInput, cmd = m.yearInput.Update(msg)
		return cmd
	}

	// Detail panel has its own minimal keys
	if m.detail != nil {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.detail = nil
		case key.Matches(msg, m.keys.Add):
			m.watchlist.Add(m.detail.Entry())
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m.searchInput.Focus()

	case key.Matches(msg, m.keys.Source):
		m.source = m.nextSource()
		m.page = 1
		return m.load()

	case key.Matches(msg, m.keys.Kind):
		if m.kind == domain.MediaKindMovie {
			m.kind = domain.MediaKindTV
		} else {
			m.kind = domain.MediaKindMovie
		}
		// Genre ids are kind-specific, so the filter resets with the kind
		m.filter = domain.DiscoverFilter{}
		m.genreIdx = 0
		m.page = 1
		return tea.Batch(m.load(), loadGenres(m.resolver, m.kind))

	case key.Matches(msg, m.keys.NextPage):
		if m.totalPages == 0 || m.page < m.totalPages {
			m.page++
			return m.load()
		}
		return nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.page > 1 {
			m.page--
			return m.load()
		}
		return nil

	case key.Matches(msg, m.keys.Add):
		if item, ok := m.selected(); ok {
			m.watchlist.Add(item.Entry())
		}
		return nil

	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.selected(); ok {
			// One logical view event per opened detail
			m.watchlist.IncrementBrowseCount()
			return fetchDetail(m.catalog, m.kind, item.ID)
		}
		return nil

	case key.Matches(msg, m.keys.Genre):
		if m.source == SourceDiscover {
			m.cycleGenre()
			m.page = 1
			return m.load()
		}

	case key.Matches(msg, m.keys.Year):
		if m.source == SourceDiscover {
			m.enteringYear = true
			m.yearInput.SetValue(m.filter.Year)
			return m.yearInput.Focus()
		}

	case key.Matches(msg, m.keys.RateUp):
		if m.source == SourceDiscover {
			m.filter.MinVote = clampRating(m.filter.MinVote + 0.5)
			m.page = 1
			return m.load()
		}

	case key.Matches(msg, m.keys.RateDown):
		if m.source == SourceDiscover {
			m.filter.MinVote = clampRating(m.filter.MinVote - 0.5)
			m.page = 1
			return m.load()
		}
	}

	return m.list.Update(msg)
}

// cycleGenre advances the discover genre filter: any -> each loaded
// genre in name order -> back to any.
func (m *browseModel) cycleGenre() {
	ids := m.genreIDs[m.kind]
	if len(ids) == 0 {
		m.filter.GenreID = 0
		m.genreIdx = 0
		return
	}
	m.genreIdx = (m.genreIdx + 1) % (len(ids) + 1)
	if m.genreIdx == 0 {
		m.filter.GenreID = 0
	} else {
		m.filter.GenreID = ids[m.genreIdx-1]
	}
}

func validYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// nextSource cycles through the sources reachable without a query
func (m *browseModel) nextSource() BrowseSource {
	switch m.source {
	case SourceTrending:
		return SourcePopular
	case SourcePopular:
		return SourceDiscover
	default:
		return SourceTrending
	}
}

func (m *browseModel) selected() (domain.CatalogItem, bool) {
	i := m.list.Selected()
	if i < 0 || i >= len(m.items) {
		return domain.CatalogItem{}, false
	}
	return m.items[i], true
}

func (m *browseModel) refreshList() {
	rows := make([]components.ListItem, len(m.items))
	for i, item := range m.items {
		badge := " "
		if m.watchlist.Contains(item.ID) {
			badge = styles.SuccessStyle.Render("+")
		}
		desc := item.ReleaseDate
		if item.VoteAverage > 0 {
			desc = fmt.Sprintf("%s  ★%.1f", desc, item.VoteAverage)
		}
		rows[i] = components.ListItem{Title: item.Title, Desc: desc, Badge: badge}
	}
	m.list.SetItems(rows)
}

func (m *browseModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s · %s · page %d", m.source, m.kind, m.page)
	if m.totalPages > 0 {
		header += fmt.Sprintf("/%d", m.totalPages)
	}
	if m.source == SourceSearch && m.query != "" {
		header += fmt.Sprintf("  %q", m.query)
	}
	if m.source == SourceDiscover {
		header += m.filterSummary()
	}
	b.WriteString(styles.SubtitleStyle.Render(header))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	if m.enteringYear {
		b.WriteString(m.yearInput.View())
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render("catalog unavailable: " + m.err.Error()))
	case m.loading:
		b.WriteString(m.spinner.View() + " loading...")
	case m.detail != nil:
		b.WriteString(m.detailView())
	default:
		b.WriteString(m.list.View())
	}
	return b.String()
}

func (m *browseModel) filterSummary() string {
	var parts []string
	if m.filter.GenreID != 0 {
		if name, ok := m.genreMaps[m.kind][m.filter.GenreID]; ok {
			parts = append(parts, name)
		}
	}
	if m.filter.Year != "" {
		parts = append(parts, m.filter.Year)
	}
	if m.filter.MinVote > 0 {
		parts = append(parts, fmt.Sprintf("★≥%.1f", m.filter.MinVote))
	}
	if len(parts) == 0 {
		return ""
	}
	return " · " + strings.Join(parts, " · ")
}

func (m *browseModel) detailView() string {
	d := m.detail
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(d.Title))
	b.WriteString("\n")

	var meta []string
	if d.ReleaseDate != "" {
		meta = append(meta, d.ReleaseDate)
	}
	if rt := d.FormattedRuntime(); rt != "" {
		meta = append(meta, rt)
	}
	if d.VoteAverage > 0 {
		meta = append(meta, fmt.Sprintf("★%.1f", d.VoteAverage))
	}
	if len(d.Genres) > 0 {
		meta = append(meta, strings.Join(d.Genres, ", "))
	}
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n\n")

	overview := d.Overview
	if overview == "" {
		overview = "No overview available."
	}
	b.WriteString(wordWrap(overview, m.width-2))
	b.WriteString("\n\n")
	if m.watchlist.Contains(d.ID) {
		b.WriteString(styles.SuccessStyle.Render("on your watchlist"))
	} else {
		b.WriteString(styles.DimStyle.Render("a: add to watchlist"))
	}
	b.WriteString(styles.DimStyle.Render("  esc: back"))
	return b.String()
}

// wordWrap breaks text on spaces to fit the width
func wordWrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	var b strings.Builder
	line := 0
	for i, w := range words {
		if line+len(w)+1 > width && line > 0 {
			b.WriteString("\n")
			line = 0
		} else if i > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
