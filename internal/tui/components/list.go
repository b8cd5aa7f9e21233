package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgray/cinelog/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// ListItem is one display row
type ListItem struct {
	Title string // Primary text, also the filter target
	Desc  string // Secondary text, right of the title
	Badge string // Short marker rendered before the title
}

// List is a scrollable, filterable row list. Filtering is fuzzy over the
// row titles; cursor positions always refer to the filtered view, and
// Selected maps back to the original index.
type List struct {
	items []ListItem

	cursor int
	offset int

	width   int
	height  int
	focused bool

	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into items, nil when no filter applies
}

// NewList creates an empty list
func NewList() *List {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	return &List{filterInput: ti}
}

// SetItems replaces the rows and clamps the cursor
func (l *List) SetItems(items []ListItem) {
	l.items = items
	l.applyFilter()
	l.clampCursor()
}

// SetSize sets the rendered dimensions
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Focus marks the list as the active input target
func (l *List) Focus(focused bool) { l.focused = focused }

// Len returns the number of visible rows
func (l *List) Len() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.items)
}

// Selected returns the original index of the row under the cursor, or -1
func (l *List) Selected() int {
	if l.Len() == 0 {
		return -1
	}
	if l.filteredIdx != nil {
		return l.filteredIdx[l.cursor]
	}
	return l.cursor
}

// Filtering reports whether the filter input is capturing keys
func (l *List) Filtering() bool { return l.filterActive }

// StartFilter opens the filter input
func (l *List) StartFilter() tea.Cmd {
	l.filterActive = true
	return l.filterInput.Focus()
}

// ClearFilter closes the filter input and restores the full list
func (l *List) ClearFilter() {
	l.filterActive = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.filteredIdx = nil
	l.clampCursor()
}

// Update handles key messages. While the filter input is active all keys
// go to it except enter (accept) and esc (clear).
func (l *List) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if l.filterActive {
		switch keyMsg.String() {
		case "enter":
			l.filterActive = false
			l.filterInput.Blur()
			return nil
		case "esc":
			l.ClearFilter()
			return nil
		}
		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		l.clampCursor()
		return cmd
	}

	switch keyMsg.String() {
	case "up", "k":
		l.Move(-1)
	case "down", "j":
		l.Move(1)
	case "pgup":
		l.Move(-l.visibleRows())
	case "pgdown":
		l.Move(l.visibleRows())
	case "home", "g":
		l.cursor = 0
		l.offset = 0
	case "end", "G":
		l.cursor = l.Len() - 1
		l.clampCursor()
	}
	return nil
}

// Move shifts the cursor by delta, clamped to the visible rows
func (l *List) Move(delta int) {
	l.cursor += delta
	l.clampCursor()
}

func (l *List) visibleRows() int {
	rows := l.height - 1 // header/filter line
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *List) clampCursor() {
	if l.cursor < 0 {
		l.cursor = 0
	}
	if max := l.Len() - 1; l.cursor > max {
		if max < 0 {
			max = 0
		}
		l.cursor = max
	}
	// Keep cursor inside the scroll window
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// applyFilter recomputes filteredIdx from the filter input
func (l *List) applyFilter() {
	query := strings.TrimSpace(l.filterInput.Value())
	if query == "" {
		l.filteredIdx = nil
		return
	}

	lowerTitles := make([]string, len(l.items))
	for i, item := range l.items {
		lowerTitles[i] = strings.ToLower(item.Title)
	}

	matches := fuzzy.Find(strings.ToLower(query), lowerTitles)
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	l.filteredIdx = idx
}

// View renders the list
func (l *List) View() string {
	var b strings.Builder

	if l.filterActive || l.filterInput.Value() != "" {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	rows := l.visibleRows()
	count := l.Len()
	if count == 0 {
		b.WriteString(styles.DimStyle.Render("  nothing to show"))
		return b.String()
	}

	end := l.offset + rows
	if end > count {
		end = count
	}

	for i := l.offset; i < end; i++ {
		item := l.itemAt(i)
		line := l.renderRow(item, i == l.cursor)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (l *List) itemAt(visible int) ListItem {
	if l.filteredIdx != nil {
		return l.items[l.filteredIdx[visible]]
	}
	return l.items[visible]
}

func (l *List) renderRow(item ListItem, selected bool) string {
	badgeWidth := 0
	if item.Badge != "" {
		badgeWidth = lipgloss.Width(item.Badge) + 1
	}

	// Truncate the raw title before attaching the styled badge; cutting
	// the combined string could land inside an escape sequence.
	title := item.Title
	avail := l.width - lipgloss.Width(item.Desc) - badgeWidth - 3
	if avail > 0 && lipgloss.Width(title) > avail {
		title = truncate(title, avail)
	}
	if item.Badge != "" {
		title = item.Badge + " " + title
	}

	line := title
	if item.Desc != "" {
		pad := l.width - lipgloss.Width(title) - lipgloss.Width(item.Desc) - 2
		if pad < 1 {
			pad = 1
		}
		line = fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", pad), styles.SubtitleStyle.Render(item.Desc))
	}

	if selected && l.focused {
		return styles.SelectedStyle.Render(line)
	}
	return " " + line
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
