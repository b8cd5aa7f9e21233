package components

import (
	"strings"
	"testing"
)

func TestRenderRowKeepsStyledBadgeIntact(t *testing.T) {
	l := NewList()
	l.SetSize(20, 10)

	badge := "\x1b[32m+\x1b[0m"
	item := ListItem{Title: "A Very Long Movie Title Indeed", Desc: "2020", Badge: badge}

	row := l.renderRow(item, false)

	if !strings.Contains(row, badge) {
		t.Fatalf("badge escape sequence was mangled: %q", row)
	}
	if !strings.Contains(row, "…") {
		t.Fatalf("expected truncated title on narrow width: %q", row)
	}
}

func TestRenderRowWithoutBadge(t *testing.T) {
	l := NewList()
	l.SetSize(40, 10)

	row := l.renderRow(ListItem{Title: "Heat", Desc: "1995"}, false)
	if !strings.Contains(row, "Heat") || !strings.Contains(row, "1995") {
		t.Fatalf("unexpected row: %q", row)
	}
}

func TestSelectedMapsThroughFilter(t *testing.T) {
	l := NewList()
	l.SetSize(40, 10)
	l.SetItems([]ListItem{
		{Title: "Alien"},
		{Title: "The Matrix"},
		{Title: "Heat"},
	})

	l.filterInput.SetValue("matrix")
	l.applyFilter()
	l.clampCursor()

	if got := l.Selected(); got != 1 {
		t.Fatalf("expected original index 1, got %d", got)
	}
}
