package components

import (
	"strings"

	"github.com/theirongolddev/economanager/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// tabPadding is the horizontal padding on each side of a tab label.
const tabPadding = 1

// dirtyMark is appended to the label of a month with unsaved changes.
const dirtyMark = "*"

// Tab is a single month tab.
type Tab struct {
	Label string
	Dirty bool
}

// TabVisualWidth returns the rendered width of a tab, excluding separators.
func TabVisualWidth(tab Tab) int {
	w := lipgloss.Width(tab.Label) + 2*tabPadding
	if tab.Dirty {
		w += lipgloss.Width(dirtyMark)
	}
	return w
}

// VisibleTabs returns the first and last index of the tabs that fit in
// width around active, so the active tab always stays on screen.
func VisibleTabs(tabs []Tab, active, width int) (first, last int) {
	if len(tabs) == 0 {
		return 0, -1
	}
	if active < 0 {
		active = 0
	}
	if active >= len(tabs) {
		active = len(tabs) - 1
	}

	first, last = active, active
	used := TabVisualWidth(tabs[active])
	for {
		grew := false
		if last+1 < len(tabs) && used+1+TabVisualWidth(tabs[last+1]) <= width {
			last++
			used += 1 + TabVisualWidth(tabs[last])
			grew = true
		}
		if first > 0 && used+1+TabVisualWidth(tabs[first-1]) <= width {
			first--
			used += 1 + TabVisualWidth(tabs[first])
			grew = true
		}
		if !grew {
			return first, last
		}
	}
}

// RenderTabBar renders the month tabs with the given active index.
func RenderTabBar(tabs []Tab, activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, tabPadding)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, tabPadding)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	barStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(width)

	first, last := VisibleTabs(tabs, activeIdx, width)

	var parts []string
	for i := first; i <= last; i++ {
		label := tabs[i].Label
		if tabs[i].Dirty {
			label += dirtyMark
		}
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	return barStyle.Render(strings.Join(parts, sepStyle.Render("│")))
}

// TabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the same window and widths used by RenderTabBar.
func TabAtX(tabs []Tab, activeIdx, width, x int) int {
	first, last := VisibleTabs(tabs, activeIdx, width)
	pos := 0
	for i := first; i <= last; i++ {
		w := TabVisualWidth(tabs[i])
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}
