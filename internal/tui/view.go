package tui

import (
	"fmt"
	"strings"

	"emojihub/internal/catalog"
	"emojihub/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth     = 24 // Includes the gap between cells
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 9 // Header, filter bar, summary, detail, banner, help
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	screenStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // Pinkish

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("160")).
			Foreground(lipgloss.Color("203"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("34")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if m.Screen == ScreenFavorites {
		b.WriteString(m.favoritesView())
	} else {
		b.WriteString(m.catalogView())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m AppModel) header() string {
	name := "Catalog"
	nav := fmt.Sprintf("%s Favorites (%d)", model.IconFavorite, m.Favorites.Len())
	if m.Screen == ScreenFavorites {
		name = "My Favorites"
		nav = "← Back to Catalog"
	}
	left := titleStyle.Render("Emoji Hub") + " " + screenStyle.Render(name)
	gap := m.width() - lipgloss.Width(left) - lipgloss.Width(nav)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + dimStyle.Render(nav) + "\n"
}

func (m AppModel) catalogView() string {
	var b strings.Builder
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	switch {
	case m.Loading:
		b.WriteString(fmt.Sprintf("  %s Loading emojis...\n", m.Spinner.View()))
		return b.String()
	case m.Err != nil:
		msg := fmt.Sprintf("Error: %v\n\nPress r to try again.", m.Err)
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.Catalog.Visible()
	summary := catalog.Summary(len(visible), m.Catalog.Total())
	hint := ""
	if !m.Catalog.Criteria().IsNeutral() {
		hint = dimStyle.Render("  x: clear all filters")
	}
	b.WriteString(summary + hint + "\n\n")

	if len(visible) == 0 {
		b.WriteString(emptyState("No emojis found", "Try adjusting your search or filters"))
		return b.String()
	}

	b.WriteString(m.grid(visible, m.SelectedIdx, true))
	if e, ok := m.selectedCatalog(); ok {
		b.WriteString("\n")
		b.WriteString(detailLine(e))
	}
	return b.String()
}

func (m AppModel) favoritesView() string {
	var b strings.Builder
	list := m.Favorites.List()
	b.WriteString(fmt.Sprintf("You have %d favorite emojis", len(list)))
	if len(list) > 0 {
		b.WriteString(dimStyle.Render("  D: clear all"))
	}
	b.WriteString("\n\n")

	if m.ConfirmClear {
		b.WriteString(warnStyle.Render("Are you sure you want to clear all favorites? (y/N)"))
		b.WriteString("\n\n")
	}

	if len(list) == 0 {
		b.WriteString(emptyState("No favorites yet", "Start adding emojis to your favorites from the catalog (tab)"))
		return b.String()
	}

	b.WriteString(m.grid(list, m.FavSelectedIdx, false))
	if e, ok := m.selectedFavorite(); ok {
		b.WriteString("\n")
		b.WriteString(detailLine(e))
	}
	return b.String()
}

func (m AppModel) filterBar() string {
	criteria := m.Catalog.Criteria()

	search := m.InputBuffer.View()
	if !m.InputMode {
		q := criteria.Query
		if q == "" {
			q = dimStyle.Render("Search emojis...")
		}
		search = "/ " + q
	}

	category := criteria.CategoryFilter()
	if category == model.All {
		category = "All Categories"
	}
	group := criteria.GroupFilter()
	if group == model.All {
		group = "All Groups"
	}
	if len(m.Catalog.Categories()) == 0 {
		category += dimStyle.Render(" (unavailable)")
	}
	if len(m.Catalog.Groups()) == 0 {
		group += dimStyle.Render(" (unavailable)")
	}

	return fmt.Sprintf("%s   %s %s   %s %s",
		search,
		labelStyle.Render("Category:"), category,
		labelStyle.Render("Group:"), group)
}

// grid lays the records out in rows of fixed-width cells and shows only the
// rows around the cursor that fit the window.
func (m AppModel) grid(list []model.Emoji, selected int, showFavorite bool) string {
	cols := m.columns()
	rows := (len(list) + cols - 1) / cols

	visibleRows := m.height() - chromeHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	startRow := 0
	if rows > visibleRows {
		selRow := selected / cols
		startRow = selRow - visibleRows/2
		if startRow < 0 {
			startRow = 0
		}
		if startRow+visibleRows > rows {
			startRow = rows - visibleRows
		}
	}
	endRow := startRow + visibleRows
	if endRow > rows {
		endRow = rows
	}

	var b strings.Builder
	for r := startRow; r < endRow; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(list) {
				break
			}
			b.WriteString(m.cell(list[i], i == selected, showFavorite))
		}
		b.WriteString("\n")
	}
	if rows > visibleRows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("rows %d-%d of %d", startRow+1, endRow, rows)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) cell(e model.Emoji, selected, showFavorite bool) string {
	mark := model.IconRemove
	markStyle := dimStyle
	if showFavorite {
		mark = model.IconNotFavorite
		if m.Favorites.IsFavorite(e) {
			mark = model.IconFavorite
			markStyle = favoriteStyle
		}
	}

	glyph := model.Glyph(e)
	if glyph == "" {
		glyph = model.IconMissing
	}
	glyph = runewidth.FillRight(runewidth.Truncate(glyph, 2, ""), 2)

	label := runewidth.Truncate(e.Name, cellWidth-7, "…")
	text := runewidth.FillRight(glyph+" "+label, cellWidth-3)

	style := normalStyle
	if selected {
		style = selectedStyle
	}
	return markStyle.Render(mark) + " " + style.Render(text) + " "
}

func (m AppModel) footer() string {
	var b strings.Builder
	if m.Copied != "" {
		b.WriteString(bannerStyle.Render(fmt.Sprintf("%s Copied %s to clipboard!", model.IconCopied, m.Copied)))
		b.WriteString("\n")
	}
	if m.Status != "" {
		b.WriteString(warnStyle.Render(m.Status))
		b.WriteString("\n")
	}
	if m.Screen == ScreenFavorites {
		b.WriteString(m.Help.View(favoritesKeys{m.Keys}))
	} else {
		b.WriteString(m.Help.View(catalogKeys{m.Keys}))
	}
	return b.String()
}

func detailLine(e model.Emoji) string {
	parts := []string{labelStyle.Render(e.Name)}
	if e.Category != "" {
		parts = append(parts, e.Category)
	}
	if e.Group != "" {
		parts = append(parts, e.Group)
	}
	if len(e.Unicode) > 0 {
		parts = append(parts, dimStyle.Render(strings.Join(e.Unicode, " ")))
	}
	return strings.Join(parts, " · ") + "\n"
}

func emptyState(title, hint string) string {
	return fmt.Sprintf("\n  %s %s\n  %s\n", model.IconEmpty, title, dimStyle.Render(hint))
}

// columns is how many cells fit side by side.
func (m AppModel) columns() int {
	cols := m.width() / cellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m AppModel) width() int {
	if m.WindowSize.Width > 0 {
		return m.WindowSize.Width
	}
	return defaultWidth
}

func (m AppModel) height() int {
	if m.WindowSize.Height > 0 {
		return m.WindowSize.Height
	}
	return defaultHeight
}
