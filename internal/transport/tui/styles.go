package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorAccent = lipgloss.Color("#FF5F87")
	ColorGold   = lipgloss.Color("#FFD75F")
	ColorGray   = lipgloss.Color("#808080")
	ColorBorder = lipgloss.Color("#444444")
)

// Styles стили отображения.
type Styles struct {
	Title            lipgloss.Style
	Section          lipgloss.Style
	ActiveSection    lipgloss.Style
	Slot             lipgloss.Style
	FocusedSlot      lipgloss.Style
	Category         lipgloss.Style
	SelectedCategory lipgloss.Style
	FocusedCategory  lipgloss.Style
	Row              lipgloss.Style
	CursorRow        lipgloss.Style
	Premium          lipgloss.Style
	Muted            lipgloss.Style
}

func DefaultStyles() Styles {
	section := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	slot := lipgloss.NewStyle().Padding(0, 1)
	category := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorGray)

	return Styles{
		Title:            lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Section:          section,
		ActiveSection:    section.BorderForeground(ColorAccent),
		Slot:             slot,
		FocusedSlot:      slot.Reverse(true),
		Category:         category,
		SelectedCategory: category.Bold(true).Foreground(ColorAccent),
		FocusedCategory:  category.Underline(true),
		Row:              lipgloss.NewStyle(),
		CursorRow:        lipgloss.NewStyle().Reverse(true),
		Premium:          lipgloss.NewStyle().Foreground(ColorGold),
		Muted:            lipgloss.NewStyle().Foreground(ColorGray).Italic(true),
	}
}
