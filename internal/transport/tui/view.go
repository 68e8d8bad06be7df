package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"num_market/internal/domain/entity"
	"num_market/internal/domain/value"
)

func (m *Model) View() string {
	sections := []string{
		m.styles.Title.Render("Number market"),
		m.section(FocusDigits, m.viewDigits()),
		m.section(FocusCategories, m.viewCategories()),
		m.viewStatus(),
		m.section(FocusList, m.viewList()),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) section(f Focus, content string) string {
	if m.focus == f && !m.text.Focused() {
		return m.styles.ActiveSection.Render(content)
	}

	return m.styles.Section.Render(content)
}

func (m *Model) viewDigits() string {
	slots := make([]string, 0, value.PatternLength)

	for i := range value.PatternLength {
		d := m.state.Digit(i)
		if d == "" {
			d = string(value.Wildcard)
		}

		if m.focus == FocusDigits && i == m.slot {
			slots = append(slots, m.styles.FocusedSlot.Render(d))
			continue
		}

		slots = append(slots, m.styles.Slot.Render(d))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, slots...)

	if m.text.Focused() {
		return line + "\n" + m.text.View()
	}

	if t := m.state.Text(); t != "" {
		return line + "\n" + m.styles.Muted.Render("text: "+t)
	}

	return line + "\n" + m.styles.Muted.Render("/ to search by text")
}

func (m *Model) viewCategories() string {
	items := make([]string, 0, len(m.categories))

	for i, c := range m.categories {
		style := m.styles.Category

		if m.state.IsSelected(c) {
			style = m.styles.SelectedCategory
		}

		if m.focus == FocusCategories && i == m.category {
			style = style.Inherit(m.styles.FocusedCategory)
		}

		items = append(items, style.Render(c.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m *Model) viewStatus() string {
	status := fmt.Sprintf("%d numbers, page %d, query %s", m.controller.Len(), m.controller.Page(), m.state.Parameter())

	if m.controller.Loading() {
		status = m.spinner.View() + " loading... " + status
	}

	return m.styles.Muted.Render(status)
}

func (m *Model) viewList() string {
	rows := m.controller.Rows()
	if len(rows) == 0 {
		if m.controller.Loading() {
			return m.styles.Muted.Render("loading...")
		}

		return m.styles.Muted.Render("no numbers")
	}

	end := min(m.offset+m.listHeight(), len(rows))
	lines := make([]string, 0, end-m.offset)

	for i := m.offset; i < end; i++ {
		line := formatRow(rows[i])

		if m.focus == FocusList && i == m.cursor {
			lines = append(lines, m.styles.CursorRow.Render(line))
			continue
		}

		if rows[i].IsPremium {
			lines = append(lines, m.styles.Premium.Render(line))
			continue
		}

		lines = append(lines, m.styles.Row.Render(line))
	}

	return strings.Join(lines, "\n")
}

func formatRow(row entity.ListingRow) string {
	premium := " "
	if row.IsPremium {
		premium = "★"
	}

	rating := ""
	if row.Rating.IsLucky {
		rating = fmt.Sprintf("%s %.0f%%", row.Rating.Description, row.Rating.Score)
	}

	return fmt.Sprintf(
		"%s %-11s  deposit %-6s  fee %-6s  contract %-4s  %s",
		premium,
		row.Number,
		row.Deposit,
		row.MonthlyFee,
		row.ContractPeriod,
		rating,
	)
}
