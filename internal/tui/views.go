package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/view"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var columnTitles = map[view.SortKey]string{
	view.SortASIN:        "ASIN",
	view.SortTitle:       "Title",
	view.SortStatus:      "Status",
	view.SortOurPrice:    "Our Price",
	view.SortBuyBoxPrice: "BB Price",
	view.SortDelta:       "Delta",
	view.SortSeller:      "Current Winner",
	view.SortAction:      "Action",
}

// fixed widths for every column except Title, which takes the remainder.
var columnWidths = map[view.SortKey]int{
	view.SortASIN:        12,
	view.SortStatus:      11,
	view.SortOurPrice:    10,
	view.SortBuyBoxPrice: 10,
	view.SortDelta:       9,
	view.SortSeller:      18,
	view.SortAction:      28,
}

func (m Model) columns() []table.Column {
	fixed := 0
	for _, w := range columnWidths {
		fixed += w + 2
	}
	titleWidth := max(m.width-fixed-2, 16)

	state := m.session.State()
	cols := make([]table.Column, 0, len(view.SortKeys))
	for i, k := range view.SortKeys {
		title := fmt.Sprintf("%d %s", i+1, columnTitles[k])
		if state.Sort != nil && state.Sort.Key == k {
			if state.Sort.Direction == view.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		width := columnWidths[k]
		if k == view.SortTitle {
			width = titleWidth
		}
		cols = append(cols, table.Column{Title: title, Width: max(width, lipgloss.Width(title))})
	}
	return cols
}

func (m Model) rows() []table.Row {
	visible := m.session.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, l := range visible {
		rows = append(rows, table.Row{
			l.ASIN,
			l.Title,
			string(l.Status),
			money(l.OurPrice),
			money(l.BuyBoxPrice),
			delta(l.Delta),
			l.BuyBoxSeller,
			l.Action,
		})
	}
	return rows
}

func (m Model) tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = m.theme.Header
	s.Selected = m.theme.Selected
	return s
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderStats(),
		m.renderToolbar(),
		m.table.View(),
		m.renderDetail(),
		m.renderStatusLine(),
		m.help.View(m.keymap),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("📦 Buy Box Analysis")
	source := ""
	if m.config.Source != "" {
		source = m.theme.Subtitle.Render("  " + m.config.Source)
	}
	return title + source
}

func (m Model) renderStats() string {
	sum := m.session.Summary()

	card := func(label, value string, style lipgloss.Style) string {
		return m.theme.StatCard.Render(m.theme.Muted.Render(label) + "\n" + style.Render(value))
	}

	rateStyle := m.theme.Bold
	if sum.IsHighlighted() {
		rateStyle = m.theme.StatusWon
	}
	verdict := m.theme.StatusBlocked.Render(sum.Verdict())
	if sum.WinRate > model.ExcellentWinRate {
		verdict = m.theme.StatusWon.Render(sum.Verdict())
	}
	rate := m.theme.StatCard.Render(
		m.theme.Muted.Render("Win Rate") + "\n" +
			rateStyle.Render(fmt.Sprintf("%.1f%%", sum.WinRate)) + " " + m.winRate.ViewAs(sum.WinRate/100) + "\n" +
			verdict)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", fmt.Sprintf("%d", sum.Total), m.theme.Bold),
		card("Won", fmt.Sprintf("%d", sum.Won), m.theme.StatusWon),
		card("Lost", fmt.Sprintf("%d", sum.Lost), m.theme.StatusLost),
		card("Suppressed", fmt.Sprintf("%d", sum.Suppressed), m.theme.StatusBlocked),
		card("Avg Gap", money(sum.AverageGap), m.theme.Bold),
		rate,
	)
}

func (m Model) renderToolbar() string {
	state := m.session.State()

	filter := "all"
	if state.StatusFilter != view.FilterAll && state.StatusFilter != "" {
		filter = strings.ToLower(string(state.StatusFilter))
	}

	parts := []string{
		"Target: " + m.theme.Bold.Render(targetLabel(m.session.Target())),
		"Status: " + m.theme.Bold.Render(filter),
		fmt.Sprintf("Showing %d of %d", len(m.session.Visible()), len(m.session.Listings())),
	}

	searchLine := m.search.View()
	if !m.searching && m.search.Value() == "" {
		searchLine = m.theme.Muted.Render("/ to search")
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "   ")) + "\n" + searchLine
}

func (m Model) renderDetail() string {
	visible := m.session.Visible()
	if len(visible) == 0 {
		return m.theme.Muted.Render("No listings match the current view.")
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(visible) {
		return ""
	}
	l := visible[cursor]
	line := fmt.Sprintf("%s  %s  %s",
		m.theme.Status(l.Status).Render(l.Status.Label()),
		m.theme.Bold.Render(l.Action),
		m.theme.Muted.Render(l.Title))
	if l.HasImage() {
		line += m.theme.Muted.Render("  " + l.ImageURL)
	}
	return line
}

func (m Model) renderStatusLine() string {
	if m.lastErr != nil {
		return m.theme.Error.Render("✗ " + m.lastErr.Error())
	}
	if m.status != "" {
		return m.theme.StatusBar.Render(m.status)
	}
	return ""
}

func targetLabel(target string) string {
	if model.IsAllTarget(target) {
		return "All identities"
	}
	return target
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func delta(v float64) string {
	if v > 0 {
		return "+" + money(v)
	}
	return money(v)
}
