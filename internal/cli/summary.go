package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatMoney renders a dollar amount with two decimals.
func FormatMoney(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.2f", -v)
	}
	return printer.Sprintf("$%.2f", v)
}

// FormatDelta renders a signed price difference.
func FormatDelta(v float64) string {
	if v > 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

// TargetLabel names the matching target for display.
func TargetLabel(target string) string {
	if model.IsAllTarget(target) {
		return "All identities"
	}
	return target
}

// RenderSummary renders summary statistics in a box.
func RenderSummary(summary model.Summary, target string) string {
	winRate := fmt.Sprintf("%.1f%%", summary.WinRate)
	if summary.IsHighlighted() {
		winRate = SuccessStyle.Bold(true).Render(winRate)
	}

	verdict := WarningStyle.Render(summary.Verdict())
	if summary.WinRate > model.ExcellentWinRate {
		verdict = SuccessStyle.Render(TrophyIcon + " " + summary.Verdict())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Target:      %s\n", TargetLabel(target))
	fmt.Fprintf(&b, "Listings:    %s\n", FormatCount(summary.Total))
	fmt.Fprintf(&b, "Won:         %s\n", SuccessStyle.Render(FormatCount(summary.Won)))
	fmt.Fprintf(&b, "Lost:        %s\n", ErrorStyle.Render(FormatCount(summary.Lost)))
	fmt.Fprintf(&b, "Suppressed:  %s\n", WarningStyle.Render(FormatCount(summary.Suppressed)))
	fmt.Fprintf(&b, "Win rate:    %s  %s\n", winRate, verdict)
	fmt.Fprintf(&b, "Average gap: %s", FormatMoney(summary.AverageGap))

	return RenderBox(ChartIcon+" Buy Box Summary", b.String())
}

// ListingHeaders are the column titles of the listing table.
var ListingHeaders = []string{"ASIN", "Title", "Status", "Our Price", "BB Price", "Delta", "Current Winner", "Action"}

const maxTitleWidth = 40

// Truncate shortens s to width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// ListingRow returns the display cells for a listing.
func ListingRow(l model.Listing) []string {
	return []string{
		l.ASIN,
		Truncate(l.Title, maxTitleWidth),
		string(l.Status),
		FormatMoney(l.OurPrice),
		FormatMoney(l.BuyBoxPrice),
		FormatDelta(l.Delta),
		l.BuyBoxSeller,
		l.Action,
	}
}

// RenderListings renders listings as a bordered table. A positive limit caps
// the rows shown and notes how many were left out.
func RenderListings(listings []model.Listing, limit int) string {
	if len(listings) == 0 {
		return SubtleStyle.Render("No listings match the current view.")
	}

	shown := listings
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers(ListingHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if col == 2 && row >= 0 && row < len(shown) {
				return StatusStyle(shown[row].Status).Padding(0, 1)
			}
			return TableCellStyle
		})

	for _, l := range shown {
		t.Row(ListingRow(l)...)
	}

	out := t.Render()
	if hidden := len(listings) - len(shown); hidden > 0 {
		out += "\n" + SubtleStyle.Render(fmt.Sprintf("… and %s more", FormatCount(hidden)))
	}
	return out
}

// RenderRuns renders saved run history.
func RenderRuns(runs []model.Run) string {
	if len(runs) == 0 {
		return SubtleStyle.Render("No saved runs yet. Use analyze --save to record one.")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers("ID", "Saved", "Source", "Target", "Listings", "Win Rate").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	for _, r := range runs {
		t.Row(
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Source,
			TargetLabel(r.Target),
			FormatCount(r.Summary.Total),
			fmt.Sprintf("%.1f%%", r.Summary.WinRate),
		)
	}
	return t.Render()
}
