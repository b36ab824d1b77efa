// Package export renders classified listings for consumption outside the tool,
// as CSV text or as a Google Sheets report.
package export

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
)

// ErrNothingToExport is returned when there are no listings to serialize.
var ErrNothingToExport = errors.New("no data to export")

// Header lists the export columns in order.
var Header = []string{
	"ASIN",
	"Title",
	"Status",
	"Our Price",
	"Buy Box Price",
	"Delta",
	"Current Winner",
	"Recommended Action",
}

// SerializeCSV renders listings as newline-delimited CSV text. Listings
// are written in the order given; callers pass the current view.
func SerializeCSV(listings []model.Listing) (string, error) {
	if len(listings) == 0 {
		return "", ErrNothingToExport
	}

	var b strings.Builder
	writeRecord(&b, Header)
	for _, l := range listings {
		b.WriteByte('\n')
		writeRecord(&b, Record(l))
	}
	return b.String(), nil
}

// Record returns the export fields for a single listing.
func Record(l model.Listing) []string {
	return []string{
		l.ASIN,
		l.Title,
		string(l.Status),
		formatAmount(l.OurPrice),
		formatAmount(l.BuyBoxPrice),
		formatAmount(l.Delta),
		l.BuyBoxSeller,
		l.Action,
	}
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(field))
	}
}

// escapeField quotes a field only when it contains a comma, quote or newline.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// formatAmount renders v with two decimals. Values that round to zero are
// written as 0.00, never -0.00.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
