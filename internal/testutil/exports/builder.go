// Package exports builds marketplace export files for tests.
//
// Example usage:
//
//	path := exports.NewBuilder().
//		Won("A1", "Widget", 10).
//		Lost("B2", "Gadget", "Other Seller", 12.50, 12).
//		WriteFile(t, t.TempDir())
package exports

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Veraticus/buybox-master/internal/model"
)

// Columns is the header written by the builder.
var Columns = []string{"ASIN", "Title", "Buy Box Seller", "Buy Box Price", "New"}

// DefaultSeller is the winning seller used by Won.
const DefaultSeller = "SecuLife"

// Builder accumulates export rows.
type Builder struct {
	rows [][]string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Row adds a row with raw cell values in Columns order.
func (b *Builder) Row(asin, title, seller, buyBoxPrice, ourPrice string) *Builder {
	b.rows = append(b.rows, []string{asin, title, seller, buyBoxPrice, ourPrice})
	return b
}

// Won adds a listing whose buy box is held by DefaultSeller at price.
func (b *Builder) Won(asin, title string, price float64) *Builder {
	return b.Row(asin, title, DefaultSeller, money(price), money(price))
}

// Lost adds a listing whose buy box is held by seller.
func (b *Builder) Lost(asin, title, seller string, ourPrice, buyBoxPrice float64) *Builder {
	return b.Row(asin, title, seller, money(buyBoxPrice), money(ourPrice))
}

// Suppressed adds a listing with no buy box price.
func (b *Builder) Suppressed(asin, title string, ourPrice float64) *Builder {
	return b.Row(asin, title, "-", "", money(ourPrice))
}

// WithoutASIN adds a row the classifier drops.
func (b *Builder) WithoutASIN(title string) *Builder {
	return b.Row("", title, "Other Seller", "5.00", "5.00")
}

// Len returns the number of rows added.
func (b *Builder) Len() int {
	return len(b.rows)
}

// Records returns the rows as ingested records.
func (b *Builder) Records() []model.RawRecord {
	records := make([]model.RawRecord, 0, len(b.rows))
	for _, row := range b.rows {
		record := make(model.RawRecord, len(Columns))
		for i, column := range Columns {
			record[column] = row[i]
		}
		records = append(records, record)
	}
	return records
}

// CSV renders the rows with a header line.
func (b *Builder) CSV() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(Columns, ","))
	sb.WriteString("\n")
	for _, row := range b.rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteFile writes the CSV to dir/export.csv and returns the path.
func (b *Builder) WriteFile(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "export.csv")
	if err := os.WriteFile(path, []byte(b.CSV()), 0o600); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	return path
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
