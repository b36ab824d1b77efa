// Package ingest turns delimited product exports into raw records keyed by header.
package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls how a file is parsed.
type Options struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// DelimiterFor picks the field delimiter from a file extension.
func DelimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	}
	return ','
}

// ReadFile parses the file at path. The delimiter follows the extension.
func ReadFile(ctx context.Context, path string) ([]model.RawRecord, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Read(ctx, f, Options{Comma: DelimiterFor(path)})
}

// Read parses delimited text whose first row is the header. Empty lines are
// skipped and a leading UTF-8 byte order mark is ignored. Each data row maps
// header names to the (untrimmed) cell text; cells missing from short rows
// are absent from the record.
func Read(ctx context.Context, r io.Reader, opts Options) ([]model.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = opts.Comma
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, common.NewUserError("The file is empty or is not a recognized CSV export.", common.ErrNotTabular)
	}
	if err != nil {
		return nil, common.NewUserError("The file is not a recognized CSV export.", fmt.Errorf("%w: %w", common.ErrNotTabular, err))
	}
	if !hasNamedColumn(header) {
		return nil, common.NewUserError("The file has no header row.", common.ErrNotTabular)
	}

	var records []model.RawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			msg := "The file could not be parsed."
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				msg = fmt.Sprintf("The file could not be parsed near line %d.", parseErr.Line)
			}
			return nil, common.NewUserError(msg, fmt.Errorf("%w: %w", common.ErrNotTabular, err))
		}
		if isBlank(row) {
			continue
		}

		record := make(model.RawRecord, len(header))
		for i, value := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			record[header[i]] = value
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, common.NewUserError("The file parsed but contained no rows.", common.ErrNoRows)
	}
	return records, nil
}

func hasNamedColumn(header []string) bool {
	for _, h := range header {
		if strings.TrimSpace(h) != "" {
			return true
		}
	}
	return false
}

// isBlank reports whether every cell in row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
