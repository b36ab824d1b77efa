package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "ASIN,Title,Buy Box: Buy Box Seller,Buy Box 🚚: Current,New: Current\n" +
		"B001,\"Widget, \"\"Pro\"\"\",SecuLife,$12.00,$12.50\n" +
		"\n" +
		"B002,Gadget,ThirdPartyCo,9.99,11\n"

	records, err := Read(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "B001", records[0]["ASIN"])
	assert.Equal(t, `Widget, "Pro"`, records[0]["Title"])
	assert.Equal(t, "$12.00", records[0]["Buy Box 🚚: Current"])
	assert.Equal(t, "ThirdPartyCo", records[1]["Buy Box: Buy Box Seller"])
}

func TestRead_ByteOrderMark(t *testing.T) {
	input := "\xEF\xBB\xBFASIN,Title\nB001,Widget\n"

	records, err := Read(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B001", records[0]["ASIN"])
}

func TestRead_RaggedRows(t *testing.T) {
	input := "ASIN,Title,Image\nB001\nB002,Gadget,a.jpg;b.jpg,extra\n"

	records, err := Read(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	_, ok := records[0]["Title"]
	assert.False(t, ok)
	assert.Equal(t, "a.jpg;b.jpg", records[1]["Image"])
	assert.Len(t, records[1], 3)
}

func TestRead_Tabs(t *testing.T) {
	input := "ASIN\tTitle\nB001\tTabbed, title\n"

	records, err := Read(context.Background(), strings.NewReader(input), Options{Comma: '\t'})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Tabbed, title", records[0]["Title"])
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		want  error
		name  string
		input string
	}{
		{name: "empty input", input: "", want: common.ErrNotTabular},
		{name: "blank header", input: ",,\nB001,x,y\n", want: common.ErrNotTabular},
		{name: "header only", input: "ASIN,Title\n", want: common.ErrNoRows},
		{name: "only blank rows", input: "ASIN,Title\n,\n\n", want: common.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(context.Background(), strings.NewReader(tt.input), Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var userErr *common.UserError
			assert.ErrorAs(t, err, &userErr)
		})
	}
}

func TestRead_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Read(ctx, strings.NewReader("ASIN\nB001\n"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelimiterFor(t *testing.T) {
	assert.Equal(t, ',', DelimiterFor("export.csv"))
	assert.Equal(t, '\t', DelimiterFor("export.TSV"))
	assert.Equal(t, ',', DelimiterFor("export"))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keepa.tsv")
	require.NoError(t, os.WriteFile(path, []byte("ASIN\tNew\nB001\t$5.00\n"), 0o600))

	records, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "$5.00", records[0]["New"])

	_, err = ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
