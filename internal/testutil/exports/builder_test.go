package exports

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Records(t *testing.T) {
	records := Mixed().Records()
	require.Len(t, records, 4)

	assert.Equal(t, "A1", records[0]["ASIN"])
	assert.Equal(t, DefaultSeller, records[0]["Buy Box Seller"])
	assert.Equal(t, "12.00", records[1]["Buy Box Price"])
	assert.Equal(t, "12.50", records[1]["New"])
	assert.Equal(t, "", records[2]["Buy Box Price"])
	assert.Equal(t, "", records[3]["ASIN"])
}

func TestBuilder_WriteFile(t *testing.T) {
	path := NewBuilder().Won("A1", "Widget", 10).WriteFile(t, t.TempDir())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ASIN,Title,Buy Box Seller,Buy Box Price,New\nA1,Widget,SecuLife,10.00,10.00\n", string(content))
}

func TestWinning(t *testing.T) {
	b := Winning(3)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "W0002", b.Records()[2]["ASIN"])
}
