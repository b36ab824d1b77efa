package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateListingID(t *testing.T) {
	id := GenerateListingID("B000123", 4)

	assert.Equal(t, id, GenerateListingID("B000123", 4), "same input must produce same id")
	assert.NotEqual(t, id, GenerateListingID("B000123", 5), "duplicate ASINs on different rows must differ")
	assert.True(t, strings.HasPrefix(id, "B000123-"))
}

func TestRawRecord_Lookup(t *testing.T) {
	row := RawRecord{
		"ASIN":  "B1",
		"New":   12.5,
		"Title": "",
		"Image": nil,
	}

	v, ok := row.Lookup("ASIN")
	assert.True(t, ok)
	assert.Equal(t, "B1", v)

	v, ok = row.Lookup("New")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = row.Lookup("Title")
	assert.False(t, ok, "empty strings count as absent")

	_, ok = row.Lookup("Image")
	assert.False(t, ok, "nil counts as absent")

	_, ok = row.Lookup("Missing")
	assert.False(t, ok)
}

func TestSummary_Verdict(t *testing.T) {
	assert.Equal(t, "Excellent performance", Summary{WinRate: 90}.Verdict())
	assert.Equal(t, "Optimization needed", Summary{WinRate: 85}.Verdict())
	assert.True(t, Summary{WinRate: 81}.IsHighlighted())
	assert.False(t, Summary{WinRate: 80}.IsHighlighted())
}
