package engine

import (
	"testing"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioRows() []model.RawRecord {
	return []model.RawRecord{
		{
			"ASIN":                    "A1",
			"Title":                   "Acme Widget",
			"Buy Box 🚚: Current":      "10.00",
			"Buy Box: Buy Box Seller": "Acme LLC",
			"New: Current":            "9.50",
		},
		{
			"ASIN":                    "B2",
			"Title":                   "Bare Listing",
			"Buy Box 🚚: Current":      "0",
			"Buy Box: Buy Box Seller": "-",
			"New: Current":            "5.00",
		},
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	result := Analyze(scenarioRows(), model.TargetAll, model.IdentitySet{"Acme"})

	require.Len(t, result.Listings, 2)
	assert.Equal(t, model.StatusWon, result.Listings[0].Status)
	assert.InDelta(t, -0.50, result.Listings[0].Delta, 1e-9)
	assert.Equal(t, "Hold Price", result.Listings[0].Action)
	assert.Equal(t, model.StatusSuppressed, result.Listings[1].Status)
	assert.InDelta(t, 5.00, result.Listings[1].Delta, 1e-9)
	assert.Equal(t, "Fix Listing / Add Price", result.Listings[1].Action)

	assert.Equal(t, 2, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Won)
	assert.Equal(t, 0, result.Summary.Lost)
	assert.Equal(t, 1, result.Summary.Suppressed)
	assert.InDelta(t, 50.0, result.Summary.WinRate, 1e-9)
	assert.Zero(t, result.Dropped)
}

func TestAnalyze_NormalizesTarget(t *testing.T) {
	assert.Equal(t, model.TargetAll, Analyze(nil, "", nil).Target)
	assert.Equal(t, model.TargetAll, Analyze(nil, "all", nil).Target)
	assert.Equal(t, "Acme", Analyze(nil, "Acme", nil).Target)
}

func TestAnalyze_CountsDropped(t *testing.T) {
	rows := append(scenarioRows(), model.RawRecord{"Title": "no asin"})
	result := Analyze(rows, model.TargetAll, nil)

	assert.Len(t, result.Listings, 2)
	assert.Equal(t, 1, result.Dropped)
}
