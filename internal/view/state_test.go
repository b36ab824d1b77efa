package view

import (
	"testing"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RequestSort(t *testing.T) {
	s := DefaultState()
	assert.Nil(t, s.Sort)

	s = s.RequestSort(SortDelta)
	require.NotNil(t, s.Sort)
	assert.Equal(t, Sort{Key: SortDelta, Direction: Ascending}, *s.Sort)

	s = s.RequestSort(SortDelta)
	assert.Equal(t, Sort{Key: SortDelta, Direction: Descending}, *s.Sort)

	s = s.RequestSort(SortDelta)
	assert.Equal(t, Sort{Key: SortDelta, Direction: Ascending}, *s.Sort, "third click toggles back")

	s = s.RequestSort(SortDelta).RequestSort(SortTitle)
	assert.Equal(t, Sort{Key: SortTitle, Direction: Ascending}, *s.Sort, "new key resets to ascending")
}

func TestState_RequestSortDoesNotAlias(t *testing.T) {
	first := DefaultState().RequestSort(SortASIN)
	second := first.RequestSort(SortASIN)

	assert.Equal(t, Ascending, first.Sort.Direction)
	assert.Equal(t, Descending, second.Sort.Direction)
}

func TestState_NextStatusFilter(t *testing.T) {
	s := State{}
	var seen []StatusFilter
	for range 4 {
		s = s.NextStatusFilter()
		seen = append(seen, s.StatusFilter)
	}

	assert.Equal(t, []StatusFilter{
		StatusFilter(model.StatusWon),
		StatusFilter(model.StatusLost),
		StatusFilter(model.StatusSuppressed),
		FilterAll,
	}, seen)
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    StatusFilter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"ALL", FilterAll, false},
		{"won", StatusFilter(model.StatusWon), false},
		{"Lost", StatusFilter(model.StatusLost), false},
		{"SUPPRESSED", StatusFilter(model.StatusSuppressed), false},
		{"pending", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{"asin", SortASIN, false},
		{"ourPrice", SortOurPrice, false},
		{"our-price", SortOurPrice, false},
		{"OUR_PRICE", SortOurPrice, false},
		{"Buy Box Price", SortBuyBoxPrice, false},
		{"bb-price", SortBuyBoxPrice, false},
		{"current winner", SortSeller, false},
		{"Recommended Action", SortAction, false},
		{"delta", SortDelta, false},
		{"image", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSortKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
