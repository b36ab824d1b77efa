// Package view filters, searches and sorts classified listings for display.
package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
)

// View errors.
var (
	ErrUnknownSortKey = errors.New("unknown sort key")
	ErrUnknownStatus  = errors.New("unknown status filter")
)

// SortKey names a listing field the view can sort by.
type SortKey string

// Sortable fields.
const (
	SortASIN        SortKey = "asin"
	SortTitle       SortKey = "title"
	SortStatus      SortKey = "status"
	SortOurPrice    SortKey = "ourPrice"
	SortBuyBoxPrice SortKey = "buyBoxPrice"
	SortDelta       SortKey = "delta"
	SortSeller      SortKey = "buyBoxSeller"
	SortAction      SortKey = "action"
)

// SortKeys lists every sortable field in column order.
var SortKeys = []SortKey{
	SortASIN,
	SortTitle,
	SortStatus,
	SortOurPrice,
	SortBuyBoxPrice,
	SortDelta,
	SortSeller,
	SortAction,
}

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort selects a single sort field and direction.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// StatusFilter restricts the view to one status, or to everything.
type StatusFilter string

// FilterAll disables status filtering.
const FilterAll StatusFilter = "ALL"

// State is the ephemeral view configuration.
type State struct {
	Sort         *Sort
	Search       string
	StatusFilter StatusFilter
}

// DefaultState returns an unfiltered, unsorted view.
func DefaultState() State {
	return State{StatusFilter: FilterAll}
}

// RequestSort returns the state after a click on key. Clicking the active
// ascending key flips it to descending; anything else sorts key ascending.
func (s State) RequestSort(key SortKey) State {
	direction := Ascending
	if s.Sort != nil && s.Sort.Key == key && s.Sort.Direction == Ascending {
		direction = Descending
	}
	s.Sort = &Sort{Key: key, Direction: direction}
	return s
}

// WithSearch returns the state with a new search text.
func (s State) WithSearch(search string) State {
	s.Search = search
	return s
}

// WithStatusFilter returns the state with a new status filter.
func (s State) WithStatusFilter(filter StatusFilter) State {
	s.StatusFilter = filter
	return s
}

// NextStatusFilter cycles ALL, WON, LOST, SUPPRESSED and back to ALL.
func (s State) NextStatusFilter() State {
	order := []StatusFilter{FilterAll}
	for _, status := range model.AllStatuses {
		order = append(order, StatusFilter(status))
	}

	for i, f := range order {
		if f == s.effectiveFilter() {
			s.StatusFilter = order[(i+1)%len(order)]
			return s
		}
	}

	s.StatusFilter = FilterAll
	return s
}

func (s State) effectiveFilter() StatusFilter {
	if s.StatusFilter == "" {
		return FilterAll
	}
	return s.StatusFilter
}

// ParseStatusFilter accepts "all" or a status name in any case.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(FilterAll)) {
		return FilterAll, nil
	}

	status := model.BuyBoxStatus(strings.ToUpper(s))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
	return StatusFilter(status), nil
}

// ParseSortKey accepts a sort key ignoring case, dashes, underscores and spaces,
// so "our-price", "our_price" and "ourPrice" are equivalent.
func ParseSortKey(s string) (SortKey, error) {
	want := canonicalKey(s)
	for _, key := range SortKeys {
		if canonicalKey(string(key)) == want {
			return key, nil
		}
	}

	// Column labels used by the export header
	switch want {
	case "bbprice":
		return SortBuyBoxPrice, nil
	case "seller", "currentwinner", "winner":
		return SortSeller, nil
	case "recommendedaction":
		return SortAction, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownSortKey, s)
}

func canonicalKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
