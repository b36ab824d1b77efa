package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
)

// Apply filters listings by status, then by search text, then sorts them.
// The input is never modified and equal sort keys keep their input order.
func Apply(listings []model.Listing, state State) []model.Listing {
	out := make([]model.Listing, 0, len(listings))

	filter := state.effectiveFilter()
	search := strings.ToLower(state.Search)

	for _, l := range listings {
		if filter != FilterAll && StatusFilter(l.Status) != filter {
			continue
		}
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		out = append(out, l)
	}

	if state.Sort != nil {
		compare := comparator(state.Sort.Key)
		if state.Sort.Direction == Descending {
			asc := compare
			compare = func(a, b model.Listing) int { return asc(b, a) }
		}
		slices.SortStableFunc(out, compare)
	}

	return out
}

// matchesSearch reports whether the ASIN or title contains the lowercased search text.
func matchesSearch(l model.Listing, search string) bool {
	return strings.Contains(strings.ToLower(l.ASIN), search) ||
		strings.Contains(strings.ToLower(l.Title), search)
}

func comparator(key SortKey) func(a, b model.Listing) int {
	switch key {
	case SortASIN:
		return func(a, b model.Listing) int { return cmp.Compare(a.ASIN, b.ASIN) }
	case SortTitle:
		return func(a, b model.Listing) int { return cmp.Compare(a.Title, b.Title) }
	case SortStatus:
		return func(a, b model.Listing) int { return cmp.Compare(a.Status, b.Status) }
	case SortOurPrice:
		return func(a, b model.Listing) int { return cmp.Compare(a.OurPrice, b.OurPrice) }
	case SortBuyBoxPrice:
		return func(a, b model.Listing) int { return cmp.Compare(a.BuyBoxPrice, b.BuyBoxPrice) }
	case SortDelta:
		return func(a, b model.Listing) int { return cmp.Compare(a.Delta, b.Delta) }
	case SortSeller:
		return func(a, b model.Listing) int { return cmp.Compare(a.BuyBoxSeller, b.BuyBoxSeller) }
	case SortAction:
		return func(a, b model.Listing) int { return cmp.Compare(a.Action, b.Action) }
	}
	// Unknown keys leave the filtered order untouched
	return func(model.Listing, model.Listing) int { return 0 }
}
