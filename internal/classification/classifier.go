package classification

import (
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/pattern"
)

// Classifier classifies export rows for a fixed target and identity set.
type Classifier struct {
	matcher pattern.SellerMatcher
	target  string
}

// NewClassifier creates a classifier. The identity set is copied, so later
// changes by the caller do not affect classification.
func NewClassifier(target string, identities model.IdentitySet) *Classifier {
	return &Classifier{
		target:  target,
		matcher: pattern.NewMatcher(target, identities.Clone()),
	}
}

// NewClassifierWithMatcher creates a classifier around a custom seller matcher.
func NewClassifierWithMatcher(matcher pattern.SellerMatcher) *Classifier {
	return &Classifier{matcher: matcher}
}

// Target returns the identity target the classifier was built for.
func (c *Classifier) Target() string {
	return c.target
}

// Classify turns a raw row into a listing. rowIndex is the row's position in
// its source and feeds the listing ID. It returns false when the row has no ASIN.
func (c *Classifier) Classify(row model.RawRecord, rowIndex int) (model.Listing, bool) {
	n, ok := NormalizeRow(row)
	if !ok {
		return model.Listing{}, false
	}

	status := DetermineStatus(n.BuyBoxSeller, n.BuyBoxPrice, c.matcher)
	delta := n.OurPrice - n.BuyBoxPrice

	return model.Listing{
		ID:           model.GenerateListingID(n.ASIN, rowIndex),
		ASIN:         n.ASIN,
		Title:        n.Title,
		ImageURL:     n.ImageURL,
		BuyBoxSeller: n.BuyBoxSeller,
		BuyBoxPrice:  n.BuyBoxPrice,
		OurPrice:     n.OurPrice,
		Status:       status,
		Delta:        delta,
		Action:       RecommendAction(status, n.OurPrice, n.BuyBoxPrice, delta),
	}, true
}

// ClassifyAll classifies every row in order and reports how many were dropped.
// Rows sharing an ASIN are kept side by side.
func (c *Classifier) ClassifyAll(rows []model.RawRecord) ([]model.Listing, int) {
	listings := make([]model.Listing, 0, len(rows))
	dropped := 0

	for i, row := range rows {
		listing, ok := c.Classify(row, i)
		if !ok {
			dropped++
			continue
		}
		listings = append(listings, listing)
	}

	return listings, dropped
}

// Classify classifies a single row for target and identities.
func Classify(row model.RawRecord, rowIndex int, target string, identities model.IdentitySet) (model.Listing, bool) {
	return NewClassifier(target, identities).Classify(row, rowIndex)
}
