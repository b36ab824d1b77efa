// Package engine classifies marketplace export rows and aggregates the results.
//
// Every operation is a pure function over its inputs. A change to the rows,
// the target or the identity set replaces the whole classified set.
package engine

import (
	"github.com/Veraticus/buybox-master/internal/classification"
	"github.com/Veraticus/buybox-master/internal/model"
)

// Result is the outcome of one classification pass.
type Result struct {
	Target   string
	Listings []model.Listing
	Summary  model.Summary
	Dropped  int
}

// Analyze classifies every row for target and identities and aggregates the listings.
func Analyze(rows []model.RawRecord, target string, identities model.IdentitySet) Result {
	if model.IsAllTarget(target) {
		target = model.TargetAll
	}

	listings, dropped := classification.NewClassifier(target, identities).ClassifyAll(rows)

	return Result{
		Target:   target,
		Listings: listings,
		Summary:  Aggregate(listings),
		Dropped:  dropped,
	}
}
