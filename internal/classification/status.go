package classification

import (
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/pattern"
)

// DetermineStatus decides the buy box outcome for one listing.
// A missing buy box price always means the listing is suppressed, whoever the
// seller label names. Otherwise the seller decides between won and lost.
func DetermineStatus(seller string, buyBoxPrice float64, matcher pattern.SellerMatcher) model.BuyBoxStatus {
	if buyBoxPrice == 0 {
		return model.StatusSuppressed
	}

	if matcher != nil && matcher.Match(seller) {
		return model.StatusWon
	}

	return model.StatusLost
}
