package classification

import "github.com/Veraticus/buybox-master/internal/model"

// Recommended actions.
const (
	ActionFixListing       = "Fix Listing / Add Price"
	ActionRaisePrice       = "Consider a slight price increase"
	ActionHoldPrice        = "Hold Price"
	ActionCheckStock       = "Check Stock / Set Price"
	ActionAggressive       = "Aggressively reprice to capture Buy Box"
	ActionLowerPrice       = "Lower Price to Match"
	ActionCheckEligibility = "Check Eligibility / Metrics"
)

// Gap thresholds.
const (
	// UndercutThreshold is how far below the buy box a winning price must be
	// before a price increase is suggested.
	UndercutThreshold = -1.00
	// AggressiveGap is the absolute gap above which a lost listing needs an aggressive reprice.
	AggressiveGap = 3.00
	// AggressiveRatio is the relative gap above which a lost listing needs an aggressive reprice.
	AggressiveRatio = 0.15
)

// RecommendAction picks the follow-up for a classified listing.
func RecommendAction(status model.BuyBoxStatus, ourPrice, buyBoxPrice, delta float64) string {
	switch status {
	case model.StatusSuppressed:
		return ActionFixListing

	case model.StatusWon:
		// Winning while well under the recorded buy box leaves margin on the table
		if delta <= UndercutThreshold {
			return ActionRaisePrice
		}
		return ActionHoldPrice
	}

	if ourPrice == 0 {
		return ActionCheckStock
	}

	if delta > 0 {
		if delta > AggressiveGap || (buyBoxPrice > 0 && delta/buyBoxPrice > AggressiveRatio) {
			return ActionAggressive
		}
		return ActionLowerPrice
	}

	// At or under the buy box and still lost, so price is not the cause
	return ActionCheckEligibility
}
