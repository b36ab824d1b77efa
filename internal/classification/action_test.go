package classification

import (
	"testing"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRecommendAction(t *testing.T) {
	tests := []struct {
		name        string
		status      model.BuyBoxStatus
		want        string
		ourPrice    float64
		buyBoxPrice float64
	}{
		{"suppressed", model.StatusSuppressed, ActionFixListing, 5.00, 0},
		{"suppressed ignores prices", model.StatusSuppressed, ActionFixListing, 0, 0},
		{"won at buy box", model.StatusWon, ActionHoldPrice, 10.00, 10.00},
		{"won slightly under", model.StatusWon, ActionHoldPrice, 9.50, 10.00},
		{"won exactly a dollar under", model.StatusWon, ActionRaisePrice, 9.00, 10.00},
		{"won well under", model.StatusWon, ActionRaisePrice, 7.00, 10.00},
		{"won above buy box", model.StatusWon, ActionHoldPrice, 11.00, 10.00},
		{"lost without our price", model.StatusLost, ActionCheckStock, 0, 10.00},
		{"lost by large absolute gap", model.StatusLost, ActionAggressive, 54.00, 50.00},
		{"lost by large relative gap", model.StatusLost, ActionAggressive, 15.00, 12.00},
		{"lost by exactly three dollars on big price", model.StatusLost, ActionLowerPrice, 103.00, 100.00},
		{"lost by small gap", model.StatusLost, ActionLowerPrice, 10.50, 10.00},
		{"lost at equal price", model.StatusLost, ActionCheckEligibility, 10.00, 10.00},
		{"lost while cheaper", model.StatusLost, ActionCheckEligibility, 9.00, 10.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := tt.ourPrice - tt.buyBoxPrice
			assert.Equal(t, tt.want, RecommendAction(tt.status, tt.ourPrice, tt.buyBoxPrice, delta))
		})
	}
}
