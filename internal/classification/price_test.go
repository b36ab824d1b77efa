package classification

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"currency string", "$5.00", 5.0},
		{"plain string", "5.00", 5.0},
		{"integer", 5, 5.0},
		{"float", 12.49, 12.49},
		{"placeholder", "-", 0},
		{"absent", nil, 0},
		{"empty string", "", 0},
		{"thousands separator", "$1,234.56", 1234.56},
		{"trailing text", "19.99 USD", 19.99},
		{"euro symbol", "€ 7,50", 750},
		{"garbage", "n/a", 0},
		{"lone dot", ".", 0},
		{"second dot stops parsing", "1.2.3", 1.2},
		{"leading dot", ".99", 0.99},
		{"minus sign is stripped from strings", "-4.00", 4.0},
		{"numbers are not clamped", -4.0, -4.0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"unsupported type", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePrice(tt.input), 1e-9)
		})
	}
}
