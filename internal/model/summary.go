package model

// Win rate thresholds used when describing a summary.
const (
	ExcellentWinRate   = 85.0
	HighlightedWinRate = 80.0
)

// Summary contains aggregate statistics for a classified listing set.
type Summary struct {
	Total      int     `json:"total" yaml:"total"`
	Won        int     `json:"won" yaml:"won"`
	Lost       int     `json:"lost" yaml:"lost"`
	Suppressed int     `json:"suppressed" yaml:"suppressed"`
	WinRate    float64 `json:"win_rate" yaml:"win_rate"`
	AverageGap float64 `json:"average_gap" yaml:"average_gap"`
}

// Count returns the number of listings with the given status.
func (s Summary) Count(status BuyBoxStatus) int {
	switch status {
	case StatusWon:
		return s.Won
	case StatusLost:
		return s.Lost
	case StatusSuppressed:
		return s.Suppressed
	}
	return 0
}

// Verdict describes the win rate the way the dashboard does.
func (s Summary) Verdict() string {
	if s.WinRate > ExcellentWinRate {
		return "Excellent performance"
	}
	return "Optimization needed"
}

// IsHighlighted reports whether the win rate deserves emphasis.
func (s Summary) IsHighlighted() bool {
	return s.WinRate > HighlightedWinRate
}
