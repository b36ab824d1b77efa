package engine

import "github.com/Veraticus/buybox-master/internal/model"

// Aggregate reduces listings into summary statistics. It is recomputed from
// scratch on every call. AverageGap only considers lost listings priced above
// the buy box, since losses at or under it have a non-price cause.
func Aggregate(listings []model.Listing) model.Summary {
	summary := model.Summary{Total: len(listings)}

	gapSum := 0.0
	gapCount := 0

	for _, l := range listings {
		switch l.Status {
		case model.StatusWon:
			summary.Won++
		case model.StatusLost:
			summary.Lost++
			if l.Delta > 0 {
				gapSum += l.Delta
				gapCount++
			}
		case model.StatusSuppressed:
			summary.Suppressed++
		}
	}

	if summary.Total > 0 {
		summary.WinRate = float64(summary.Won) / float64(summary.Total) * 100
	}
	if gapCount > 0 {
		summary.AverageGap = gapSum / float64(gapCount)
	}

	return summary
}
