// Package model defines the core domain models used throughout the application.
package model

// BuyBoxStatus indicates the competitive outcome for a single listing.
type BuyBoxStatus string

// Buy box status constants.
const (
	StatusWon        BuyBoxStatus = "WON"
	StatusLost       BuyBoxStatus = "LOST"
	StatusSuppressed BuyBoxStatus = "SUPPRESSED"
)

// AllStatuses lists every status in display order.
var AllStatuses = []BuyBoxStatus{StatusWon, StatusLost, StatusSuppressed}

// IsValid reports whether s is one of the known statuses.
func (s BuyBoxStatus) IsValid() bool {
	switch s {
	case StatusWon, StatusLost, StatusSuppressed:
		return true
	}
	return false
}

// Label returns a human friendly name for the status.
func (s BuyBoxStatus) Label() string {
	switch s {
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	case StatusSuppressed:
		return "Suppressed"
	}
	return string(s)
}

// Listing represents a catalog item after classification.
type Listing struct {
	ID           string
	ASIN         string
	Title        string
	ImageURL     string // Empty when the export carried no image
	BuyBoxSeller string // Raw seller label, "-" when absent
	Action       string
	Status       BuyBoxStatus
	OurPrice     float64
	BuyBoxPrice  float64
	Delta        float64 // OurPrice - BuyBoxPrice; positive means we are more expensive
}

// HasImage reports whether the listing carries an image URL.
func (l Listing) HasImage() bool {
	return l.ImageURL != ""
}
