// Package classification turns raw marketplace export rows into classified listings.
package classification

// Column aliases in priority order. The first alias present with a non-empty
// value wins. Keys are matched literally and case-sensitively.
var (
	ASINColumns   = []string{"ASIN", "asin"}
	TitleColumns  = []string{"Title", "title"}
	ImageColumns  = []string{"Image", "image"}
	SellerColumns = []string{
		"Buy Box: Buy Box Seller",
		"Buy Box Seller",
		"buyBoxSellerName",
		"Buy Box SellerId",
	}
	BuyBoxPriceColumns = []string{
		"Buy Box 🚚: Current",
		"Buy Box Price",
		"buyBoxPrice",
	}
	OurPriceColumns = []string{
		"New: Current",
		"New",
		"Amazon",
	}
)

// Placeholders used when a field is absent.
const (
	UnknownTitle      = "Unknown Product"
	SellerPlaceholder = "-"
	imageSeparator    = ";"
)
