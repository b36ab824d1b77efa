package classification

import (
	"strconv"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
)

// NormalizedRow holds the canonical fields extracted from a raw export row.
type NormalizedRow struct {
	ASIN         string
	Title        string
	ImageURL     string
	BuyBoxSeller string
	BuyBoxPrice  float64
	OurPrice     float64
}

// NormalizeRow extracts canonical fields from row. It returns false when no
// non-empty ASIN can be resolved, meaning the row should be dropped.
func NormalizeRow(row model.RawRecord) (NormalizedRow, bool) {
	asin := strings.TrimSpace(textField(row, ASINColumns, ""))
	if asin == "" {
		return NormalizedRow{}, false
	}

	n := NormalizedRow{
		ASIN:         asin,
		Title:        textField(row, TitleColumns, UnknownTitle),
		ImageURL:     firstImage(textField(row, ImageColumns, "")),
		BuyBoxSeller: textField(row, SellerColumns, SellerPlaceholder),
	}

	if v, ok := firstPresent(row, BuyBoxPriceColumns); ok {
		n.BuyBoxPrice = ParsePrice(v)
	}
	if v, ok := firstPresent(row, OurPriceColumns); ok {
		n.OurPrice = ParsePrice(v)
	}

	return n, true
}

// firstPresent returns the value of the first alias holding a usable value.
// Empty strings and numeric zero fall through to the next alias.
func firstPresent(row model.RawRecord, keys []string) (any, bool) {
	for _, key := range keys {
		v, ok := row.Lookup(key)
		if !ok || isZeroNumber(v) {
			continue
		}
		return v, true
	}
	return nil, false
}

func textField(row model.RawRecord, keys []string, fallback string) string {
	v, ok := firstPresent(row, keys)
	if !ok {
		return fallback
	}
	return toText(v)
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []byte:
		return string(t)
	}
	return ""
}

func isZeroNumber(v any) bool {
	switch t := v.(type) {
	case float64:
		return t == 0
	case float32:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	case int32:
		return t == 0
	}
	return false
}

func firstImage(raw string) string {
	if raw == "" {
		return ""
	}
	first, _, _ := strings.Cut(raw, imageSeparator)
	return strings.TrimSpace(first)
}
