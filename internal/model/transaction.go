package model

import (
	"crypto/sha256"
	"fmt"
)

// RawRecord is a single row from a marketplace export keyed by column header.
// Values are either strings or numbers; missing columns are simply absent.
type RawRecord map[string]any

// Lookup returns the value stored under key and whether it is present and non-empty.
func (r RawRecord) Lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && s == "" {
		return nil, false
	}
	return v, true
}

// GenerateListingID creates a deterministic row key from the ASIN and the row's
// position in its source file. Duplicate ASINs within one file get distinct IDs.
func GenerateListingID(asin string, rowIndex int) string {
	data := fmt.Sprintf("%s:%d", asin, rowIndex)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%s-%x", asin, hash[:6])
}
