// Package pattern decides whether a free-text seller label belongs to one of our identities.
//
// Matching is case-insensitive substring containment, not exact identity. An
// identity "Jolt" also matches a seller called "Jolted Goods Inc".
package pattern

// SellerMatcher evaluates seller labels against configured identities.
type SellerMatcher interface {
	// Match reports whether the seller label should be treated as ours.
	Match(seller string) bool
}
