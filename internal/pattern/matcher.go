package pattern

import (
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
)

// MatcherImpl implements SellerMatcher for a target identity or the whole identity set.
type MatcherImpl struct {
	fragments []string
}

// NewMatcher creates a matcher for target. When target selects all identities
// every entry of identities is checked in order; otherwise only target is.
func NewMatcher(target string, identities model.IdentitySet) *MatcherImpl {
	m := &MatcherImpl{}

	if !model.IsAllTarget(target) {
		m.fragments = []string{strings.ToLower(target)}
		return m
	}

	// Pre-lowercase fragments so Match only lowercases the seller
	m.fragments = make([]string, 0, len(identities))
	for _, name := range identities {
		// A blank entry would match every seller
		if strings.TrimSpace(name) == "" {
			continue
		}
		m.fragments = append(m.fragments, strings.ToLower(name))
	}

	return m
}

// Match reports whether seller contains any configured fragment.
func (m *MatcherImpl) Match(seller string) bool {
	sellerLower := strings.ToLower(seller)

	for _, fragment := range m.fragments {
		if strings.Contains(sellerLower, fragment) {
			return true
		}
	}

	return false
}

// Fragments returns the lowercased fragments the matcher checks, in order.
func (m *MatcherImpl) Fragments() []string {
	out := make([]string, len(m.fragments))
	copy(out, m.fragments)
	return out
}
