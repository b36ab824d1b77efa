package model

import "strings"

// TargetAll selects every configured identity when matching sellers.
const TargetAll = "ALL"

// DefaultIdentities seeds the identity list on first run.
var DefaultIdentities = IdentitySet{
	"SecuLife",
	"SpeedTalk Mobile",
	"SpeedTalk Mobile Store",
}

// IdentitySet is an ordered list of seller name fragments that count as "us".
type IdentitySet []string

// IsAllTarget reports whether target selects the whole identity set.
func IsAllTarget(target string) bool {
	target = strings.TrimSpace(target)
	return target == "" || strings.EqualFold(target, TargetAll)
}

// Add returns a copy of the set with name appended. Blank names and exact
// duplicates are ignored.
func (s IdentitySet) Add(name string) (IdentitySet, bool) {
	name = strings.TrimSpace(name)
	if name == "" || s.Contains(name) {
		return s.Clone(), false
	}
	out := s.Clone()
	return append(out, name), true
}

// Remove returns a copy of the set without name.
func (s IdentitySet) Remove(name string) (IdentitySet, bool) {
	out := make(IdentitySet, 0, len(s))
	removed := false
	for _, existing := range s {
		if existing == name {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}

// Contains reports whether name is present exactly.
func (s IdentitySet) Contains(name string) bool {
	for _, existing := range s {
		if existing == name {
			return true
		}
	}
	return false
}

// ContainsFold reports whether name is present ignoring case.
func (s IdentitySet) ContainsFold(name string) bool {
	for _, existing := range s {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (s IdentitySet) Clone() IdentitySet {
	out := make(IdentitySet, len(s))
	copy(out, s)
	return out
}
