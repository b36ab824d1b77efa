package engine

import (
	"log/slog"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/view"
)

// Session holds the inputs of a live analysis and the values derived from them.
// Changing rows, target or identities reclassifies everything; changing the
// view state only recomputes the visible listings. A Session is not safe for
// concurrent use.
type Session struct {
	identities model.IdentitySet
	rows       []model.RawRecord
	result     Result
	visible    []model.Listing
	state      view.State
	target     string
}

// NewSession creates a session over rows.
func NewSession(rows []model.RawRecord, target string, identities model.IdentitySet) *Session {
	s := &Session{
		rows:       rows,
		target:     target,
		identities: identities.Clone(),
		state:      view.DefaultState(),
	}
	s.reclassify()
	return s
}

// SetRows replaces the input rows.
func (s *Session) SetRows(rows []model.RawRecord) {
	s.rows = rows
	s.reclassify()
}

// SetTarget changes the identity target.
func (s *Session) SetTarget(target string) {
	s.target = target
	s.reclassify()
}

// SetIdentities replaces the identity set.
func (s *Session) SetIdentities(identities model.IdentitySet) {
	s.identities = identities.Clone()
	if !model.IsAllTarget(s.target) && !s.identities.ContainsFold(s.target) {
		// The selected identity no longer exists
		s.target = model.TargetAll
	}
	s.reclassify()
}

// SetState replaces the whole view state.
func (s *Session) SetState(state view.State) {
	s.state = state
	s.refreshView()
}

// SetSearch changes the search text.
func (s *Session) SetSearch(search string) {
	s.SetState(s.state.WithSearch(search))
}

// SetStatusFilter changes the status filter.
func (s *Session) SetStatusFilter(filter view.StatusFilter) {
	s.SetState(s.state.WithStatusFilter(filter))
}

// CycleStatusFilter advances the status filter.
func (s *Session) CycleStatusFilter() {
	s.SetState(s.state.NextStatusFilter())
}

// RequestSort toggles sorting on key.
func (s *Session) RequestSort(key view.SortKey) {
	s.SetState(s.state.RequestSort(key))
}

// CycleTarget moves to the next target: ALL, then each identity in order.
func (s *Session) CycleTarget() {
	targets := s.Targets()
	current := s.Target()
	next := targets[0]
	for i, t := range targets {
		if t == current {
			next = targets[(i+1)%len(targets)]
			break
		}
	}
	s.SetTarget(next)
}

// Reset clears the rows, target and view state. Identities are kept.
func (s *Session) Reset() {
	s.rows = nil
	s.target = model.TargetAll
	s.state = view.DefaultState()
	s.reclassify()
}

// Targets lists selectable targets, ALL first.
func (s *Session) Targets() []string {
	targets := make([]string, 0, len(s.identities)+1)
	targets = append(targets, model.TargetAll)
	return append(targets, s.identities...)
}

// Target returns the normalized active target.
func (s *Session) Target() string {
	return s.result.Target
}

// Identities returns a copy of the identity set.
func (s *Session) Identities() model.IdentitySet {
	return s.identities.Clone()
}

// RowCount returns how many raw rows the session holds.
func (s *Session) RowCount() int {
	return len(s.rows)
}

// Result returns the current classification pass.
func (s *Session) Result() Result {
	return s.result
}

// Listings returns every classified listing in input order.
func (s *Session) Listings() []model.Listing {
	return s.result.Listings
}

// Summary returns statistics over every classified listing.
func (s *Session) Summary() model.Summary {
	return s.result.Summary
}

// Visible returns the filtered and sorted listings.
func (s *Session) Visible() []model.Listing {
	return s.visible
}

// State returns the current view state.
func (s *Session) State() view.State {
	return s.state
}

func (s *Session) reclassify() {
	s.result = Analyze(s.rows, s.target, s.identities)
	if s.result.Dropped > 0 {
		slog.Debug("Dropped rows without ASIN", "dropped", s.result.Dropped, "rows", len(s.rows))
	}
	s.refreshView()
}

func (s *Session) refreshView() {
	s.visible = view.Apply(s.result.Listings, s.state)
}
