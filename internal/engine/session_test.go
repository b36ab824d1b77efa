package engine

import (
	"testing"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RecomputesOnTargetChange(t *testing.T) {
	s := NewSession(scenarioRows(), model.TargetAll, model.IdentitySet{"Acme", "Jolt"})
	require.Equal(t, 1, s.Summary().Won)
	idsBefore := []string{s.Listings()[0].ID, s.Listings()[1].ID}

	s.SetTarget("Jolt")
	assert.Equal(t, "Jolt", s.Target())
	assert.Equal(t, 0, s.Summary().Won)
	assert.Equal(t, 1, s.Summary().Lost)
	assert.Equal(t, idsBefore, []string{s.Listings()[0].ID, s.Listings()[1].ID}, "row ids survive reclassification")
}

func TestSession_ViewChangesKeepClassification(t *testing.T) {
	s := NewSession(scenarioRows(), model.TargetAll, model.IdentitySet{"Acme"})

	s.SetStatusFilter(view.StatusFilter(model.StatusSuppressed))
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "B2", s.Visible()[0].ASIN)
	assert.Equal(t, 2, s.Summary().Total, "summary always covers the full set")

	s.SetStatusFilter(view.FilterAll)
	s.SetSearch("widget")
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "A1", s.Visible()[0].ASIN)

	s.SetSearch("")
	s.RequestSort(view.SortOurPrice)
	assert.Equal(t, "B2", s.Visible()[0].ASIN)
	s.RequestSort(view.SortOurPrice)
	assert.Equal(t, "A1", s.Visible()[0].ASIN)
}

func TestSession_ViewStateSurvivesReclassification(t *testing.T) {
	s := NewSession(scenarioRows(), model.TargetAll, model.IdentitySet{"Acme"})
	s.SetStatusFilter(view.StatusFilter(model.StatusWon))
	require.Len(t, s.Visible(), 1)

	s.SetTarget("Nobody")
	assert.Empty(t, s.Visible(), "filter applies to the new classification")
	assert.Equal(t, view.StatusFilter(model.StatusWon), s.State().StatusFilter)
}

func TestSession_CycleTarget(t *testing.T) {
	s := NewSession(nil, "", model.IdentitySet{"Acme", "Jolt"})
	assert.Equal(t, []string{model.TargetAll, "Acme", "Jolt"}, s.Targets())

	var seen []string
	for range 3 {
		s.CycleTarget()
		seen = append(seen, s.Target())
	}
	assert.Equal(t, []string{"Acme", "Jolt", model.TargetAll}, seen)
}

func TestSession_SetIdentities(t *testing.T) {
	s := NewSession(scenarioRows(), "Acme", model.IdentitySet{"Acme"})
	require.Equal(t, 1, s.Summary().Won)

	s.SetIdentities(model.IdentitySet{"Other"})
	assert.Equal(t, model.TargetAll, s.Target(), "removed target falls back to all")
	assert.Equal(t, 0, s.Summary().Won)

	s.SetIdentities(model.IdentitySet{"acme"})
	assert.Equal(t, 1, s.Summary().Won)
}

func TestSession_SetIdentitiesKeepsTargetIgnoringCase(t *testing.T) {
	s := NewSession(scenarioRows(), "acme", model.IdentitySet{"Acme"})
	require.Equal(t, 1, s.Summary().Won)

	s.SetIdentities(model.IdentitySet{"Acme", "Jolt"})
	assert.Equal(t, "acme", s.Target())
	assert.Equal(t, 1, s.Summary().Won)
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(scenarioRows(), "Acme", model.IdentitySet{"Acme"})
	s.SetSearch("widget")

	s.Reset()
	assert.Zero(t, s.RowCount())
	assert.Empty(t, s.Listings())
	assert.Equal(t, model.TargetAll, s.Target())
	assert.Equal(t, view.DefaultState(), s.State())
	assert.Equal(t, model.IdentitySet{"Acme"}, s.Identities())
}
