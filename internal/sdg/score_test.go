package sdg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

func TestGetSDGAlignmentScoreClamping(t *testing.T) {
	store := &fakeStore{
		orgs:  map[string]domain.Organization{"org-1": {ID: "org-1", Name: "Org"}},
		sites: map[string][]domain.Site{"org-1": {site("s1", "org-1", 100, true)}},
	}
	// Absurdly productive site: every ratio-based score must still cap.
	source := &fakeSource{generation: map[string]float64{"s1": 1e12}}
	svc := NewWithClock(store, source, testClock())

	score, err := svc.GetSDGAlignmentScore(context.Background(), "org-1")
	require.NoError(t, err)

	require.Len(t, score.GoalScores, 6)
	for _, gs := range score.GoalScores {
		assert.LessOrEqual(t, gs.Score, 100.0, "goal %d", gs.Goal)
		assert.GreaterOrEqual(t, gs.Score, 0.0, "goal %d", gs.Goal)
	}
	assert.LessOrEqual(t, score.OverallScore, 100)
}

func TestGetSDGAlignmentScoreBands(t *testing.T) {
	store := &fakeStore{
		orgs:  map[string]domain.Organization{"org-1": {ID: "org-1", Name: "Org"}},
		sites: map[string][]domain.Site{"org-1": {site("s1", "org-1", 100, true)}},
	}
	source := &fakeSource{generation: map[string]float64{"s1": 1e12}}
	svc := NewWithClock(store, source, testClock())

	score, err := svc.GetSDGAlignmentScore(context.Background(), "org-1")
	require.NoError(t, err)

	// Generation-driven goals saturate at 100; jobs sit at exactly half
	// their target and capacity scores 2 on the infrastructure scale.
	assert.Contains(t, score.Strengths, 7)
	assert.Contains(t, score.Strengths, 11)
	assert.Contains(t, score.Strengths, 12)
	assert.Contains(t, score.Strengths, 13)
	assert.Contains(t, score.Improvements, 8)
	assert.Contains(t, score.Improvements, 9)

	for _, gs := range score.GoalScores {
		if gs.Score >= 60 && gs.Score < 80 {
			assert.NotContains(t, score.Strengths, gs.Goal)
			assert.NotContains(t, score.Improvements, gs.Goal)
		}
	}
}

func TestGetSDGAlignmentScoreZeroCapacity(t *testing.T) {
	store := &fakeStore{
		orgs:  map[string]domain.Organization{"org-1": {ID: "org-1", Name: "Org"}},
		sites: map[string][]domain.Site{"org-1": nil},
	}
	svc := NewWithClock(store, &fakeSource{}, testClock())

	score, err := svc.GetSDGAlignmentScore(context.Background(), "org-1")
	require.NoError(t, err)

	for _, gs := range score.GoalScores {
		assert.Zero(t, gs.Score, "goal %d", gs.Goal)
	}
	assert.Zero(t, score.OverallScore)
	assert.Empty(t, score.Strengths)
	assert.Len(t, score.Improvements, 6)
}

func TestGetSDGAlignmentScoreNotFound(t *testing.T) {
	svc := NewWithClock(&fakeStore{orgs: map[string]domain.Organization{}}, &fakeSource{}, testClock())
	_, err := svc.GetSDGAlignmentScore(context.Background(), "missing")
	assert.ErrorIs(t, err, errNotFound)
}
