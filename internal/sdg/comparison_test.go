package sdg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

func comparisonFixture() (*fakeStore, *fakeSource) {
	store := &fakeStore{
		orgs: map[string]domain.Organization{
			"A": {ID: "A", Name: "Org A"},
			"B": {ID: "B", Name: "Org B"},
			"C": {ID: "C", Name: "Org C"},
		},
		sites: map[string][]domain.Site{
			"A": {site("a1", "A", 10, true)},
			"B": {site("b1", "B", 20, true)},
			"C": {site("c1", "C", 30, true)},
		},
	}
	source := &fakeSource{
		generation: map[string]float64{"a1": 1000, "b1": 2000, "c1": 3000},
		// A finishes last, C first; output order must not care.
		delays: map[string]time.Duration{
			"a1": 60 * time.Millisecond,
			"b1": 20 * time.Millisecond,
		},
	}
	return store, source
}

func TestGetSDGComparisonPreservesInputOrder(t *testing.T) {
	store, source := comparisonFixture()
	svc := NewWithClock(store, source, testClock())

	comparison, err := svc.GetSDGComparison(context.Background(), []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, comparison.Organizations, 3)

	assert.Equal(t, "A", comparison.Organizations[0].OrganizationID)
	assert.Equal(t, "B", comparison.Organizations[1].OrganizationID)
	assert.Equal(t, "C", comparison.Organizations[2].OrganizationID)
}

func TestGetSDGComparisonAggregates(t *testing.T) {
	store, source := comparisonFixture()
	svc := NewWithClock(store, source, testClock())

	comparison, err := svc.GetSDGComparison(context.Background(), []string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, 3, comparison.Aggregated.TotalSites)
	assert.Equal(t, 60.0, comparison.Aggregated.TotalCapacity)
	assert.Equal(t, 6000.0, comparison.Aggregated.RenewableEnergyGenerated)
	assert.Equal(t, 3000.0, comparison.Aggregated.TotalCO2Avoided)
	assert.Equal(t, 3, comparison.Aggregated.CommunitiesImpacted)
	// 10, 20 and 30 kW support 1, 2 and 3 jobs respectively.
	assert.Equal(t, 6, comparison.Aggregated.JobsSupported)
}

func TestGetSDGComparisonAbortsOnAnyFailure(t *testing.T) {
	store, source := comparisonFixture()
	svc := NewWithClock(store, source, testClock())

	_, err := svc.GetSDGComparison(context.Background(), []string{"A", "missing", "C"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotFound)
}

func TestGetSDGComparisonEmptyInput(t *testing.T) {
	store, source := comparisonFixture()
	svc := NewWithClock(store, source, testClock())

	comparison, err := svc.GetSDGComparison(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, comparison.Organizations)
	assert.Zero(t, comparison.Aggregated.TotalSites)
}
