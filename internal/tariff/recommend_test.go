package tariff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

func TestUsageRecommendationsAllRulesFire(t *testing.T) {
	e := New(Config{Now: fixedClock(time.June)})

	// Heavy peak share, large generation surplus, almost nothing exported.
	data := domain.DailyEnergyData(domain.DailyTotals{
		PeakUsage:       10,
		StandardUsage:   5,
		OffPeakUsage:    5,
		SolarUsage:      4,
		SolarGeneration: 20,
		FeedIn:          0.5,
	})
	recs := e.UsageRecommendations(data, DefaultRates, domain.TimePeriods{})
	require.Len(t, recs, 3)

	assert.Equal(t, "reduce_peak_usage", recs[0].Type)
	assert.Equal(t, "high", recs[0].Priority)
	// 30% of 10 kWh peak at the peak/off-peak spread of 1.30.
	assert.Equal(t, 3.90, recs[0].PotentialSaving)

	assert.Equal(t, "optimize_solar_usage", recs[1].Type)
	assert.Equal(t, "medium", recs[1].Priority)
	// Half of the 16 kWh surplus at the standard rate.
	assert.Equal(t, 14.40, recs[1].PotentialSaving)

	assert.Equal(t, "consider_battery_storage", recs[2].Type)
	assert.Equal(t, "medium", recs[2].Priority)
	// 20% of generation at the peak/feed-in spread of 1.70.
	assert.Equal(t, 6.80, recs[2].PotentialSaving)
}

func TestUsageRecommendationsQuietProfile(t *testing.T) {
	e := New(Config{Now: fixedClock(time.June)})

	// Balanced usage, generation fully consumed, healthy export share.
	data := domain.DailyEnergyData(domain.DailyTotals{
		PeakUsage:       2,
		StandardUsage:   5,
		OffPeakUsage:    5,
		SolarUsage:      8,
		SolarGeneration: 10,
		FeedIn:          2,
	})
	recs := e.UsageRecommendations(data, DefaultRates, domain.TimePeriods{})
	assert.Empty(t, recs)
}

func TestUsageRecommendationsZeroData(t *testing.T) {
	e := New(Config{Now: fixedClock(time.June)})

	recs := e.UsageRecommendations(domain.DailyEnergyData(domain.DailyTotals{}), DefaultRates, domain.TimePeriods{})
	assert.Empty(t, recs)
}

func TestUsageRecommendationsHourlyPeakShare(t *testing.T) {
	e := New(Config{Now: fixedClock(time.June)})

	// 4 of 6 kWh lands in the 07:00-10:00 peak window.
	data := domain.HourlyEnergyData([]domain.HourlyReading{
		{Time: "08:00", GridConsumption: 4},
		{Time: "13:00", GridConsumption: 2},
	})
	recs := e.UsageRecommendations(data, DefaultRates, domain.TimePeriods{})
	require.Len(t, recs, 1)
	assert.Equal(t, "reduce_peak_usage", recs[0].Type)
	assert.Equal(t, "high", recs[0].Priority)
}

func TestUsageRecommendationsPriorityOrdering(t *testing.T) {
	e := New(Config{Now: fixedClock(time.June)})

	// Only the two medium rules fire, then peak usage is raised so the
	// high-priority rule must come first.
	data := domain.DailyEnergyData(domain.DailyTotals{
		PeakUsage:       10,
		StandardUsage:   2,
		OffPeakUsage:    2,
		SolarUsage:      1,
		SolarGeneration: 10,
		FeedIn:          0,
	})
	recs := e.UsageRecommendations(data, DefaultRates, domain.TimePeriods{})
	require.NotEmpty(t, recs)

	ranks := make([]int, len(recs))
	for i, rec := range recs {
		ranks[i] = priorityRank[rec.Priority]
	}
	assert.IsNonDecreasing(t, reversed(ranks))
	assert.Equal(t, "high", recs[0].Priority)
}

func reversed(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
