package sdg

import (
	"time"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// Average South African household consumption, kWh per year. Used to express
// generation as an energy-access figure.
const householdKWhPerYear = 3500

// buildMetrics produces the fixed indicator set across goals 7, 13, 11, 8,
// 9 and 12. Every trend is improving except the efficiency ratio, which is
// stable while nothing has been generated. Values are left unrounded.
func buildMetrics(totalCapacity, totalGeneration, totalCO2Avoided float64, siteCount int, at time.Time) []domain.SDGMetric {
	co2PerSite := 0.0
	if siteCount > 0 {
		co2PerSite = totalCO2Avoided / float64(siteCount)
	}
	efficiency := 0.0
	if totalCapacity > 0 {
		efficiency = totalGeneration / totalCapacity
	}
	efficiencyTrend := domain.TrendStable
	if totalGeneration > 0 {
		efficiencyTrend = domain.TrendImproving
	}

	return []domain.SDGMetric{
		{
			Goal:        7,
			Target:      "7.1",
			Indicator:   "Household-equivalents supplied with clean energy",
			Value:       totalGeneration / householdKWhPerYear,
			Unit:        "households",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        7,
			Target:      "7.2",
			Indicator:   "Renewable electricity generated",
			Value:       totalGeneration,
			Unit:        "kWh",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        13,
			Target:      "13.2",
			Indicator:   "CO2 emissions avoided",
			Value:       totalCO2Avoided / 1000,
			Unit:        "tonnes CO2e",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        13,
			Target:      "13.3",
			Indicator:   "Grid emissions displaced",
			Value:       totalCO2Avoided,
			Unit:        "kg CO2e",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        11,
			Target:      "11.6",
			Indicator:   "CO2 avoided per site",
			Value:       co2PerSite,
			Unit:        "kg CO2e",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        8,
			Target:      "8.5",
			Indicator:   "Jobs supported by installed capacity",
			Value:       totalCapacity * jobsPerKW,
			Unit:        "jobs",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        9,
			Target:      "9.4",
			Indicator:   "Clean energy infrastructure installed",
			Value:       totalCapacity,
			Unit:        "kW",
			Trend:       domain.TrendImproving,
			LastUpdated: at,
		},
		{
			Goal:        12,
			Target:      "12.2",
			Indicator:   "Generation per installed kW",
			Value:       efficiency,
			Unit:        "kWh/kW",
			Trend:       efficiencyTrend,
			LastUpdated: at,
		},
	}
}
