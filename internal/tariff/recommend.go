package tariff

import (
	"sort"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

var priorityRank = map[string]int{"high": 3, "medium": 2, "low": 1}

// UsageRecommendations derives rule-based suggestions from a day's usage
// profile. The list is sorted by priority, stable within equal priority, and
// is empty when no rule fires.
func (e *Engine) UsageRecommendations(data domain.EnergyData, rates domain.TariffRates, periods domain.TimePeriods) []domain.Recommendation {
	if rates == (domain.TariffRates{}) {
		rates = e.rates
	}
	if len(periods.Peak) == 0 && len(periods.Standard) == 0 && len(periods.OffPeak) == 0 {
		periods = e.periods
	}

	profile := profileFor(data, periods)
	recs := []domain.Recommendation{}

	if profile.totalUsage > 0 && profile.peakUsage > 0.3*profile.totalUsage {
		recs = append(recs, domain.Recommendation{
			Type:            "reduce_peak_usage",
			Message:         "Shift appliance use out of peak hours to cut your bill",
			PotentialSaving: roundCents(0.3 * profile.peakUsage * (rates.Peak - rates.OffPeak)),
			Priority:        "high",
		})
	}

	if profile.generation > 1.5*profile.solarUsage {
		surplus := profile.generation - profile.solarUsage
		recs = append(recs, domain.Recommendation{
			Type:            "optimize_solar_usage",
			Message:         "Run heavy loads during daylight to use more of your own generation",
			PotentialSaving: roundCents(0.5 * surplus * rates.Standard),
			Priority:        "medium",
		})
	}

	if profile.feedIn < 0.1*profile.generation {
		recs = append(recs, domain.Recommendation{
			Type:            "consider_battery_storage",
			Message:         "A battery would capture generation you are not exporting or using",
			PotentialSaving: roundCents(0.2 * profile.generation * (rates.Peak - rates.FeedIn)),
			Priority:        "medium",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] > priorityRank[recs[j].Priority]
	})
	return recs
}

type usageProfile struct {
	totalUsage float64
	peakUsage  float64
	solarUsage float64
	generation float64
	feedIn     float64
}

// profileFor reduces either energy-data shape to the figures the rules need.
// The hourly series carries no generation, so generation-driven rules only
// fire on daily totals.
func profileFor(data domain.EnergyData, periods domain.TimePeriods) usageProfile {
	var p usageProfile
	if data.IsHourly() {
		for _, h := range data.Hourly {
			usage := h.GridConsumption + h.SolarUsage
			p.totalUsage += usage
			p.solarUsage += h.SolarUsage
			p.feedIn += h.FeedIn
			if minutes, err := ParseClockTime(h.Time); err == nil && PeriodFor(minutes, periods) == "peak" {
				p.peakUsage += usage
			}
		}
		return p
	}
	d := data.Daily
	p.totalUsage = d.PeakUsage + d.StandardUsage + d.OffPeakUsage
	p.peakUsage = d.PeakUsage
	p.solarUsage = d.SolarUsage
	p.generation = d.SolarGeneration
	p.feedIn = d.FeedIn
	return p
}
