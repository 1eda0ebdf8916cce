package sdg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// GenerateSDGReport compares an organization's impact against the period of
// equal length immediately before startDate.
//
// TODO: CalculateSDGImpact always works off the trailing twelve months, so
// the current-period figures ignore startDate/endDate while the previous
// period honours them. Align the current window with the requested one once
// product confirms which behaviour billing depends on.
func (s *Service) GenerateSDGReport(ctx context.Context, orgID string, startDate, endDate time.Time) (domain.SDGReport, error) {
	impact, err := s.CalculateSDGImpact(ctx, orgID)
	if err != nil {
		return domain.SDGReport{}, err
	}
	sites, err := s.store.ListActiveSites(ctx, orgID)
	if err != nil {
		return domain.SDGReport{}, fmt.Errorf("sites for organization %s: %w", orgID, err)
	}

	length := endDate.Sub(startDate)
	prevGeneration := s.sumGeneration(ctx, sites, startDate.Add(-length), startDate)
	prevCO2 := prevGeneration * co2FactorKgPerKWh

	trends := domain.SDGTrends{
		Generation: trendEntry(impact.Summary.RenewableEnergyGenerated, prevGeneration),
		CO2Avoided: trendEntry(impact.Summary.TotalCO2Avoided, prevCO2),
		// Capacity is assumed stable period over period.
		Capacity: domain.TrendEntry{Current: impact.TotalCapacity, Previous: impact.TotalCapacity},
	}

	return domain.SDGReport{
		ID:              uuid.NewString(),
		Period:          domain.ReportPeriod{Start: startDate, End: endDate},
		Impact:          impact,
		Trends:          trends,
		Recommendations: reportRecommendations(impact, trends),
	}, nil
}

func trendEntry(current, previous float64) domain.TrendEntry {
	e := domain.TrendEntry{Current: current, Previous: previous}
	if previous != 0 {
		e.ChangePct = (current - previous) / previous * 100
	}
	return e
}

// reportRecommendations applies the fixed rule list in order. The smart-grid
// suggestion always closes the list.
func reportRecommendations(impact domain.SDGImpact, trends domain.SDGTrends) []domain.SDGRecommendation {
	recs := []domain.SDGRecommendation{}

	if trends.Generation.ChangePct < 5 {
		recs = append(recs, domain.SDGRecommendation{
			Goal:     7,
			Priority: "high",
			Action:   "Generation growth is flat; expand capacity or optimise existing arrays",
		})
	}
	if impact.Summary.TotalCO2Avoided < impact.TotalCapacity*1000 {
		recs = append(recs, domain.SDGRecommendation{
			Goal:     13,
			Priority: "medium",
			Action:   "CO2 avoidance lags installed capacity; improve yield to maximise climate impact",
		})
	}
	if float64(impact.Summary.JobsSupported) < impact.TotalCapacity*0.15 {
		recs = append(recs, domain.SDGRecommendation{
			Goal:     8,
			Priority: "medium",
			Action:   "Pair installations with local job-creation and training programmes",
		})
	}
	if impact.Summary.CommunitiesImpacted < impact.TotalSites {
		recs = append(recs, domain.SDGRecommendation{
			Goal:     11,
			Priority: "low",
			Action:   "Extend community engagement to every site",
		})
	}
	recs = append(recs, domain.SDGRecommendation{
		Goal:     9,
		Priority: "low",
		Action:   "Evaluate smart-grid integration and battery storage for resilient infrastructure",
	})
	return recs
}
