package sdg

import (
	"context"
	"math"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// GetSDGAlignmentScore grades an organization 0-100 against six goals using
// capacity-scaled denominators, then averages them into an overall score.
func (s *Service) GetSDGAlignmentScore(ctx context.Context, orgID string) (domain.AlignmentScore, error) {
	impact, err := s.CalculateSDGImpact(ctx, orgID)
	if err != nil {
		return domain.AlignmentScore{}, err
	}

	capacity := impact.TotalCapacity
	generation := impact.Summary.RenewableEnergyGenerated
	co2 := impact.Summary.TotalCO2Avoided
	jobs := float64(impact.Summary.JobsSupported)
	communities := float64(impact.Summary.CommunitiesImpacted)
	sites := float64(impact.TotalSites)

	scores := []domain.GoalScore{
		{Goal: 7, Score: cappedRatio(generation, capacity*1500)},
		{Goal: 8, Score: cappedRatio(jobs, capacity*0.2)},
		{Goal: 9, Score: math.Min(100, capacity/1000*20)},
		{Goal: 11, Score: cappedRatio(communities, sites)},
		{Goal: 12, Score: cappedRatio(generation, capacity*1200)},
		{Goal: 13, Score: cappedRatio(co2, capacity*1000)},
	}

	var sum float64
	strengths := []int{}
	improvements := []int{}
	for _, gs := range scores {
		sum += gs.Score
		switch {
		case gs.Score >= 80:
			strengths = append(strengths, gs.Goal)
		case gs.Score < 60:
			improvements = append(improvements, gs.Goal)
		}
	}

	return domain.AlignmentScore{
		OrganizationID: impact.OrganizationID,
		OverallScore:   int(math.Round(sum / float64(len(scores)))),
		GoalScores:     scores,
		Strengths:      strengths,
		Improvements:   improvements,
	}, nil
}

// cappedRatio scores value against target as a percentage capped at 100.
// A zero target scores zero rather than dividing by it.
func cappedRatio(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, value/target*100)
}
