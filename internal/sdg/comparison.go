package sdg

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// GetSDGComparison computes impacts for every organization concurrently.
// Output order matches the input id order. The batch is all-or-nothing: one
// failing organization aborts the rest via the group context.
func (s *Service) GetSDGComparison(ctx context.Context, orgIDs []string) (domain.SDGComparison, error) {
	results := make([]domain.SDGImpact, len(orgIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range orgIDs {
		i, id := i, id
		g.Go(func() error {
			impact, err := s.CalculateSDGImpact(gctx, id)
			if err != nil {
				return err
			}
			results[i] = impact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.SDGComparison{}, err
	}

	var agg domain.SDGComparisonTotal
	for _, impact := range results {
		agg.TotalSites += impact.TotalSites
		agg.TotalCapacity += impact.TotalCapacity
		agg.TotalCO2Avoided += impact.Summary.TotalCO2Avoided
		agg.RenewableEnergyGenerated += impact.Summary.RenewableEnergyGenerated
		agg.JobsSupported += impact.Summary.JobsSupported
		agg.CommunitiesImpacted += impact.Summary.CommunitiesImpacted
	}

	return domain.SDGComparison{Organizations: results, Aggregated: agg}, nil
}
