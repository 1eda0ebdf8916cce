package sdg

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// South Africa grid emission factor, kg CO2 per kWh displaced.
const co2FactorKgPerKWh = 0.5

// Heuristic: direct and indirect employment per installed kW.
const jobsPerKW = 0.1

// OrganizationStore resolves organizations and their active sites.
type OrganizationStore interface {
	GetOrganization(ctx context.Context, id string) (domain.Organization, error)
	ListActiveSites(ctx context.Context, orgID string) ([]domain.Site, error)
}

// EnergyDataSource returns a site's energy totals over a window. Per-site
// failures are recoverable; the service skips the site and carries on.
type EnergyDataSource interface {
	SiteGeneration(ctx context.Context, siteID string, start, end time.Time) (domain.EnergyTotals, error)
}

// Service converts per-site generation figures into UN Sustainable
// Development Goal indicators. Stateless; safe for concurrent use.
type Service struct {
	store  OrganizationStore
	source EnergyDataSource
	now    func() time.Time
}

func New(store OrganizationStore, source EnergyDataSource) *Service {
	return &Service{store: store, source: source, now: time.Now}
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(store OrganizationStore, source EnergyDataSource, now func() time.Time) *Service {
	return &Service{store: store, source: source, now: now}
}

// CalculateSDGImpact builds the SDG indicator set for one organization from
// its trailing twelve months of generation. Sites without integration
// credentials, or whose fetch fails, contribute zero.
func (s *Service) CalculateSDGImpact(ctx context.Context, orgID string) (domain.SDGImpact, error) {
	org, err := s.store.GetOrganization(ctx, orgID)
	if err != nil {
		return domain.SDGImpact{}, fmt.Errorf("organization %s: %w", orgID, err)
	}
	sites, err := s.store.ListActiveSites(ctx, orgID)
	if err != nil {
		return domain.SDGImpact{}, fmt.Errorf("sites for organization %s: %w", orgID, err)
	}

	end := s.now()
	start := end.AddDate(-1, 0, 0)
	totalGeneration := s.sumGeneration(ctx, sites, start, end)

	var totalCapacity float64
	for _, site := range sites {
		totalCapacity += site.CapacityKW
	}
	totalCO2Avoided := totalGeneration * co2FactorKgPerKWh

	return domain.SDGImpact{
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		TotalSites:       len(sites),
		TotalCapacity:    totalCapacity,
		Metrics:          buildMetrics(totalCapacity, totalGeneration, totalCO2Avoided, len(sites), end),
		Summary: domain.SDGSummary{
			PrimaryGoals:             []int{7, 13, 11, 8, 9, 12},
			TotalCO2Avoided:          totalCO2Avoided,
			RenewableEnergyGenerated: totalGeneration,
			JobsSupported:            int(math.Round(totalCapacity * jobsPerKW)),
			CommunitiesImpacted:      len(sites),
		},
	}, nil
}

// sumGeneration totals generation across the credentialed sites, skipping
// the rest. Partial data is acceptable here; the skip is only logged.
func (s *Service) sumGeneration(ctx context.Context, sites []domain.Site, start, end time.Time) float64 {
	var total float64
	for _, site := range sites {
		if !site.HasIntegration {
			log.Debug().Str("site", site.ID).Msg("no integration credentials, skipping generation fetch")
			continue
		}
		totals, err := s.source.SiteGeneration(ctx, site.ID, start, end)
		if err != nil {
			log.Warn().Err(err).Str("site", site.ID).Msg("generation fetch failed, site contributes zero")
			continue
		}
		total += totals.TotalGeneration
	}
	return total
}
