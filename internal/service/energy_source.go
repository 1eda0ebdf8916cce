package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/cloud"
	"github.com/sunbird-energy/sunbird/internal/domain"
	"github.com/sunbird-energy/sunbird/internal/sdg"
)

// cachedSource consults the DynamoDB summary cache before the vendor API.
// Cache misses and write failures are log-only.
type cachedSource struct {
	cache *cloud.SummaryCache
	next  sdg.EnergyDataSource
}

func (s *cachedSource) SiteGeneration(ctx context.Context, siteID string, start, end time.Time) (domain.EnergyTotals, error) {
	if totals, ok := s.cache.Get(ctx, siteID, start, end); ok {
		return totals, nil
	}
	totals, err := s.next.SiteGeneration(ctx, siteID, start, end)
	if err != nil {
		return domain.EnergyTotals{}, err
	}
	if err := s.cache.Put(ctx, siteID, start, end, totals); err != nil {
		log.Warn().Err(err).Str("site", siteID).Msg("summary cache write failed")
	}
	return totals, nil
}
