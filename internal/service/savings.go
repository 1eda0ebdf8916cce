package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// SiteSavings bills the site's most recent day of readings and extrapolates
// over the requested period. Hourly readings drive the calculation when they
// exist; otherwise the day's totals are billed at the blended rate.
func (s *Services) SiteSavings(ctx context.Context, siteID, period string) (domain.SavingsCalculation, error) {
	site, err := s.Repos.GetSite(ctx, siteID)
	if err != nil {
		return domain.SavingsCalculation{}, err
	}

	day := time.Now()
	var data domain.EnergyData
	hours, err := s.Repos.HourlyEnergy(ctx, siteID, day)
	if err != nil {
		return domain.SavingsCalculation{}, err
	}
	if len(hours) > 0 {
		data = domain.HourlyEnergyData(hours)
	} else {
		daily, err := s.Repos.DailyEnergy(ctx, siteID, day)
		if err != nil {
			return domain.SavingsCalculation{}, err
		}
		data = domain.DailyEnergyData(daily)
	}

	return s.Tariff.CalculatePeriodSavings(siteID, data, site.Address, site.Municipality, period), nil
}

// SiteRecommendations derives usage recommendations for a site. High
// priority recommendations are forwarded to the alert topic when cloud
// services are on; notification failures never fail the request.
func (s *Services) SiteRecommendations(ctx context.Context, siteID string) ([]domain.Recommendation, error) {
	site, err := s.Repos.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	daily, err := s.Repos.DailyEnergy(ctx, siteID, time.Now())
	if err != nil {
		return nil, err
	}

	rates := s.Tariff.MunicipalRates(site.Address, site.Municipality)
	recs := s.Tariff.UsageRecommendations(domain.DailyEnergyData(daily), rates, domain.TimePeriods{})

	if s.Alerts != nil {
		for _, rec := range recs {
			if rec.Priority != "high" {
				continue
			}
			if err := s.Alerts.SendRecommendationAlert(ctx, siteID, rec); err != nil {
				log.Warn().Err(err).Str("site", siteID).Msg("recommendation alert failed")
			}
		}
	}
	return recs, nil
}

// OrganizationReport generates an SDG report and, when the archive is
// configured, uploads it and returns a presigned download URL.
func (s *Services) OrganizationReport(ctx context.Context, orgID string, start, end time.Time) (domain.SDGReport, string, error) {
	report, err := s.SDG.GenerateSDGReport(ctx, orgID, start, end)
	if err != nil {
		return domain.SDGReport{}, "", err
	}

	var url string
	if s.Reports != nil {
		url, err = s.Reports.UploadReport(ctx, report)
		if err != nil {
			log.Warn().Err(err).Str("organization", orgID).Msg("report archive upload failed")
			url = ""
		}
	}
	return report, url, nil
}
