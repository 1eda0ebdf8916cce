package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/cloud"
	"github.com/sunbird-energy/sunbird/internal/config"
	"github.com/sunbird-energy/sunbird/internal/repository"
	"github.com/sunbird-energy/sunbird/internal/sdg"
	"github.com/sunbird-energy/sunbird/internal/solax"
	"github.com/sunbird-energy/sunbird/internal/tariff"
)

type Services struct {
	Repos   *repository.Repos
	Tariff  *tariff.Engine
	SDG     *sdg.Service
	Alerts  *cloud.AlertNotifier
	Reports *cloud.ReportArchive
}

func New(ctx context.Context, db *sqlx.DB) (*Services, error) {
	repos := repository.New(db)

	settings, err := config.LoadTariffSettings()
	if err != nil {
		return nil, err
	}
	engine := tariff.New(tariff.Config{
		Rates:          settings.DefaultRates,
		Seasonal:       settings.Seasonal,
		Periods:        settings.TimePeriods,
		Municipalities: settings.Municipalities,
		Currency:       config.Currency(),
	})

	var source sdg.EnergyDataSource = solax.NewClient(config.SolaxBaseURL(), repos)

	svcs := &Services{Repos: repos, Tariff: engine}

	if config.UseCloudServices() {
		cache, err := cloud.NewSummaryCache(ctx, config.AWSRegion(), config.DynamoTable())
		if err != nil {
			return nil, err
		}
		source = &cachedSource{cache: cache, next: source}

		svcs.Reports, err = cloud.NewReportArchive(ctx, config.AWSRegion(), config.S3Bucket())
		if err != nil {
			return nil, err
		}
		if arn := config.SNSTopicArn(); arn != "" {
			svcs.Alerts, err = cloud.NewAlertNotifier(ctx, config.AWSRegion(), arn)
			if err != nil {
				return nil, err
			}
		}
		log.Info().Msg("cloud services enabled")
	}

	svcs.SDG = sdg.New(repos, source)
	return svcs, nil
}
