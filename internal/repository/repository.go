package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSiteNotFound         = errors.New("site not found")
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

func (r *Repos) GetOrganization(ctx context.Context, id string) (domain.Organization, error) {
	var out domain.Organization
	err := r.db.GetContext(ctx, &out,
		`SELECT id, name, is_active FROM organizations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Organization{}, ErrOrganizationNotFound
	}
	return out, err
}

func (r *Repos) ListActiveSites(ctx context.Context, orgID string) ([]domain.Site, error) {
	var out []domain.Site
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, organization_id, name, address, municipality, capacity_kw, is_active, has_integration
		 FROM sites WHERE organization_id = $1 AND is_active ORDER BY id`, orgID)
	return out, err
}

func (r *Repos) GetSite(ctx context.Context, id string) (domain.Site, error) {
	var out domain.Site
	err := r.db.GetContext(ctx, &out,
		`SELECT id, organization_id, name, address, municipality, capacity_kw, is_active, has_integration
		 FROM sites WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Site{}, ErrSiteNotFound
	}
	return out, err
}

func (r *Repos) ListDevices(ctx context.Context, siteID string) ([]domain.Device, error) {
	var out []domain.Device
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, site_id, serial, kind, is_active FROM devices WHERE site_id = $1 ORDER BY id`, siteID)
	return out, err
}

func (r *Repos) InsertReading(ctx context.Context, rd *domain.Reading) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO readings(device_id, timestamp, generation_kwh, grid_kwh, solar_used_kwh, feed_in_kwh)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		rd.DeviceID, rd.Timestamp, rd.GenerationKWh, rd.GridKWh, rd.SolarUsedKWh, rd.FeedInKWh)
	return err
}

// HourlyEnergy assembles a site's readings for one local day into the
// hourly series the tariff engine consumes.
func (r *Repos) HourlyEnergy(ctx context.Context, siteID string, day time.Time) ([]domain.HourlyReading, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	rows := []struct {
		Hour   int     `db:"hour"`
		Grid   float64 `db:"grid_kwh"`
		Solar  float64 `db:"solar_used_kwh"`
		FeedIn float64 `db:"feed_in_kwh"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT EXTRACT(HOUR FROM r.timestamp)::int AS hour,
		        COALESCE(SUM(r.grid_kwh), 0)       AS grid_kwh,
		        COALESCE(SUM(r.solar_used_kwh), 0) AS solar_used_kwh,
		        COALESCE(SUM(r.feed_in_kwh), 0)    AS feed_in_kwh
		 FROM readings r
		 JOIN devices d ON d.id = r.device_id
		 WHERE d.site_id = $1 AND r.timestamp >= $2 AND r.timestamp < $3
		 GROUP BY 1 ORDER BY 1`,
		siteID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	out := make([]domain.HourlyReading, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.HourlyReading{
			Time:            fmt.Sprintf("%02d:00", row.Hour),
			GridConsumption: row.Grid,
			SolarUsage:      row.Solar,
			FeedIn:          row.FeedIn,
		})
	}
	return out, nil
}

// DailyEnergy returns one day's aggregate totals for a site. Used when no
// hourly readings exist.
func (r *Repos) DailyEnergy(ctx context.Context, siteID string, day time.Time) (domain.DailyTotals, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var out domain.DailyTotals
	err := r.db.GetContext(ctx, &out,
		`SELECT COALESCE(SUM(r.grid_kwh), 0)       AS grid_consumption,
		        COALESCE(SUM(r.solar_used_kwh), 0) AS solar_usage,
		        COALESCE(SUM(r.feed_in_kwh), 0)    AS feed_in,
		        COALESCE(SUM(r.generation_kwh), 0) AS solar_generation
		 FROM readings r
		 JOIN devices d ON d.id = r.device_id
		 WHERE d.site_id = $1 AND r.timestamp >= $2 AND r.timestamp < $3`,
		siteID, dayStart, dayStart.AddDate(0, 0, 1))
	return out, err
}

func (r *Repos) InsertAlert(ctx context.Context, a *domain.Alert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts(site_id, severity, message, created_at) VALUES ($1,$2,$3,$4)`,
		a.SiteID, a.Severity, a.Message, a.CreatedAt)
	return err
}

func (r *Repos) ListAlerts(ctx context.Context, siteID string) ([]domain.Alert, error) {
	var out []domain.Alert
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, site_id, severity, message, created_at FROM alerts WHERE site_id = $1 ORDER BY created_at DESC`, siteID)
	return out, err
}

// SiteCredentials returns the SolaX API credentials configured for a site.
func (r *Repos) SiteCredentials(ctx context.Context, siteID string) (string, string, error) {
	var creds struct {
		TokenID string `db:"token_id"`
		Secret  string `db:"secret"`
	}
	err := r.db.GetContext(ctx, &creds,
		`SELECT token_id, secret FROM site_integrations WHERE site_id = $1`, siteID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", fmt.Errorf("site %s has no integration credentials", siteID)
	}
	return creds.TokenID, creds.Secret, err
}
