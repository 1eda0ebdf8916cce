package domain

import "time"

type Organization struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type Site struct {
	ID             string  `db:"id" json:"id"`
	OrganizationID string  `db:"organization_id" json:"organization_id"`
	Name           string  `db:"name" json:"name"`
	Address        string  `db:"address" json:"address"`
	Municipality   string  `db:"municipality" json:"municipality"`
	CapacityKW     float64 `db:"capacity_kw" json:"capacity_kw"`
	IsActive       bool    `db:"is_active" json:"is_active"`
	HasIntegration bool    `db:"has_integration" json:"has_integration"`
}

type Device struct {
	ID       string `db:"id" json:"id"`
	SiteID   string `db:"site_id" json:"site_id"`
	Serial   string `db:"serial" json:"serial"`
	Kind     string `db:"kind" json:"kind"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type Reading struct {
	ID            int64     `db:"id" json:"id"`
	DeviceID      string    `db:"device_id" json:"device_id"`
	Timestamp     time.Time `db:"timestamp" json:"timestamp"`
	GenerationKWh float64   `db:"generation_kwh" json:"generation_kwh"`
	GridKWh       float64   `db:"grid_kwh" json:"grid_kwh"`
	SolarUsedKWh  float64   `db:"solar_used_kwh" json:"solar_used_kwh"`
	FeedInKWh     float64   `db:"feed_in_kwh" json:"feed_in_kwh"`
}

type Alert struct {
	ID        int64     `db:"id" json:"id"`
	SiteID    string    `db:"site_id" json:"site_id"`
	Severity  string    `db:"severity" json:"severity"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
