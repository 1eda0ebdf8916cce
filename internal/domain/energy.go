package domain

// DailyTotals holds aggregate energy figures for a single day, in kWh.
type DailyTotals struct {
	GridConsumption float64 `db:"grid_consumption" json:"gridConsumption"`
	SolarUsage      float64 `db:"solar_usage" json:"solarUsage"`
	FeedIn          float64 `db:"feed_in" json:"feedIn"`
	SolarGeneration float64 `db:"solar_generation" json:"solarGeneration"`
	PeakUsage       float64 `db:"peak_usage" json:"peakUsage"`
	StandardUsage   float64 `db:"standard_usage" json:"standardUsage"`
	OffPeakUsage    float64 `db:"off_peak_usage" json:"offPeakUsage"`
}

// HourlyReading is one hour's worth of energy flows. Time is local clock
// time in "HH:MM" form.
type HourlyReading struct {
	Time            string  `json:"time"`
	GridConsumption float64 `json:"gridConsumption"`
	SolarUsage      float64 `json:"solarUsage"`
	FeedIn          float64 `json:"feedIn"`
}

// EnergyData is either a set of daily totals or an ordered hourly series.
// Construct with DailyEnergyData or HourlyEnergyData; the hourly form takes
// precedence when both are present and the series is non-empty.
type EnergyData struct {
	Daily  DailyTotals     `json:"daily"`
	Hourly []HourlyReading `json:"hourly,omitempty"`
}

func DailyEnergyData(totals DailyTotals) EnergyData {
	return EnergyData{Daily: totals}
}

func HourlyEnergyData(hours []HourlyReading) EnergyData {
	return EnergyData{Hourly: hours}
}

// IsHourly reports whether the hourly series should drive calculations.
func (e EnergyData) IsHourly() bool {
	return len(e.Hourly) > 0
}

// EnergyTotals is what an external energy-data source returns for a site
// over a window.
type EnergyTotals struct {
	TotalGeneration  float64         `json:"totalGeneration"`
	TotalConsumption float64         `json:"totalConsumption"`
	Hourly           []HourlyReading `json:"hourlyData,omitempty"`
}
