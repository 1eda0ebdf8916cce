package domain

// Season labels follow the Southern-hemisphere convention used by the
// tariff engine: October through March is summer.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

// TariffRates is a time-of-use rate card in currency per kWh.
type TariffRates struct {
	Peak     float64 `json:"peak" mapstructure:"peak"`
	Standard float64 `json:"standard" mapstructure:"standard"`
	OffPeak  float64 `json:"offPeak" mapstructure:"offPeak"`
	FeedIn   float64 `json:"feedIn" mapstructure:"feedIn"`
}

// TimePeriod is a clock-time range in "HH:MM" form. Start > End means the
// range wraps past midnight.
type TimePeriod struct {
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
}

// TimePeriods maps each rate period to its clock-time ranges. Resolution
// order is fixed: peak, then standard, then off-peak.
type TimePeriods struct {
	Peak     []TimePeriod `json:"peak" mapstructure:"peak"`
	Standard []TimePeriod `json:"standard" mapstructure:"standard"`
	OffPeak  []TimePeriod `json:"offPeak" mapstructure:"offPeak"`
}

// PeriodMultipliers scales the three consumption rate periods. Feed-in is
// never seasonally adjusted.
type PeriodMultipliers struct {
	Peak     float64 `json:"peak" mapstructure:"peak"`
	Standard float64 `json:"standard" mapstructure:"standard"`
	OffPeak  float64 `json:"offPeak" mapstructure:"offPeak"`
}

// RateMultipliers scales a full rate card, one factor per rate key. Used
// for municipality adjustments.
type RateMultipliers struct {
	Peak     float64 `json:"peak" mapstructure:"peak"`
	Standard float64 `json:"standard" mapstructure:"standard"`
	OffPeak  float64 `json:"offPeak" mapstructure:"offPeak"`
	FeedIn   float64 `json:"feedIn" mapstructure:"feedIn"`
}

type SeasonalAdjustments struct {
	Summer PeriodMultipliers `json:"summer" mapstructure:"summer"`
	Winter PeriodMultipliers `json:"winter" mapstructure:"winter"`
}

// ForSeason returns the multipliers for the given season.
func (s SeasonalAdjustments) ForSeason(season Season) PeriodMultipliers {
	if season == SeasonSummer {
		return s.Summer
	}
	return s.Winter
}

// SavingsCalculation is the output of a savings computation. All monetary
// fields are rounded to cents.
type SavingsCalculation struct {
	TotalGridCost       float64 `json:"totalGridCost"`
	TotalSolarSavings   float64 `json:"totalSolarSavings"`
	TotalFeedInEarnings float64 `json:"totalFeedInEarnings"`
	NetSavings          float64 `json:"netSavings"`
	TotalBenefit        float64 `json:"totalBenefit"`
	SavingsPercentage   float64 `json:"savingsPercentage"`
	Season              Season  `json:"season"`
	Currency            string  `json:"currency"`
	Period              string  `json:"period,omitempty"`
}

// Recommendation is a usage-optimisation suggestion from the tariff engine.
type Recommendation struct {
	Type            string  `json:"type"`
	Message         string  `json:"message"`
	PotentialSaving float64 `json:"potentialSaving"`
	Priority        string  `json:"priority"`
}
