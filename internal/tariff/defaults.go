package tariff

import "github.com/sunbird-energy/sunbird/internal/domain"

// DefaultRates is the Eskom-style residential time-of-use rate card in
// ZAR/kWh, used when no municipality-specific card is configured.
var DefaultRates = domain.TariffRates{
	Peak:     2.50,
	Standard: 1.80,
	OffPeak:  1.20,
	FeedIn:   0.80,
}

// DefaultSeasonal scales the consumption rates per season. Feed-in is never
// seasonally adjusted.
var DefaultSeasonal = domain.SeasonalAdjustments{
	Summer: domain.PeriodMultipliers{Peak: 1.0, Standard: 0.9, OffPeak: 0.8},
	Winter: domain.PeriodMultipliers{Peak: 1.2, Standard: 1.0, OffPeak: 0.8},
}

// DefaultPeriods are the standard time-of-use windows: morning and evening
// peaks, off-peak overnight, standard in between.
var DefaultPeriods = domain.TimePeriods{
	Peak: []domain.TimePeriod{
		{Start: "07:00", End: "10:00"},
		{Start: "18:00", End: "20:00"},
	},
	Standard: []domain.TimePeriod{
		{Start: "06:00", End: "07:00"},
		{Start: "10:00", End: "18:00"},
		{Start: "20:00", End: "22:00"},
	},
	OffPeak: []domain.TimePeriod{
		{Start: "22:00", End: "06:00"},
	},
}

// builtinMunicipalities seeds the adjustment table when no configured table
// is supplied. Keys are lowercased slugs.
var builtinMunicipalities = map[string]domain.RateMultipliers{
	"cape-town":    {Peak: 1.05, Standard: 1.03, OffPeak: 1.02, FeedIn: 1.00},
	"johannesburg": {Peak: 1.10, Standard: 1.06, OffPeak: 1.04, FeedIn: 0.95},
	"ethekwini":    {Peak: 1.08, Standard: 1.05, OffPeak: 1.03, FeedIn: 0.90},
	"tshwane":      {Peak: 1.02, Standard: 1.01, OffPeak: 1.00, FeedIn: 1.00},
}
