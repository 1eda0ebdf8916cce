package tariff

import (
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

// Engine computes time-of-use costs and savings. It holds only
// configuration; every calculation is a pure function of its inputs and the
// injected clock.
type Engine struct {
	rates     domain.TariffRates
	seasonal  domain.SeasonalAdjustments
	periods   domain.TimePeriods
	municipal map[string]domain.RateMultipliers
	currency  string
	now       func() time.Time
}

type Config struct {
	Rates          domain.TariffRates
	Seasonal       domain.SeasonalAdjustments
	Periods        domain.TimePeriods
	Municipalities map[string]domain.RateMultipliers
	Currency       string
	Now            func() time.Time
}

func New(cfg Config) *Engine {
	e := &Engine{
		rates:     cfg.Rates,
		seasonal:  cfg.Seasonal,
		periods:   cfg.Periods,
		municipal: cfg.Municipalities,
		currency:  cfg.Currency,
		now:       cfg.Now,
	}
	if e.rates == (domain.TariffRates{}) {
		e.rates = DefaultRates
	}
	if e.seasonal == (domain.SeasonalAdjustments{}) {
		e.seasonal = DefaultSeasonal
	}
	if len(e.periods.Peak) == 0 && len(e.periods.Standard) == 0 && len(e.periods.OffPeak) == 0 {
		e.periods = DefaultPeriods
	}
	if e.municipal == nil {
		e.municipal = builtinMunicipalities
	}
	if e.currency == "" {
		e.currency = "ZAR"
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// CurrentSeason maps a date to the tariff season. October through March is
// summer (Southern hemisphere), April through September winter.
func CurrentSeason(t time.Time) domain.Season {
	m := t.Month()
	if m >= time.October || m <= time.March {
		return domain.SeasonSummer
	}
	return domain.SeasonWinter
}

// MunicipalityAdjustments returns the rate multipliers for a municipality.
// Unknown municipalities get neutral multipliers.
func (e *Engine) MunicipalityAdjustments(municipality string) domain.RateMultipliers {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(municipality), " ", "-"))
	if m, ok := e.municipal[slug]; ok {
		return m
	}
	return domain.RateMultipliers{Peak: 1, Standard: 1, OffPeak: 1, FeedIn: 1}
}

// MunicipalRates returns the default rate card scaled for the site's
// municipality. It never fails: the billing view must always render, so any
// lookup trouble degrades to the default rates.
func (e *Engine) MunicipalRates(address, municipality string) domain.TariffRates {
	adj := e.MunicipalityAdjustments(municipality)
	log.Debug().
		Str("municipality", municipality).
		Str("address", address).
		Msg("resolved municipal rate adjustments")
	return domain.TariffRates{
		Peak:     e.rates.Peak * adj.Peak,
		Standard: e.rates.Standard * adj.Standard,
		OffPeak:  e.rates.OffPeak * adj.OffPeak,
		FeedIn:   e.rates.FeedIn * adj.FeedIn,
	}
}

// CalculateSavings computes the cost/savings breakdown for one day of
// energy data. The hourly series, when present, is billed hour by hour
// against the time-of-use windows; daily totals are billed at a blended
// average rate. Feed-in earnings always use the flat feed-in rate.
func (e *Engine) CalculateSavings(data domain.EnergyData, rates domain.TariffRates, periods domain.TimePeriods) domain.SavingsCalculation {
	season := CurrentSeason(e.now())
	mult := e.seasonal.ForSeason(season)
	if len(periods.Peak) == 0 && len(periods.Standard) == 0 && len(periods.OffPeak) == 0 {
		periods = e.periods
	}

	var gridCost, solarSavings, feedInEarnings float64

	if data.IsHourly() {
		for _, h := range data.Hourly {
			period := "standard"
			if minutes, err := ParseClockTime(h.Time); err == nil {
				period = PeriodFor(minutes, periods)
			} else {
				log.Warn().Err(err).Msg("hourly reading with bad clock time, billing at standard rate")
			}
			rate := rateFor(rates, period) * multiplierFor(mult, period)
			gridCost += h.GridConsumption * rate
			solarSavings += h.SolarUsage * rate
			feedInEarnings += h.FeedIn * rates.FeedIn
		}
	} else {
		avgRate := (rates.Peak + rates.Standard + rates.OffPeak) / 3
		seasonalAvgRate := avgRate * (mult.Peak + mult.Standard + mult.OffPeak) / 3
		gridCost = data.Daily.GridConsumption * seasonalAvgRate
		solarSavings = data.Daily.SolarUsage * seasonalAvgRate
		feedInEarnings = data.Daily.FeedIn * rates.FeedIn
	}

	grid := roundCents(gridCost)
	net := roundCents(solarSavings + feedInEarnings)
	var pct float64
	if grid+net != 0 {
		pct = net / (grid + net) * 100
	}

	return domain.SavingsCalculation{
		TotalGridCost:       grid,
		TotalSolarSavings:   roundCents(solarSavings),
		TotalFeedInEarnings: roundCents(feedInEarnings),
		NetSavings:          net,
		TotalBenefit:        net,
		SavingsPercentage:   roundCents(pct),
		Season:              season,
		Currency:            e.currency,
	}
}

// periodMultipliers maps a period label to its extrapolation factor in days.
var periodMultipliers = map[string]float64{
	"day":      1,
	"week":     7,
	"month":    30,
	"year":     365,
	"lifetime": 365 * 25,
}

// CalculatePeriodSavings extrapolates a single day's savings over the given
// period using municipality-adjusted rates. An empty period defaults to a
// month; an unrecognised one is passed through unscaled.
func (e *Engine) CalculatePeriodSavings(siteID string, data domain.EnergyData, address, municipality, period string) domain.SavingsCalculation {
	if period == "" {
		period = "month"
	}
	factor, ok := periodMultipliers[period]
	if !ok {
		log.Warn().Str("site", siteID).Str("period", period).Msg("unknown savings period, not extrapolating")
		factor = 1
	}

	rates := e.MunicipalRates(address, municipality)
	result := e.CalculateSavings(data, rates, domain.TimePeriods{})

	result.TotalGridCost = roundCents(result.TotalGridCost * factor)
	result.TotalSolarSavings = roundCents(result.TotalSolarSavings * factor)
	result.TotalFeedInEarnings = roundCents(result.TotalFeedInEarnings * factor)
	result.NetSavings = roundCents(result.NetSavings * factor)
	result.TotalBenefit = roundCents(result.TotalBenefit * factor)
	result.Period = period
	return result
}

func rateFor(rates domain.TariffRates, period string) float64 {
	switch period {
	case "peak":
		return rates.Peak
	case "offPeak":
		return rates.OffPeak
	default:
		return rates.Standard
	}
}

func multiplierFor(m domain.PeriodMultipliers, period string) float64 {
	switch period {
	case "peak":
		return m.Peak
	case "offPeak":
		return m.OffPeak
	case "standard":
		return m.Standard
	default:
		return 1
	}
}

// roundCents rounds half-up to two decimal places.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
