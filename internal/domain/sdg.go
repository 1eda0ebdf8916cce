package domain

import "time"

// Trend values for SDG metrics.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// SDGMetric is one indicator against a UN Sustainable Development Goal
// target. Values are left unrounded; display rounding is the caller's
// concern.
type SDGMetric struct {
	Goal        int       `json:"goal"`
	Target      string    `json:"target"`
	Indicator   string    `json:"indicator"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Trend       string    `json:"trend"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type SDGSummary struct {
	PrimaryGoals             []int   `json:"primaryGoals"`
	TotalCO2Avoided          float64 `json:"totalCO2Avoided"`
	RenewableEnergyGenerated float64 `json:"renewableEnergyGenerated"`
	JobsSupported            int     `json:"jobsSupported"`
	CommunitiesImpacted      int     `json:"communitiesImpacted"`
}

// SDGImpact aggregates sustainability indicators for one organization.
type SDGImpact struct {
	OrganizationID   string      `json:"organizationId"`
	OrganizationName string      `json:"organizationName"`
	TotalSites       int         `json:"totalSites"`
	TotalCapacity    float64     `json:"totalCapacity"`
	Metrics          []SDGMetric `json:"metrics"`
	Summary          SDGSummary  `json:"summary"`
}

// SDGComparison holds per-organization impacts, in request order, plus
// summed totals.
type SDGComparison struct {
	Organizations []SDGImpact        `json:"organizations"`
	Aggregated    SDGComparisonTotal `json:"aggregated"`
}

type SDGComparisonTotal struct {
	TotalSites               int     `json:"totalSites"`
	TotalCapacity            float64 `json:"totalCapacity"`
	TotalCO2Avoided          float64 `json:"totalCO2Avoided"`
	RenewableEnergyGenerated float64 `json:"renewableEnergyGenerated"`
	JobsSupported            int     `json:"jobsSupported"`
	CommunitiesImpacted      int     `json:"communitiesImpacted"`
}

type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TrendEntry compares a figure against the preceding period of equal length.
type TrendEntry struct {
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	ChangePct float64 `json:"changePct"`
}

type SDGTrends struct {
	Generation TrendEntry `json:"generation"`
	CO2Avoided TrendEntry `json:"co2Avoided"`
	Capacity   TrendEntry `json:"capacity"`
}

type SDGRecommendation struct {
	Goal     int    `json:"goal"`
	Priority string `json:"priority"`
	Action   string `json:"action"`
}

type SDGReport struct {
	ID              string              `json:"id"`
	Period          ReportPeriod        `json:"period"`
	Impact          SDGImpact           `json:"impact"`
	Trends          SDGTrends           `json:"trends"`
	Recommendations []SDGRecommendation `json:"recommendations"`
}

type GoalScore struct {
	Goal  int     `json:"goal"`
	Score float64 `json:"score"`
}

// AlignmentScore grades an organization against six SDGs. Goals scoring 80
// or above are strengths, below 60 improvements; the band between draws no
// comment.
type AlignmentScore struct {
	OrganizationID string      `json:"organizationId"`
	OverallScore   int         `json:"overallScore"`
	GoalScores     []GoalScore `json:"goalScores"`
	Strengths      []int       `json:"strengths"`
	Improvements   []int       `json:"improvements"`
}
