package model

// ScenarioInputs is the single mutable record behind a calculator session.
// Every derived value is recomputed from it on each edit; it carries no
// hidden state of its own.
type ScenarioInputs struct {
	CompanyName                  string  `json:"company_name"`
	MonthlyVisits                float64 `json:"monthly_visits"`
	AvgPrice                     float64 `json:"avg_price"`
	ConversionRatePercent        float64 `json:"conversion_rate_percent"`
	OTAPercentage                float64 `json:"ota_percentage"`
	CommissionRatePercent        float64 `json:"commission_rate_percent"`
	ConversionImprovementPercent float64 `json:"conversion_improvement_percent"`
	DirectBookingIncreasePercent float64 `json:"direct_booking_increase_percent"`
	SetupFee                     float64 `json:"setup_fee"`
	MonthlyRetainer              float64 `json:"monthly_retainer"`
	IncludeRetainer              bool    `json:"include_retainer"`
}

// Field keys accepted by set_input and emitted by the share-link encoder.
const (
	FieldCompanyName                  = "company_name"
	FieldMonthlyVisits                = "monthly_visits"
	FieldAvgPrice                     = "avg_price"
	FieldConversionRatePercent        = "conversion_rate_percent"
	FieldOTAPercentage                = "ota_percentage"
	FieldCommissionRatePercent        = "commission_rate_percent"
	FieldConversionImprovementPercent = "conversion_improvement_percent"
	FieldDirectBookingIncreasePercent = "direct_booking_increase_percent"
	FieldSetupFee                     = "setup_fee"
	FieldMonthlyRetainer              = "monthly_retainer"
	FieldIncludeRetainer              = "include_retainer"
)

// DefaultInputs returns the session starting point: the medium scenario with
// no company name set.
func DefaultInputs() ScenarioInputs {
	return ScenarioInputs{
		MonthlyVisits:                8000,
		AvgPrice:                     95,
		ConversionRatePercent:        2.5,
		OTAPercentage:                45,
		CommissionRatePercent:        25,
		ConversionImprovementPercent: 40,
		DirectBookingIncreasePercent: 25,
		SetupFee:                     7500,
		MonthlyRetainer:              800,
		IncludeRetainer:              true,
	}
}
