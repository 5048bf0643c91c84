package model

// ScenarioResult is fully derived from ScenarioInputs and never mutated
// independently.
type ScenarioResult struct {
	CurrentMonthlyBookings    float64 `json:"current_monthly_bookings"`
	CurrentMonthlyRevenue     float64 `json:"current_monthly_revenue"`
	OTABookings               float64 `json:"ota_bookings"`
	MonthlyCommissionLoss     float64 `json:"monthly_commission_loss"`
	NewConversionRatePercent  float64 `json:"new_conversion_rate_percent"`
	NewMonthlyBookings        float64 `json:"new_monthly_bookings"`
	AdditionalMonthlyBookings float64 `json:"additional_monthly_bookings"`
	AdditionalMonthlyRevenue  float64 `json:"additional_monthly_revenue"`
	OTASavingsMonthly         float64 `json:"ota_savings_monthly"`
	TotalMonthlyBenefit       float64 `json:"total_monthly_benefit"`
	TotalAnnualBenefit        float64 `json:"total_annual_benefit"`
	Year1Investment           float64 `json:"year1_investment"`
	ROIPercentage             Metric  `json:"roi_percentage"`
	PaybackMonths             Metric  `json:"payback_months"`
	NetProfitYear1            float64 `json:"net_profit_year1"`
}

// FormattedResult carries display strings for every result field, rendered
// by the format package. Unbounded metrics render as the infinite glyph.
type FormattedResult struct {
	CurrentMonthlyBookings    string `json:"current_monthly_bookings"`
	CurrentMonthlyRevenue     string `json:"current_monthly_revenue"`
	OTABookings               string `json:"ota_bookings"`
	MonthlyCommissionLoss     string `json:"monthly_commission_loss"`
	NewConversionRatePercent  string `json:"new_conversion_rate_percent"`
	NewMonthlyBookings        string `json:"new_monthly_bookings"`
	AdditionalMonthlyBookings string `json:"additional_monthly_bookings"`
	AdditionalMonthlyRevenue  string `json:"additional_monthly_revenue"`
	OTASavingsMonthly         string `json:"ota_savings_monthly"`
	TotalMonthlyBenefit       string `json:"total_monthly_benefit"`
	TotalAnnualBenefit        string `json:"total_annual_benefit"`
	Year1Investment           string `json:"year1_investment"`
	ROIPercentage             string `json:"roi_percentage"`
	PaybackMonths             string `json:"payback_months"`
	NetProfitYear1            string `json:"net_profit_year1"`
}

// SeriesPoint is one labelled bar in the revenue comparison chart.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PaybackSeries holds the 13-point (month 0 through 12) cumulative benefit
// line against the flat year-1 investment line.
type PaybackSeries struct {
	Months            []int     `json:"months"`
	CumulativeBenefit []float64 `json:"cumulative_benefit"`
	InvestmentLine    []float64 `json:"investment_line"`
}
