package sharelink

import (
	"net/url"
	"strconv"

	"roi-engine/internal/model"
)

// Encode serializes every scenario input into a query string, numbers
// stringified and the boolean as literal "true"/"false". The link is
// write-only: decoding belongs to the page that consumes it.
func Encode(in model.ScenarioInputs) string {
	v := url.Values{}
	v.Set(model.FieldCompanyName, in.CompanyName)
	v.Set(model.FieldMonthlyVisits, num(in.MonthlyVisits))
	v.Set(model.FieldAvgPrice, num(in.AvgPrice))
	v.Set(model.FieldConversionRatePercent, num(in.ConversionRatePercent))
	v.Set(model.FieldOTAPercentage, num(in.OTAPercentage))
	v.Set(model.FieldCommissionRatePercent, num(in.CommissionRatePercent))
	v.Set(model.FieldConversionImprovementPercent, num(in.ConversionImprovementPercent))
	v.Set(model.FieldDirectBookingIncreasePercent, num(in.DirectBookingIncreasePercent))
	v.Set(model.FieldSetupFee, num(in.SetupFee))
	v.Set(model.FieldMonthlyRetainer, num(in.MonthlyRetainer))
	v.Set(model.FieldIncludeRetainer, strconv.FormatBool(in.IncludeRetainer))
	return v.Encode()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
