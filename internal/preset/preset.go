package preset

import "roi-engine/internal/model"

// Bundle is a complete scenario input set. Company name is deliberately not
// part of a bundle: loading a preset never touches it.
type Bundle struct {
	MonthlyVisits                float64
	AvgPrice                     float64
	ConversionRatePercent        float64
	OTAPercentage                float64
	CommissionRatePercent        float64
	ConversionImprovementPercent float64
	DirectBookingIncreasePercent float64
	SetupFee                     float64
	MonthlyRetainer              float64
	IncludeRetainer              bool
}

var bundles = map[string]Bundle{
	"small": {
		MonthlyVisits:                2000,
		AvgPrice:                     65,
		ConversionRatePercent:        2.0,
		OTAPercentage:                60,
		CommissionRatePercent:        25,
		ConversionImprovementPercent: 40,
		DirectBookingIncreasePercent: 25,
		SetupFee:                     3000,
		MonthlyRetainer:              300,
		IncludeRetainer:              true,
	},
	"medium": {
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
	},
	"large": {
		MonthlyVisits:                25000,
		AvgPrice:                     120,
		ConversionRatePercent:        3.0,
		OTAPercentage:                35,
		CommissionRatePercent:        22,
		ConversionImprovementPercent: 40,
		DirectBookingIncreasePercent: 25,
		SetupFee:                     15000,
		MonthlyRetainer:              1500,
		IncludeRetainer:              true,
	},
}

// Exists reports whether a preset with the given name is defined.
func Exists(name string) bool {
	_, ok := bundles[name]
	return ok
}

// Load overwrites every matching field of in with the named bundle.
// Returns false for an unknown preset name, leaving in untouched.
func Load(name string, in *model.ScenarioInputs) bool {
	b, ok := bundles[name]
	if !ok {
		return false
	}
	in.MonthlyVisits = b.MonthlyVisits
	in.AvgPrice = b.AvgPrice
	in.ConversionRatePercent = b.ConversionRatePercent
	in.OTAPercentage = b.OTAPercentage
	in.CommissionRatePercent = b.CommissionRatePercent
	in.ConversionImprovementPercent = b.ConversionImprovementPercent
	in.DirectBookingIncreasePercent = b.DirectBookingIncreasePercent
	in.SetupFee = b.SetupFee
	in.MonthlyRetainer = b.MonthlyRetainer
	in.IncludeRetainer = b.IncludeRetainer
	return true
}
