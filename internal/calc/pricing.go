package calc

import "math"

// PricingRecommendation is the tier-based package suggestion derived from
// monthly traffic and implementation complexity.
type PricingRecommendation struct {
	TierName          string  `json:"tier_name"`
	TrafficMultiplier float64 `json:"traffic_multiplier"`
	ComplexityLevel   string  `json:"complexity_level"`
	SetupFee          float64 `json:"setup_fee"`
	MonthlyFee        float64 `json:"monthly_fee"`
	AnnualFee         float64 `json:"annual_fee"`
	TotalYear1        float64 `json:"total_year1"`
}

const (
	setupFeeBase   = 2500
	monthlyFeeBase = 150
)

type trafficTier struct {
	below      float64
	name       string
	multiplier float64
}

// Tiers are matched in order; the open-ended last tier catches everything.
var trafficTiers = []trafficTier{
	{1000, "Starter", 0.6},
	{5000, "Growth", 1.0},
	{15000, "Professional", 1.8},
	{50000, "Business", 3.2},
	{math.Inf(1), "Enterprise", 5.5},
}

var complexityMultipliers = map[string]float64{
	"simple":     1.0,
	"moderate":   1.5,
	"complex":    2.0,
	"enterprise": 3.0,
}

// KnownComplexity reports whether level is a defined complexity multiplier.
func KnownComplexity(level string) bool {
	_, ok := complexityMultipliers[level]
	return ok
}

// RecommendPricing computes the suggested setup fee and monthly fee for the
// given traffic volume. Unknown complexity falls back to moderate. Setup is
// rounded up to the nearest $100, the monthly fee to the nearest $25.
func RecommendPricing(monthlyVisits float64, complexity string, customFeatures bool) PricingRecommendation {
	tier := trafficTiers[len(trafficTiers)-1]
	for _, t := range trafficTiers {
		if monthlyVisits < t.below {
			tier = t
			break
		}
	}

	setup := setupFeeBase * tier.multiplier
	monthly := monthlyFeeBase * tier.multiplier

	mult, ok := complexityMultipliers[complexity]
	if !ok {
		complexity = "moderate"
		mult = complexityMultipliers["moderate"]
	}
	setup *= mult

	if customFeatures {
		setup *= 1.3
		monthly *= 1.2
	}

	setup = math.Ceil(setup/100) * 100
	monthly = math.Ceil(monthly/25) * 25

	return PricingRecommendation{
		TierName:          tier.name,
		TrafficMultiplier: tier.multiplier,
		ComplexityLevel:   complexity,
		SetupFee:          setup,
		MonthlyFee:        monthly,
		AnnualFee:         monthly * 12,
		TotalYear1:        setup + monthly*12,
	}
}
