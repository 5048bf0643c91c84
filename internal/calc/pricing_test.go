package calc

import "testing"

func TestRecommendPricingTierBoundaries(t *testing.T) {
	cases := []struct {
		visits float64
		tier   string
	}{
		{0, "Starter"},
		{999, "Starter"},
		{1000, "Growth"},
		{4999, "Growth"},
		{5000, "Professional"},
		{14999, "Professional"},
		{15000, "Business"},
		{49999, "Business"},
		{50000, "Enterprise"},
		{1e7, "Enterprise"},
	}
	for _, tc := range cases {
		rec := RecommendPricing(tc.visits, "simple", false)
		if rec.TierName != tc.tier {
			t.Fatalf("visits=%v: got tier %s, want %s", tc.visits, rec.TierName, tc.tier)
		}
	}
}

func TestRecommendPricingModerate(t *testing.T) {
	// Professional tier: setup 2500*1.8*1.5 = 6750 -> $6,800; monthly 150*1.8 = 270 -> $275.
	rec := RecommendPricing(8000, "moderate", false)
	if rec.SetupFee != 6800 {
		t.Fatalf("setup fee: got %v, want 6800", rec.SetupFee)
	}
	if rec.MonthlyFee != 275 {
		t.Fatalf("monthly fee: got %v, want 275", rec.MonthlyFee)
	}
	if rec.TotalYear1 != 6800+275*12 {
		t.Fatalf("total year 1: got %v", rec.TotalYear1)
	}
}

func TestRecommendPricingUnknownComplexityFallsBack(t *testing.T) {
	got := RecommendPricing(8000, "bespoke", false)
	want := RecommendPricing(8000, "moderate", false)
	if got.SetupFee != want.SetupFee || got.MonthlyFee != want.MonthlyFee {
		t.Fatalf("unknown complexity should price as moderate: got %+v", got)
	}
	if got.ComplexityLevel != "moderate" {
		t.Fatalf("expected moderate fallback, got %s", got.ComplexityLevel)
	}
}

func TestRecommendPricingCustomFeatures(t *testing.T) {
	// Starter/simple: setup 2500*0.6 = 1500, *1.3 = 1950 -> $2,000;
	// monthly 150*0.6 = 90, *1.2 = 108 -> $125.
	rec := RecommendPricing(500, "simple", true)
	if rec.SetupFee != 2000 {
		t.Fatalf("setup fee: got %v, want 2000", rec.SetupFee)
	}
	if rec.MonthlyFee != 125 {
		t.Fatalf("monthly fee: got %v, want 125", rec.MonthlyFee)
	}
}
