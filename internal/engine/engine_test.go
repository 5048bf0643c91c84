package engine

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"roi-engine/internal/model"
)

func edit(id, name, props string) model.Edit {
	return model.Edit{
		EditID:             id,
		EditDefinitionName: name,
		EditProperties:     json.RawMessage(props),
	}
}

func request(e ...model.Edit) *model.CalculationRequest {
	return &model.CalculationRequest{
		SessionID:        "test-session",
		EditInstructions: model.EditInstructions{Edits: e},
	}
}

func TestLoadPresetMedium(t *testing.T) {
	resp := Process(request(
		edit("e1", "load_preset", `{"name": "medium"}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.SessionID != "test-session" {
		t.Fatalf("expected session echo, got %s", resp.CalculationMetadata.SessionID)
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	res := resp.CalculationResult.Result
	if math.Abs(res.CurrentMonthlyRevenue-19000) > 1e-6 {
		t.Fatalf("expected revenue 19000, got %v", res.CurrentMonthlyRevenue)
	}
	if math.Abs(res.TotalAnnualBenefit-97612.5) > 1e-6 {
		t.Fatalf("expected annual benefit 97612.5, got %v", res.TotalAnnualBenefit)
	}

	if resp.CalculationResult.Formatted.CurrentMonthlyRevenue != "$19,000" {
		t.Fatalf("unexpected formatted revenue: %s", resp.CalculationResult.Formatted.CurrentMonthlyRevenue)
	}
	if resp.CalculationResult.Formatted.ROIPercentage != "571%" {
		t.Fatalf("unexpected formatted ROI: %s", resp.CalculationResult.Formatted.ROIPercentage)
	}

	if len(resp.CalculationResult.RevenueSeries) != 2 {
		t.Fatalf("expected 2 revenue series points, got %d", len(resp.CalculationResult.RevenueSeries))
	}
	if len(resp.CalculationResult.PaybackSeries.Months) != 13 {
		t.Fatalf("expected 13 payback points, got %d", len(resp.CalculationResult.PaybackSeries.Months))
	}

	if !strings.Contains(resp.CalculationResult.ShareLink, "monthly_visits=8000") {
		t.Fatalf("share link missing visits: %s", resp.CalculationResult.ShareLink)
	}
	if !strings.Contains(resp.CalculationResult.ShareLink, "include_retainer=true") {
		t.Fatalf("share link missing retainer flag: %s", resp.CalculationResult.ShareLink)
	}

	if resp.CalculationResult.EndState.EditID != "e1" {
		t.Fatalf("end state should reference last edit, got %s", resp.CalculationResult.EndState.EditID)
	}
}

func TestUnknownEdit(t *testing.T) {
	resp := Process(request(
		edit("e1", "does_not_exist", `{}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.CalculationResult.Messages))
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_EDIT" {
		t.Fatalf("expected UNKNOWN_EDIT, got %s", resp.CalculationResult.Messages[0].Code)
	}
}

func TestUnknownPresetStopsProcessing(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "monthly_visits", "value": 5000}`),
		edit("e2", "load_preset", `{"name": "gigantic"}`),
		edit("e3", "set_input", `{"field": "avg_price", "value": 50}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_PRESET" {
		t.Fatalf("expected UNKNOWN_PRESET, got %s", resp.CalculationResult.Messages[0].Code)
	}

	// First edit applied, second failed, third never processed.
	if len(resp.CalculationResult.Edits) != 2 {
		t.Fatalf("expected 2 processed edits, got %d", len(resp.CalculationResult.Edits))
	}
	if resp.CalculationResult.EndState.EditID != "e1" {
		t.Fatalf("end state should reference last successful edit, got %s", resp.CalculationResult.EndState.EditID)
	}
	if resp.CalculationResult.EndState.Inputs.MonthlyVisits != 5000 {
		t.Fatalf("expected visits 5000 in end state, got %v", resp.CalculationResult.EndState.Inputs.MonthlyVisits)
	}
	if resp.CalculationResult.EndState.Inputs.AvgPrice == 50 {
		t.Fatal("third edit must not have applied")
	}
}

func TestInverseBookingsClamped(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "monthly_visits", "value": 10000}`),
		edit("e2", "set_bookings", `{"value": 5000}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	// Raw ratio is 50%, far outside the conversion domain.
	if got := resp.CalculationResult.EndState.Inputs.ConversionRatePercent; got != 10 {
		t.Fatalf("expected conversion clamped to 10, got %v", got)
	}

	found := false
	for _, m := range resp.CalculationResult.Messages {
		if m.Code == "DERIVED_VALUE_CLAMPED" && m.Level == model.LevelWarning {
			found = true
		}
	}
	if !found {
		t.Fatal("expected DERIVED_VALUE_CLAMPED warning")
	}

	// The edited aggregate is overwritten with the authoritative value.
	if got := resp.CalculationResult.Result.CurrentMonthlyBookings; math.Abs(got-1000) > 1e-9 {
		t.Fatalf("expected recomputed bookings 1000, got %v", got)
	}
}

func TestInverseNoPropagation(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "monthly_visits", "value": 0}`),
		edit("e2", "set_bookings", `{"value": 500}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("no-op inverse must not fail the calculation, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	found := false
	for _, m := range resp.CalculationResult.Messages {
		if m.Code == "NO_VISITS" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected NO_VISITS warning")
	}

	// Conversion rate stays at its default; the edit did not propagate.
	if got := resp.CalculationResult.EndState.Inputs.ConversionRatePercent; got != 2.5 {
		t.Fatalf("expected conversion rate untouched at 2.5, got %v", got)
	}
}

func TestUnparsableNumberCoercesToZero(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "monthly_visits", "value": "banana"}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if got := resp.CalculationResult.EndState.Inputs.MonthlyVisits; got != 0 {
		t.Fatalf("expected visits coerced to 0, got %v", got)
	}
	if got := resp.CalculationResult.Result.CurrentMonthlyBookings; got != 0 {
		t.Fatalf("expected 0 bookings, got %v", got)
	}
}

func TestUnknownFieldIsCritical(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "favourite_color", "value": 7}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_FIELD" {
		t.Fatalf("expected UNKNOWN_FIELD, got %s", resp.CalculationResult.Messages[0].Code)
	}
}

func TestStatePatchAttached(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "avg_price", "value": 120}`),
	))

	if len(resp.CalculationResult.Edits) != 1 {
		t.Fatalf("expected 1 processed edit, got %d", len(resp.CalculationResult.Edits))
	}
	patch := resp.CalculationResult.Edits[0].StatePatch
	if len(patch) == 0 {
		t.Fatal("expected a state patch for a changing edit")
	}
	if !strings.Contains(string(patch), "/avg_price") {
		t.Fatalf("patch should touch avg_price: %s", patch)
	}
}

func TestApplyRecommendedPricing(t *testing.T) {
	resp := Process(request(
		edit("e1", "set_input", `{"field": "monthly_visits", "value": 8000}`),
		edit("e2", "apply_recommended_pricing", `{"complexity": "moderate"}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	in := resp.CalculationResult.EndState.Inputs
	if in.SetupFee != 6800 {
		t.Fatalf("expected recommended setup fee 6800, got %v", in.SetupFee)
	}
	if in.MonthlyRetainer != 275 {
		t.Fatalf("expected recommended retainer 275, got %v", in.MonthlyRetainer)
	}
}

func TestApplyOTABenchmark(t *testing.T) {
	resp := Process(request(
		edit("e1", "apply_ota_benchmark", `{"otas": ["viator", "expedia"]}`),
	))

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	// Mean of viator 25 and expedia 20.
	if got := resp.CalculationResult.EndState.Inputs.CommissionRatePercent; math.Abs(got-22.5) > 1e-9 {
		t.Fatalf("expected commission rate 22.5, got %v", got)
	}
}
