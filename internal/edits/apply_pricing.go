package edits

import (
	"encoding/json"
	"fmt"

	"roi-engine/internal/calc"
	"roi-engine/internal/model"
)

type applyPricingProps struct {
	Complexity     string `json:"complexity"`
	CustomFeatures bool   `json:"custom_features"`
}

// ApplyPricingHandler writes the tier-recommended setup fee and monthly
// retainer into the inputs based on current traffic.
type ApplyPricingHandler struct{}

func (h *ApplyPricingHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props applyPricingProps
	json.Unmarshal(edit.EditProperties, &props)

	if props.Complexity != "" && !calc.KnownComplexity(props.Complexity) {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_COMPLEXITY",
			Message: fmt.Sprintf("Unknown complexity %q; using moderate", props.Complexity),
		}}
	}
	return nil
}

func (h *ApplyPricingHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props applyPricingProps
	json.Unmarshal(edit.EditProperties, &props)

	complexity := props.Complexity
	if complexity == "" {
		complexity = "moderate"
	}

	rec := calc.RecommendPricing(state.MonthlyVisits, complexity, props.CustomFeatures)
	state.SetupFee = rec.SetupFee
	state.MonthlyRetainer = rec.MonthlyFee
	return nil
}
