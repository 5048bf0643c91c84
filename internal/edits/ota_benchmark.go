package edits

import (
	"encoding/json"

	"roi-engine/internal/benchmarks"
	"roi-engine/internal/calc"
	"roi-engine/internal/model"
)

type otaBenchmarkProps struct {
	OTAs []string `json:"otas"`
}

// ApplyOTABenchmarkHandler sets the commission rate to the mean benchmark
// rate of the named OTAs. Unknown names fall back to the industry average.
type ApplyOTABenchmarkHandler struct{}

func (h *ApplyOTABenchmarkHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	return nil
}

func (h *ApplyOTABenchmarkHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props otaBenchmarkProps
	json.Unmarshal(edit.EditProperties, &props)

	rate := benchmarks.AverageCommission(props.OTAs)

	clamped := rate
	if clamped < calc.MinCommissionRatePercent {
		clamped = calc.MinCommissionRatePercent
	}
	if clamped > calc.MaxCommissionRatePercent {
		clamped = calc.MaxCommissionRatePercent
	}

	var msgs []model.CalculationMessage
	if clamped != rate {
		msgs = append(msgs, clampedMsg(model.FieldCommissionRatePercent, clamped))
	}
	state.CommissionRatePercent = clamped
	return msgs
}
