package edits

import (
	"encoding/json"
	"fmt"

	"roi-engine/internal/model"
)

type setInputProps struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// SetInputHandler writes one input field directly. Values are not clamped
// here: direct entry may exceed the declared domain until the slider UI
// clamps it externally.
type SetInputHandler struct{}

func (h *SetInputHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props setInputProps
	json.Unmarshal(edit.EditProperties, &props)

	switch props.Field {
	case model.FieldCompanyName,
		model.FieldMonthlyVisits,
		model.FieldAvgPrice,
		model.FieldConversionRatePercent,
		model.FieldOTAPercentage,
		model.FieldCommissionRatePercent,
		model.FieldConversionImprovementPercent,
		model.FieldDirectBookingIncreasePercent,
		model.FieldSetupFee,
		model.FieldMonthlyRetainer,
		model.FieldIncludeRetainer:
		return nil
	}

	return []model.CalculationMessage{{
		Level:   model.LevelCritical,
		Code:    "UNKNOWN_FIELD",
		Message: fmt.Sprintf("Unknown input field: %s", props.Field),
	}}
}

func (h *SetInputHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props setInputProps
	json.Unmarshal(edit.EditProperties, &props)

	switch props.Field {
	case model.FieldCompanyName:
		var s string
		json.Unmarshal(props.Value, &s)
		state.CompanyName = s
	case model.FieldIncludeRetainer:
		state.IncludeRetainer = parseBool(props.Value)
	case model.FieldMonthlyVisits:
		state.MonthlyVisits = parseNumber(props.Value)
	case model.FieldAvgPrice:
		state.AvgPrice = parseNumber(props.Value)
	case model.FieldConversionRatePercent:
		state.ConversionRatePercent = parseNumber(props.Value)
	case model.FieldOTAPercentage:
		state.OTAPercentage = parseNumber(props.Value)
	case model.FieldCommissionRatePercent:
		state.CommissionRatePercent = parseNumber(props.Value)
	case model.FieldConversionImprovementPercent:
		state.ConversionImprovementPercent = parseNumber(props.Value)
	case model.FieldDirectBookingIncreasePercent:
		state.DirectBookingIncreasePercent = parseNumber(props.Value)
	case model.FieldSetupFee:
		state.SetupFee = parseNumber(props.Value)
	case model.FieldMonthlyRetainer:
		state.MonthlyRetainer = parseNumber(props.Value)
	}

	return nil
}
