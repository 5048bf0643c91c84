package edits

import (
	"encoding/json"
	"fmt"

	"roi-engine/internal/model"
	"roi-engine/internal/preset"
)

type loadPresetProps struct {
	Name string `json:"name"`
}

type LoadPresetHandler struct{}

func (h *LoadPresetHandler) Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props loadPresetProps
	json.Unmarshal(edit.EditProperties, &props)

	if !preset.Exists(props.Name) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_PRESET",
			Message: fmt.Sprintf("Unknown preset: %s", props.Name),
		}}
	}
	return nil
}

func (h *LoadPresetHandler) Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage {
	var props loadPresetProps
	json.Unmarshal(edit.EditProperties, &props)

	preset.Load(props.Name, state)
	return nil
}
