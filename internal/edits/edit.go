package edits

import "roi-engine/internal/model"

// EditHandler defines the contract for all edit implementations.
// Each edit validates its properties against the current state and then
// applies its change; the engine runs the forward pass afterwards.
type EditHandler interface {
	Validate(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage
	Apply(state *model.ScenarioInputs, edit *model.Edit) []model.CalculationMessage
}
