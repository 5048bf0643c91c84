package engine

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"roi-engine/internal/calc"
	"roi-engine/internal/edits"
	"roi-engine/internal/format"
	"roi-engine/internal/jsonpatch"
	"roi-engine/internal/model"
	"roi-engine/internal/sharelink"
)

// Process applies the ordered edit stream to a fresh session state and
// returns the full recomputed view. Edits apply strictly in order; the
// first CRITICAL message stops processing with outcome FAILURE. The result
// set is always a pure function of the final inputs.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	state := model.DefaultInputs()

	var allMessages []model.CalculationMessage
	var processedEdits []model.ProcessedEdit
	outcome := model.OutcomeSuccess
	hasCritical := false

	lastEditID := ""
	lastEditIndex := 0
	if len(req.EditInstructions.Edits) > 0 {
		lastEditID = req.EditInstructions.Edits[0].EditID
	}

	for i, edit := range req.EditInstructions.Edits {
		handler, ok := edits.Get(edit.EditDefinitionName)
		if !ok {
			msg := model.CalculationMessage{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_EDIT",
				Message: fmt.Sprintf("Unknown edit: %s", edit.EditDefinitionName),
			}
			allMessages = append(allMessages, msg)
			processedEdits = append(processedEdits, model.ProcessedEdit{
				Edit:                      edit,
				CalculationMessageIndexes: []int{msg.ID},
			})
			outcome = model.OutcomeFailure
			hasCritical = true
			break
		}

		validationMsgs := handler.Validate(&state, &edit)
		var msgIndexes []int
		for _, vm := range validationMsgs {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			processedEdits = append(processedEdits, model.ProcessedEdit{
				Edit:                      edit,
				CalculationMessageIndexes: msgIndexes,
			})
			break
		}

		before := toDoc(state)
		applyMsgs := handler.Apply(&state, &edit)
		for _, am := range applyMsgs {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		processedEdits = append(processedEdits, model.ProcessedEdit{
			Edit:                      edit,
			CalculationMessageIndexes: msgIndexes,
			StatePatch:                statePatch(before, toDoc(state)),
		})

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}

		lastEditID = edit.EditID
		lastEditIndex = i
	}

	result := calc.Compute(state)

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			SessionID:              req.SessionID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages: allMessages,
			Edits:    processedEdits,
			EndState: model.StateEnvelope{
				EditID:    lastEditID,
				EditIndex: lastEditIndex,
				Inputs:    state,
			},
			Result:        result,
			Formatted:     format.Render(result),
			RevenueSeries: calc.RevenueSeries(result),
			PaybackSeries: calc.PaybackSeries(result),
			ShareLink:     sharelink.Encode(state),
		},
	}
}

func toDoc(in model.ScenarioInputs) interface{} {
	b, _ := json.Marshal(in)
	var doc interface{}
	json.Unmarshal(b, &doc)
	return doc
}

func statePatch(before, after interface{}) []byte {
	ops := jsonpatch.Diff(before, after, "")
	if len(ops) == 0 {
		return nil
	}
	b, _ := json.Marshal(ops)
	return b
}
