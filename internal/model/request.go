package model

import "encoding/json"

type CalculationRequest struct {
	SessionID        string           `json:"session_id"`
	EditInstructions EditInstructions `json:"edit_instructions"`
}

type EditInstructions struct {
	Edits []Edit `json:"edits"`
}

type Edit struct {
	EditID             string          `json:"edit_id"`
	EditDefinitionName string          `json:"edit_definition_name"`
	EditProperties     json.RawMessage `json:"edit_properties"`
}
