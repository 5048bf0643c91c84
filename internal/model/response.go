package model

import "encoding/json"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	SessionID              string `json:"session_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages      []CalculationMessage `json:"messages"`
	Edits         []ProcessedEdit      `json:"edits"`
	EndState      StateEnvelope        `json:"end_state"`
	Result        ScenarioResult       `json:"result"`
	Formatted     FormattedResult      `json:"formatted"`
	RevenueSeries []SeriesPoint        `json:"revenue_series"`
	PaybackSeries PaybackSeries        `json:"payback_series"`
	ShareLink     string               `json:"share_link"`
}

type ProcessedEdit struct {
	Edit                      Edit            `json:"edit"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	StatePatch                json.RawMessage `json:"state_patch,omitempty"`
}

// StateEnvelope identifies the last successfully applied edit together with
// the inputs record it produced.
type StateEnvelope struct {
	EditID    string         `json:"edit_id"`
	EditIndex int            `json:"edit_index"`
	Inputs    ScenarioInputs `json:"inputs"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
