package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"roi-engine/internal/engine"
	"roi-engine/internal/model"
	"roi-engine/internal/report"
)

type Handler struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

// Handle routes all engine endpoints.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/calculate":
		h.calculate(ctx)
	case "/proposal":
		h.proposal(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) calculate(ctx *fasthttp.RequestCtx) {
	req, ok := h.decode(ctx)
	if !ok {
		return
	}

	resp := engine.Process(req)
	h.logProcessed(resp, len(req.EditInstructions.Edits))

	ctx.SetContentType("application/json")
	body, _ := json.Marshal(resp)
	ctx.SetBody(body)
}

func (h *Handler) proposal(ctx *fasthttp.RequestCtx) {
	req, ok := h.decode(ctx)
	if !ok {
		return
	}

	resp := engine.Process(req)
	h.logProcessed(resp, len(req.EditInstructions.Edits))

	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBodyString(report.Summary(resp.CalculationResult.EndState.Inputs, resp.CalculationResult.Result))
}

func (h *Handler) decode(ctx *fasthttp.RequestCtx) (*model.CalculationRequest, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return nil, false
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if len(req.EditInstructions.Edits) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one edit is required")
		return nil, false
	}

	return &req, true
}

func (h *Handler) logProcessed(resp *model.CalculationResponse, editCount int) {
	h.log.Info("calculation processed",
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.String("outcome", resp.CalculationMetadata.CalculationOutcome),
		zap.Int("edits", editCount),
		zap.Int64("duration_ms", resp.CalculationMetadata.CalculationDurationMs),
	)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
