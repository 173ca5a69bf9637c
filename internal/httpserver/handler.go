package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/domain"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	toolkit *domain.ToolkitService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(toolkit *domain.ToolkitService) *Handler {
	return &Handler{
		toolkit: toolkit,
	}
}

// errorResponse is the JSON body written for failed requests.
type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// HandleSummarize processes summarization requests.
func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithOperation(r.Context(), domain.OperationSummarize)

	var req domain.SummarizeRequest
	if !decodeRequest(ctx, w, r, &req) {
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("summarize request received",
		observability.Int("text_length", len(req.Text)),
		observability.Int("max_length", req.MaxLength),
	)

	resp, err := h.toolkit.Summarize(ctx, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logger.Info("summarize succeeded",
		observability.Int("summary_length", resp.SummaryLength))

	writeJSON(ctx, w, resp)
}

// HandleExtractJSON processes structured-extraction requests.
func (h *Handler) HandleExtractJSON(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithOperation(r.Context(), domain.OperationExtractJSON)

	var req domain.ExtractJSONRequest
	if !decodeRequest(ctx, w, r, &req) {
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("extract-json request received",
		observability.Int("text_length", len(req.Text)))

	resp, err := h.toolkit.ExtractJSON(ctx, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logger.Info("extract-json completed", observability.Bool("success", resp.Success))

	writeJSON(ctx, w, resp)
}

// HandleAnswer processes question-answering requests.
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithOperation(r.Context(), domain.OperationAnswer)

	var req domain.AnswerRequest
	if !decodeRequest(ctx, w, r, &req) {
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("answer request received",
		observability.Int("context_length", len(req.Context)))

	resp, err := h.toolkit.Answer(ctx, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logger.Info("answer succeeded",
		observability.String("confidence", resp.Confidence))

	writeJSON(ctx, w, resp)
}

// HandleGenerateData processes synthetic-data generation requests.
func (h *Handler) HandleGenerateData(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithOperation(r.Context(), domain.OperationGenerateData)

	var req domain.GenerateDataRequest
	if !decodeRequest(ctx, w, r, &req) {
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("generate-data request received",
		observability.String("data_type", req.DataType))

	resp, err := h.toolkit.GenerateData(ctx, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logger.Info("generate-data completed",
		observability.Bool("parsed", resp.Error == ""))

	writeJSON(ctx, w, resp)
}

// HandleHealth handles health check requests. Liveness only, no
// dependency checks.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// decodeRequest enforces POST and decodes the JSON body. It writes the
// failure response itself and reports whether the caller may proceed.
func decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		observability.FromContext(ctx).Info("request body rejected",
			observability.Error(err))
		writeStatusJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("invalid request body: %v", err),
		})
		return false
	}

	return true
}

// writeError maps a pipeline error to its HTTP status. Validation
// failures are client errors; remote failures are gateway errors.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	var valErr *domain.ValidationError
	switch {
	case errors.As(err, &valErr):
		logger.Info("request rejected", observability.Error(valErr))
		writeStatusJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
			Error:  valErr.Error(),
			Fields: valErr.Fields,
		})

	case errors.Is(err, domain.ErrRemoteTimeout):
		logger.Error("remote call timed out", observability.Error(err))
		writeStatusJSON(ctx, w, http.StatusGatewayTimeout, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRemoteAuth),
		errors.Is(err, domain.ErrRemoteRateLimited),
		errors.Is(err, domain.ErrRemoteUnavailable),
		errors.Is(err, domain.ErrEmptyCompletion):
		logger.Error("remote call failed", observability.Error(err))
		writeStatusJSON(ctx, w, http.StatusBadGateway, errorResponse{Error: err.Error()})

	default:
		logger.Error("request failed", observability.Error(err))
		writeStatusJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// writeJSON writes a 200 response with a JSON body.
func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	writeStatusJSON(ctx, w, http.StatusOK, body)
}

func writeStatusJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.FromContext(ctx).Error("failed to encode response",
			observability.Error(err))
	}
}
