package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/observability"
)

// ToolkitService runs the four utility operations. Each call is a
// single-shot pipeline: validate, build the prompt, invoke the
// completer once, map the completion into the typed response. The
// service holds no per-request state.
type ToolkitService struct {
	completer Completer
	params    CompletionParams
}

// NewToolkitService creates a new toolkit service (DI constructor).
func NewToolkitService(completer Completer, params CompletionParams) *ToolkitService {
	return &ToolkitService{
		completer: completer,
		params:    params,
	}
}

// Summarize produces a summary of the request text plus character-count
// metadata. Any completion text is acceptable output.
func (s *ToolkitService) Summarize(ctx context.Context, req *SummarizeRequest) (*SummarizeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildSummarizePrompt(req)

	summary, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &SummarizeResponse{
		Summary:        summary,
		OriginalLength: utf8.RuneCountInString(req.Text),
		SummaryLength:  utf8.RuneCountInString(summary),
	}, nil
}

// ExtractJSON pulls structured data out of the request text. A
// completion that fails to parse as a JSON object is reported inline
// with success=false, never as an error from this method.
func (s *ToolkitService) ExtractJSON(ctx context.Context, req *ExtractJSONRequest) (*ExtractJSONResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildExtractJSONPrompt(req)

	completion, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	data, parseErr := parseObject(completion)
	if parseErr != nil {
		observability.FromContext(ctx).Warn("model output is not valid JSON",
			observability.Error(parseErr))

		msg := fmt.Sprintf("failed to parse JSON: %v", parseErr)
		return &ExtractJSONResponse{
			Data:    nil,
			Success: false,
			Error:   &msg,
		}, nil
	}

	return &ExtractJSONResponse{
		Data:    data,
		Success: true,
		Error:   nil,
	}, nil
}

// Answer answers the question against the supplied context document.
func (s *ToolkitService) Answer(ctx context.Context, req *AnswerRequest) (*AnswerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildAnswerPrompt(req)

	answer, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// No real confidence signal exists; the label is static apart from
	// flagging an all-whitespace answer.
	confidence := ConfidenceHigh
	if strings.TrimSpace(answer) == "" {
		confidence = ConfidenceLow
	}

	return &AnswerResponse{
		Answer:     answer,
		Confidence: confidence,
	}, nil
}

// GenerateData produces a synthetic example of the requested data type.
// Parse failures are reported inline with empty data; schema_used is
// populated either way.
func (s *ToolkitService) GenerateData(ctx context.Context, req *GenerateDataRequest) (*GenerateDataResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildGenerateDataPrompt(req)

	completion, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	data, parseErr := parseObject(completion)
	if parseErr != nil {
		observability.FromContext(ctx).Warn("model output is not valid JSON",
			observability.Error(parseErr))

		return &GenerateDataResponse{
			Data:       map[string]any{},
			SchemaUsed: req.DataType,
			Error:      fmt.Sprintf("failed to parse JSON: %v", parseErr),
		}, nil
	}

	return &GenerateDataResponse{
		Data:       data,
		SchemaUsed: req.DataType,
	}, nil
}

// complete performs the single remote call shared by all operations.
func (s *ToolkitService) complete(ctx context.Context, prompt string) (string, error) {
	completion, err := s.completer.Complete(ctx, prompt, s.params)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	return completion, nil
}

// parseObject strictly decodes a completion as a single JSON object.
// An empty object is a valid result.
func parseObject(completion string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(completion), &data); err != nil {
		return nil, err
	}
	if data == nil {
		// Unmarshal accepts a literal null; the contract wants an object.
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	return data, nil
}
