// Package openai provides a completion backend using the official
// OpenAI SDK. It implements the domain.Completer interface and
// classifies SDK failures into the domain's remote-error kinds.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/domain"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/observability"
)

// Completer implements the domain.Completer interface for OpenAI.
type Completer struct {
	client openai.Client
	name   string
}

// NewCompleter creates a new OpenAI completer.
func NewCompleter(config Config) (*Completer, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		// One attempt per request; the SDK default of 2 retries is
		// disabled because failures must surface immediately.
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	return &Completer{
		client: openai.NewClient(opts...),
		name:   "openai",
	}, nil
}

// Complete sends a single-prompt chat completion and returns the text.
func (c *Completer) Complete(ctx context.Context, prompt string, params domain.CompletionParams) (string, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API")

	sdkParams := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(params.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	if params.Temperature > 0 {
		sdkParams.Temperature = openai.Float(params.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, sdkParams)
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return "", classifyError(err)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the backend identifier.
func (c *Completer) Name() string {
	return c.name
}

// classifyError maps an SDK error onto the domain's remote-error
// kinds. Only the API status and message are carried forward; the
// request itself (and the credential it holds) is never echoed.
func classifyError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", domain.ErrRemoteAuth, apiErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", domain.ErrRemoteRateLimited, apiErr.Message)
		default:
			return fmt.Errorf("%w: status %d: %s", domain.ErrRemoteUnavailable, apiErr.StatusCode, apiErr.Message)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrRemoteTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrRemoteTimeout, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
}
