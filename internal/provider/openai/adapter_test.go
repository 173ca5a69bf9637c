package openai //nolint:testpackage // Need access to unexported classifyError

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openaisdk "github.com/openai/openai-go"
	"github.com/stretchr/testify/require"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/domain"
)

func TestNewCompleter_Success(t *testing.T) {
	config := Config{
		APIKey:      "test-api-key",
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		Timeout:     60,
	}

	completer, err := NewCompleter(config)

	require.NoError(t, err)
	require.NotNil(t, completer)
	require.Equal(t, "openai", completer.Name())
}

func TestNewCompleter_MissingAPIKey(t *testing.T) {
	completer, err := NewCompleter(Config{})

	require.Error(t, err)
	require.Nil(t, completer)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind error
	}{
		{
			name:     "unauthorized",
			err:      &openaisdk.Error{StatusCode: http.StatusUnauthorized, Message: "Incorrect API key provided"},
			wantKind: domain.ErrRemoteAuth,
		},
		{
			name:     "forbidden",
			err:      &openaisdk.Error{StatusCode: http.StatusForbidden, Message: "Not allowed"},
			wantKind: domain.ErrRemoteAuth,
		},
		{
			name:     "rate limited",
			err:      &openaisdk.Error{StatusCode: http.StatusTooManyRequests, Message: "Rate limit reached"},
			wantKind: domain.ErrRemoteRateLimited,
		},
		{
			name:     "server error",
			err:      &openaisdk.Error{StatusCode: http.StatusInternalServerError, Message: "The server had an error"},
			wantKind: domain.ErrRemoteUnavailable,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			wantKind: domain.ErrRemoteTimeout,
		},
		{
			name:     "plain network failure",
			err:      errors.New("connection refused"),
			wantKind: domain.ErrRemoteUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyError(tt.err)

			require.ErrorIs(t, classified, tt.wantKind)
		})
	}
}

func TestClassifyError_DoesNotLeakCredential(t *testing.T) {
	// The classified message carries only the API status and message,
	// never the outgoing request.
	apiErr := &openaisdk.Error{StatusCode: http.StatusUnauthorized, Message: "Incorrect API key provided"}

	classified := classifyError(apiErr)

	require.NotContains(t, classified.Error(), "Authorization")
	require.Contains(t, classified.Error(), "Incorrect API key provided")
}
