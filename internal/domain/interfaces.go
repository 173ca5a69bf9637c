package domain

import "context"

// Completer sends a single prompt to a language-model backend and
// returns the text completion. Implementations classify remote
// failures into the sentinel errors in errors.go so callers can map
// each kind to a transport-level response.
type Completer interface {
	// Complete performs one completion call. No retries.
	Complete(ctx context.Context, prompt string, params CompletionParams) (string, error)

	// Name returns the backend identifier.
	Name() string
}
