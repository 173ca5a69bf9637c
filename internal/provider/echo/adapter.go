// Package echo provides a completion backend that answers locally
// without any network calls. It implements the domain.Completer
// interface with deterministic output, for development without a
// credential and for tests.
package echo

import (
	"context"
	"strings"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/domain"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/observability"
)

const providerName = "echo"

// jsonSentinel marks prompts whose callers expect a JSON object back.
const jsonSentinel = "Return ONLY valid JSON"

// cannedJSON is the fixed object returned for JSON-producing prompts,
// so the structured operations stay exercisable end to end.
const cannedJSON = `{"echo": true}`

// Completer implements the domain.Completer interface with local echoes.
type Completer struct {
	name string
}

// NewCompleter creates a new echo completer. No configuration is
// required as this backend operates entirely in-memory.
func NewCompleter() *Completer {
	return &Completer{
		name: providerName,
	}
}

// Complete returns a deterministic local completion: the canned JSON
// object for prompts that demand JSON, the prompt text itself otherwise.
func (c *Completer) Complete(ctx context.Context, prompt string, _ domain.CompletionParams) (string, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("echoing prompt", observability.Int("prompt_length", len(prompt)))

	if strings.Contains(prompt, jsonSentinel) {
		return cannedJSON, nil
	}

	return prompt, nil
}

// Name returns the backend identifier.
func (c *Completer) Name() string {
	return c.name
}
