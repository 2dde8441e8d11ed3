package llm

import (
	"context"
)

// Client is a minimal completion interface. Callers must always
// carry a non-LLM fallback; a nil Client is a valid configuration.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
