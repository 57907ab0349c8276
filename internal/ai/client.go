package ai

import "context"

// Client is the single network boundary of the generation pipeline. It is
// an interface so handlers can be tested against a stub model.
type Client interface {
	// Generate sends one prompt to the model and returns the raw
	// completion text. A single attempt, no auto-retry.
	Generate(ctx context.Context, prompt string) (string, error)
}
