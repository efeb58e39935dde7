package llm

import (
	"context"
)

// Provider abstracts the chat-completion dependency: prompt in, text out.
// The rest of the system never sees provider-specific request or response
// shapes, only the returned text or a typed error.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request carries one single-turn completion. Generation parameters travel
// per request so a config reload takes effect without rebuilding the client.
type Request struct {
	// System sets the assistant's role, e.g. "You are a helpful AI tutor."
	System string

	// User is the templated lesson or practice prompt.
	User string

	Model       string
	MaxTokens   int
	Temperature float32
}

// Config holds the credentials for a live provider. BaseURL overrides the
// default endpoint for OpenAI-compatible gateways.
type Config struct {
	APIKey  string
	BaseURL string
}
