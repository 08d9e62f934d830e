package llm

import "context"

// Request contains chat-completion generation parameters. System carries the
// report-generation instructions, User the consultation transcript payload.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response contains the generation result.
type Response struct {
	Content    string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for text-generation backends.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Generate runs a single chat completion
	Generate(ctx context.Context, req Request, model string) (*Response, error)
}
