package llm

import (
	"context"

	"github.com/dhabedank/recipe-gpt/internal/core"
)

// Adapter is the interface all model gateways must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// IsAvailable checks if this adapter can be used (CLI installed, API key set, etc.)
	IsAvailable() bool

	// Complete sends the system and user prompts and returns the raw response text.
	// No repair or validation happens here.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var _ core.Gateway = Adapter(nil)

// Config holds configuration for model adapters.
type Config struct {
	// PreferCLI prefers CLI tools (claude, codex) over APIs when available.
	PreferCLI bool

	// Model specifies which model to use (optional, adapter chooses default).
	Model string

	// APIKey for direct API access (optional, read from the environment otherwise).
	APIKey string

	// BaseURL overrides the API endpoint (OpenAI-compatible servers).
	BaseURL string

	// RemoteURL is the base URL of a running recipe server for the remote adapter.
	RemoteURL string

	// Temperature for sampling. Zero means the adapter default.
	Temperature float32

	// MaxTokens limits response length.
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PreferCLI:   false, // Hosted APIs first, as the recipe book always did
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}
