package llm

import (
	"fmt"
	"os"
	"os/exec"
)

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string // Model identifier (e.g., "gpt-4o-mini")
	Name        string // Human-readable name (e.g., "GPT-4o Mini")
	Description string // Brief description
	Provider    string // Adapter name that serves it (e.g., "openai-api")
}

// openAIModels lists chat models offered through the OpenAI API.
var openAIModels = []ModelInfo{
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Original recipe book model, cheapest", Provider: "openai-api"},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Description: "Fast and cost-effective", Provider: "openai-api"},
	{ID: "gpt-4o", Name: "GPT-4o", Description: "Higher quality recipes", Provider: "openai-api"},
}

// claudeModels lists Claude models offered through the API or CLI.
var claudeModels = []ModelInfo{
	{ID: "claude-haiku-4-5-20251001", Name: "Claude Haiku 4.5", Description: "Fastest, most cost-effective", Provider: "anthropic-api"},
	{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5", Description: "Best balance of speed and capability", Provider: "anthropic-api"},
}

// codexModels lists models available via the Codex CLI.
var codexModels = []ModelInfo{
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini (Codex)", Description: "Most cost-effective", Provider: "codex-cli"},
	{ID: "gpt-4o", Name: "GPT-4o (Codex)", Description: "Fast multimodal model", Provider: "codex-cli"},
}

// AvailableModels returns models grouped by adapter based on keys and installed CLIs.
func AvailableModels() map[string][]ModelInfo {
	result := make(map[string][]ModelInfo)

	if os.Getenv("OPENAI_API_KEY") != "" {
		result["openai-api"] = openAIModels
	}

	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		result["anthropic-api"] = claudeModels
	} else if _, err := exec.LookPath("claude"); err == nil {
		result["claude-cli"] = withProvider(claudeModels, "claude-cli")
	}

	if _, err := exec.LookPath("codex"); err == nil {
		result["codex-cli"] = codexModels
	}

	return result
}

// AllModels returns a flat list of all available models, preferred providers first.
func AllModels() []ModelInfo {
	available := AvailableModels()
	var result []ModelInfo
	for _, provider := range []string{"openai-api", "anthropic-api", "claude-cli", "codex-cli"} {
		result = append(result, available[provider]...)
	}
	return result
}

func withProvider(models []ModelInfo, provider string) []ModelInfo {
	out := make([]ModelInfo, len(models))
	for i, m := range models {
		m.Provider = provider
		out[i] = m
	}
	return out
}

// NewAdapter builds the adapter for a provider name.
// "auto" picks the best available one.
func NewAdapter(provider string, config Config) (Adapter, error) {
	switch provider {
	case "", "auto":
		return DetectBestAdapter(config)
	case "openai-api":
		return NewOpenAIAPIAdapter(config)
	case "anthropic-api":
		return NewAnthropicAPIAdapter(config)
	case "claude-cli":
		adapter := NewClaudeCLIAdapter(config)
		if !adapter.IsAvailable() {
			return nil, fmt.Errorf("Claude CLI not available - install Claude Code")
		}
		return adapter, nil
	case "codex-cli":
		adapter := NewCodexCLIAdapter(config)
		if !adapter.IsAvailable() {
			return nil, fmt.Errorf("Codex CLI not available - install Codex")
		}
		return adapter, nil
	case "remote":
		return NewRemoteAdapter(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}

// DetectBestAdapter finds the best available adapter.
// Priority: OpenAI API > Anthropic API > Claude CLI > Codex CLI.
// With PreferCLI set the CLIs are tried first.
func DetectBestAdapter(config Config) (Adapter, error) {
	if config.PreferCLI {
		if adapter := detectCLI(config); adapter != nil {
			return adapter, nil
		}
	}

	if openai, err := NewOpenAIAPIAdapter(config); err == nil {
		return openai, nil
	}

	if anthropic, err := NewAnthropicAPIAdapter(config); err == nil {
		return anthropic, nil
	}

	if adapter := detectCLI(config); adapter != nil {
		return adapter, nil
	}

	return nil, fmt.Errorf("no LLM adapter available - set OPENAI_API_KEY or ANTHROPIC_API_KEY, or install Claude Code or Codex")
}

func detectCLI(config Config) Adapter {
	claude := NewClaudeCLIAdapter(config)
	if claude.IsAvailable() {
		return claude
	}
	codex := NewCodexCLIAdapter(config)
	if codex.IsAvailable() {
		return codex
	}
	return nil
}

// ModelOf returns the model an adapter talks to, or its name when it has none.
func ModelOf(adapter Adapter) string {
	if m, ok := adapter.(interface{ Model() string }); ok {
		return m.Model()
	}
	return adapter.Name()
}
