package llm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CodexCLIAdapter uses the Codex CLI for generation.
type CodexCLIAdapter struct {
	model string
}

// NewCodexCLIAdapter creates a Codex CLI adapter.
func NewCodexCLIAdapter(config Config) *CodexCLIAdapter {
	model := config.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &CodexCLIAdapter{model: model}
}

func (a *CodexCLIAdapter) Name() string {
	return "codex-cli"
}

// IsAvailable checks if the codex CLI is installed.
func (a *CodexCLIAdapter) IsAvailable() bool {
	_, err := exec.LookPath("codex")
	return err == nil
}

// Model returns the model in use.
func (a *CodexCLIAdapter) Model() string {
	return a.model
}

func (a *CodexCLIAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// Codex has no separate system prompt, so both go in one message
	combinedPrompt := fmt.Sprintf("SYSTEM INSTRUCTIONS:\n%s\n\nDISH:\n%s", systemPrompt, userPrompt)

	cmd := exec.CommandContext(ctx, "codex",
		"--model", a.model,
		"--quiet",
	)
	cmd.Stdin = strings.NewReader(combinedPrompt)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("codex CLI failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("codex CLI failed: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}
