package tui

import "github.com/dhabedank/recipe-gpt/internal/core"

type recordsLoadedMsg struct {
	records []core.Record
	err     error
}

type generatedMsg struct {
	prompt string
	recipe *core.Recipe
	err    error
}
