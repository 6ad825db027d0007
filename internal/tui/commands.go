package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadRecords(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Store == nil {
			return recordsLoadedMsg{err: errors.New("store is nil")}
		}
		records, err := deps.Store.All()
		return recordsLoadedMsg{records: records, err: err}
	}
}

func cmdGenerate(deps Deps, prompt string) tea.Cmd {
	return func() tea.Msg {
		if deps.Generator == nil {
			return generatedMsg{prompt: prompt, err: errors.New("generator is nil")}
		}
		recipe, err := deps.Generator.Generate(context.Background(), prompt)
		return generatedMsg{prompt: prompt, recipe: recipe, err: err}
	}
}
