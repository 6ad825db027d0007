package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/config"
	"github.com/dhabedank/recipe-gpt/internal/llm"
	"github.com/dhabedank/recipe-gpt/internal/tui"
)

var resetConfig bool

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long: `Pick the model recipes are generated with.

Models are offered for every provider that is usable here: OPENAI_API_KEY
and ANTHROPIC_API_KEY (from the environment or .env), and the claude or
codex CLIs when installed.

Configuration is saved to ~/.recipe-gpt.yaml`,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
}

func runSetup(cmd *cobra.Command, args []string) error {
	configPath := config.HomePath()

	// Handle reset
	if resetConfig {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		fmt.Printf("  Removed: %s\n", configPath)
		return nil
	}

	// Loads .env so keys kept there count as available.
	if _, err := config.Load(""); err != nil {
		return err
	}

	models := llm.AllModels()
	if len(models) == 0 {
		return fmt.Errorf("no LLM providers detected. Set OPENAI_API_KEY or ANTHROPIC_API_KEY, or install the claude or codex CLI")
	}

	p := tea.NewProgram(newSetupModel(models))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled || finalModel.selected == nil {
		fmt.Println("Setup cancelled")
		return nil
	}

	chosen := finalModel.selected
	if err := config.SaveModel(configPath, chosen.Provider, chosen.ID); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration saved to " + configPath)
	fmt.Println()
	fmt.Printf("  Provider: %s\n", tui.ModelStyle.Render(chosen.Provider))
	fmt.Printf("  Model:    %s\n", tui.ModelStyle.Render(chosen.ID))

	return nil
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	list      list.Model
	selected  *llm.ModelInfo
	cancelled bool
}

type modelItem struct {
	info llm.ModelInfo
}

func (m modelItem) Title() string       { return m.info.Name }
func (m modelItem) Description() string { return m.info.Description + " · " + m.info.Provider }
func (m modelItem) FilterValue() string { return m.info.Name }

func newSetupModel(models []llm.ModelInfo) setupModel {
	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = modelItem{info: m}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#9b59b6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	l := list.New(items, delegate, 60, 14)
	l.Title = "Select Recipe Model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = tui.TitleStyle

	return setupModel{list: l}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(modelItem); ok {
				info := item.info
				m.selected = &info
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled || m.selected != nil {
		return ""
	}
	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • q: quit")
	return "\n" + m.list.View() + help
}
