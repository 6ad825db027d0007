package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/core"
	"github.com/dhabedank/recipe-gpt/internal/tui"
)

// BookCmd represents the book command
var BookCmd = &cobra.Command{
	Use:   "book",
	Short: "Open the interactive recipe book",
	Long: `Open the interactive recipe book.

Describe a dish in the prompt box and press enter to generate a recipe.
Every generated recipe is saved and listed under "Recipe Book".

To use a running recipe server instead of calling a model directly:
  recipe-gpt book --llm remote --remote-url http://127.0.0.1:8000`,
	Args: cobra.NoArgs,
	RunE: runBook,
}

func init() {
	addPipelineFlags(BookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The recipe book owns the terminal; logs go to the log file only.
	log, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	adapter, err := createLLMAdapter(cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM adapter: %w", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open recipe store: %w", err)
	}
	defer s.Close()

	return tui.Run(tui.Deps{
		Generator: core.NewGenerator(adapter, s, log),
		Store:     s,
		Logger:    log,
		Gateway:   adapter.Name(),
	})
}
