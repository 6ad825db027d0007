package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/tui"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list [n]",
	Short: "List saved recipes",
	Long: `List the recipe book in the order recipes were saved.

With an argument, print recipe number n in full.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	addPipelineFlags(ListCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open recipe store: %w", err)
	}
	defer s.Close()

	records, err := s.All()
	if err != nil {
		return fmt.Errorf("failed to read recipe book: %w", err)
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid recipe number: %s", args[0])
		}
		for _, rec := range records {
			if rec.ID == id {
				fmt.Fprint(out, tui.RenderRecipe(&rec.Recipe))
				return nil
			}
		}
		return fmt.Errorf("recipe %d not found in %s", id, cfg.StorePath)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, tui.HelpStyle.Render("The recipe book is empty. Try: recipe-gpt generate \"tomato soup\""))
		return nil
	}

	fmt.Fprintln(out, tui.TitleStyle.Render("Recipe Book"))
	for _, rec := range records {
		fmt.Fprintf(out, "  %3d  %s\n", rec.ID, rec.Recipe.Title)
	}
	return nil
}
