package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/core"
	"github.com/dhabedank/recipe-gpt/internal/llm"
	"github.com/dhabedank/recipe-gpt/internal/tui"
)

var (
	jsonOutput bool
	dryRun     bool
)

// ErrGenerationFailed is the only failure a generate run reports to the user.
// The failure kind and detail go to the log.
var ErrGenerationFailed = errors.New(core.GenerationFailedMessage)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate one recipe from a dish description",
	Long: `Generate a recipe for a dish description and save it to the recipe book.

The model is asked for a title, ingredients, instructions and equipment.
A response that is not valid recipe JSON is rejected without retrying.

Example:
  recipe-gpt generate "a quick weeknight chicken curry"
  recipe-gpt generate --json --dry-run "vegan banana bread"`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runGenerate,
	SilenceUsage: true,
}

func init() {
	addPipelineFlags(GenerateCmd)
	GenerateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the recipe as JSON")
	GenerateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate without saving to the recipe book")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, closeLog, err := newLogger(cfg, !cmd.Flags().Changed("log-level"))
	if err != nil {
		return err
	}
	defer closeLog()

	adapter, err := createLLMAdapter(cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM adapter: %w", err)
	}
	metered := &meteredGateway{Gateway: adapter}

	var recipeStore core.RecipeStore
	if !dryRun {
		s, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open recipe store: %w", err)
		}
		defer s.Close()
		recipeStore = s
	}

	out := cmd.OutOrStdout()
	status := cmd.ErrOrStderr()
	model := llm.ModelOf(adapter)
	prompt := core.BuildPrompt(description)
	fmt.Fprintln(status, tui.RenderGenerationStart(adapter.Name(), model, len(prompt.System)+len(prompt.User)))

	gen := core.NewGenerator(metered, recipeStore, log)
	start := time.Now()
	recipe, err := gen.Generate(context.Background(), description)
	if err != nil {
		fmt.Fprintln(status, tui.RenderGenerationFailed(adapter.Name(), time.Since(start)))
		return ErrGenerationFailed
	}

	fmt.Fprintln(status, tui.RenderGenerationComplete(tui.GenerationStats{
		Gateway:     adapter.Name(),
		Model:       model,
		InputChars:  metered.inputChars(),
		OutputChars: metered.outputChars(),
		Duration:    time.Since(start),
	}))

	if jsonOutput {
		data, err := json.MarshalIndent(recipe, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out)
		fmt.Fprint(out, tui.RenderRecipe(recipe))
	}

	if dryRun {
		fmt.Fprintln(status, tui.HelpStyle.Render("[dry-run] recipe not saved"))
	} else {
		fmt.Fprintln(status, tui.SuccessStyle.Render("✓")+" Saved to "+cfg.StorePath)
	}
	return nil
}

// meteredGateway records prompt and response sizes for the cost line.
type meteredGateway struct {
	core.Gateway

	mu      sync.Mutex
	in, out int
}

func (g *meteredGateway) Complete(ctx context.Context, system, user string) (string, error) {
	raw, err := g.Gateway.Complete(ctx, system, user)
	g.mu.Lock()
	g.in += len(system) + len(user)
	g.out += len(raw)
	g.mu.Unlock()
	return raw, err
}

func (g *meteredGateway) inputChars() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.in
}

func (g *meteredGateway) outputChars() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.out
}
