package version

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhabedank/recipe-gpt/internal/config"
	"github.com/dhabedank/recipe-gpt/internal/tui"
)

// markerDir holds the first-run marker under the home directory.
const markerDir = ".recipe-gpt"

// IsFirstRun returns true if this appears to be the first run.
// Checks for existence of config file or first-run marker.
func IsFirstRun() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	return isFirstRunIn(home)
}

func isFirstRunIn(home string) bool {
	if _, err := os.Stat(filepath.Join(home, config.FileName)); err == nil {
		return false // Config exists, not first run
	}
	if _, err := os.Stat(filepath.Join(home, markerDir, ".initialized")); err == nil {
		return false // Already initialized
	}
	return true
}

// MarkInitialized creates the first-run marker.
func MarkInitialized() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	markInitializedIn(home)
}

func markInitializedIn(home string) {
	dir := filepath.Join(home, markerDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(dir, ".initialized"), []byte{}, 0644)
}

// PrintFirstRunNotice prints a welcome message for first-time users
// and marks the installation as initialized.
func PrintFirstRunNotice(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s Welcome to RecipeGPT!\n", tui.TitleStyle.Render("*"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Quick start:")
	fmt.Fprintf(w, "    1. Put %s in your environment or a .env file\n", tui.ModelStyle.Render("OPENAI_API_KEY"))
	fmt.Fprintf(w, "    2. Run %s to pick a model (optional)\n", tui.ModelStyle.Render("recipe-gpt setup"))
	fmt.Fprintf(w, "    3. Open your recipe book: %s\n", tui.ModelStyle.Render("recipe-gpt book"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", tui.HelpStyle.Render("Run 'recipe-gpt --help' for all options"))
	fmt.Fprintln(w)

	MarkInitialized()
}
