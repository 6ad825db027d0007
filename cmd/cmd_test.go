package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/internal/core"
	"github.com/dhabedank/recipe-gpt/internal/llm"
	"github.com/dhabedank/recipe-gpt/internal/store"
)

func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func newFlagCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addPipelineFlags(c)
	return c
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, ".recipe-gpt.yaml")
	if err := os.WriteFile(path, []byte("llm: anthropic-api\nmodel: claude-haiku-4-5-20251001\nstore: sqlite\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := newFlagCmd()
	if err := c.ParseFlags([]string{"--llm", "openai-api"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.LLM != "openai-api" {
		t.Errorf("LLM = %s, want flag value openai-api", cfg.LLM)
	}
	if cfg.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("Model = %s, want file value", cfg.Model)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("Store = %s, want file value sqlite (flag default must not win)", cfg.Store)
	}
}

func TestLoadConfigRejectsInvalidFlag(t *testing.T) {
	chdir(t)
	c := newFlagCmd()
	if err := c.ParseFlags([]string{"--store", "mongo"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(c); err == nil {
		t.Error("expected error for unknown store")
	}
}

func TestCreateLLMAdapterRemote(t *testing.T) {
	chdir(t)
	c := newFlagCmd()
	if err := c.ParseFlags([]string{"--llm", "remote", "--remote-url", "http://127.0.0.1:8000"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		t.Fatal(err)
	}
	adapter, err := createLLMAdapter(cfg)
	if err != nil {
		t.Fatalf("createLLMAdapter() error = %v", err)
	}
	if adapter.Name() != "remote" {
		t.Errorf("Name() = %s, want remote", adapter.Name())
	}
}

type echoGateway struct{ reply string }

func (g echoGateway) Name() string { return "echo" }
func (g echoGateway) Complete(ctx context.Context, system, user string) (string, error) {
	if g.reply == "" {
		return "", errors.New("offline")
	}
	return g.reply, nil
}

func TestMeteredGatewayCounts(t *testing.T) {
	g := &meteredGateway{Gateway: echoGateway{reply: "abcd"}}
	if _, err := g.Complete(context.Background(), "sys", "user"); err != nil {
		t.Fatal(err)
	}
	if g.inputChars() != 7 || g.outputChars() != 4 {
		t.Errorf("counts = %d/%d, want 7/4", g.inputChars(), g.outputChars())
	}
	if g.Name() != "echo" {
		t.Errorf("Name() = %s, want echo", g.Name())
	}
}

func TestListCommand(t *testing.T) {
	dir := chdir(t)
	s := store.NewJSONStore(filepath.Join(dir, "recipes.json"))
	for _, title := range []string{"Tomato Soup", "Pancakes"} {
		if _, err := s.Insert(&core.Recipe{
			Title:        title,
			Ingredients:  []string{"1 egg"},
			Instructions: []string{"Mix."},
			Equipment:    []string{"Bowl"},
		}); err != nil {
			t.Fatal(err)
		}
	}

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		ListCmd.SetOut(&out)
		ListCmd.SetErr(&bytes.Buffer{})
		err := runList(ListCmd, args)
		return out.String(), err
	}

	out, err := run()
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if strings.Index(out, "Tomato Soup") > strings.Index(out, "Pancakes") {
		t.Errorf("recipes should be listed in insertion order:\n%s", out)
	}

	out, err = run("2")
	if err != nil {
		t.Fatalf("list 2 error = %v", err)
	}
	if !strings.Contains(out, "Pancakes") || !strings.Contains(out, "1. Mix.") {
		t.Errorf("list 2 should print the full recipe:\n%s", out)
	}

	if _, err := run("9"); err == nil {
		t.Error("expected error for a missing recipe")
	}
	if _, err := run("x"); err == nil {
		t.Error("expected error for a non-numeric argument")
	}
}

func runGenerateAgainst(t *testing.T, body string, extra ...string) (stdout, stderr string, err error) {
	t.Helper()
	chdir(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	GenerateCmd.SetOut(&out)
	GenerateCmd.SetErr(&errOut)
	args := append([]string{"--llm", "remote", "--remote-url", srv.URL, "--dry-run"}, extra...)
	GenerateCmd.SetArgs(append(args, "tomato soup"))
	t.Cleanup(func() {
		GenerateCmd.SetArgs(nil)
		jsonOutput = false
		dryRun = false
	})

	err = GenerateCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateCommandJSON(t *testing.T) {
	stdout, _, err := runGenerateAgainst(t,
		`{"title":"Tomato Soup","ingredients":["4 tomatoes"],"instructions":["Simmer."],"equipment":["Pot"]}`,
		"--json")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(stdout, `"title": "Tomato Soup"`) {
		t.Errorf("stdout should hold the recipe JSON:\n%s", stdout)
	}
	if _, statErr := os.Stat("recipes.json"); !os.IsNotExist(statErr) {
		t.Errorf("dry run should not create a recipe book, stat error = %v", statErr)
	}
}

func TestGenerateCommandFailureIsGeneric(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty list", `{"title":"Soup","ingredients":[],"instructions":["Boil."],"equipment":["Pot"]}`},
		{"not json", `Sure! Here is your recipe.`},
		{"missing key", `{"title":"Soup","ingredients":["Water"],"instructions":["Boil."]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runGenerateAgainst(t, tt.body)
			if !errors.Is(err, ErrGenerationFailed) {
				t.Fatalf("error = %v, want ErrGenerationFailed", err)
			}
			if err.Error() != core.GenerationFailedMessage {
				t.Errorf("error text = %q, want %q", err.Error(), core.GenerationFailedMessage)
			}
			if stdout != "" {
				t.Errorf("stdout should be empty on failure, got %q", stdout)
			}
			if !strings.Contains(stderr, core.GenerationFailedMessage) {
				t.Errorf("stderr should carry the generic message:\n%s", stderr)
			}
			for _, leak := range []string{"parse", "shape", "ingredients", "equipment", "required"} {
				if strings.Contains(strings.ToLower(stderr), leak) {
					t.Errorf("stderr leaks %q:\n%s", leak, stderr)
				}
			}
		})
	}
}

func TestSetupModelSelect(t *testing.T) {
	models := []llm.ModelInfo{
		{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: "openai-api"},
		{ID: "gpt-4o", Name: "GPT-4o", Provider: "openai-api"},
	}
	m := newSetupModel(models)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(setupModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	final := next.(setupModel)

	if cmd == nil {
		t.Error("enter should quit the wizard")
	}
	if final.selected == nil || final.selected.ID != "gpt-4o" {
		t.Errorf("selected = %v, want gpt-4o", final.selected)
	}
}

func TestSetupModelCancel(t *testing.T) {
	m := newSetupModel([]llm.ModelInfo{{ID: "gpt-4o", Name: "GPT-4o", Provider: "openai-api"}})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(setupModel).cancelled {
		t.Error("q should cancel the wizard")
	}
}
