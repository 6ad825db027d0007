package version

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsFirstRun(t *testing.T) {
	home := t.TempDir()

	if !isFirstRunIn(home) {
		t.Error("empty home should be a first run")
	}

	markInitializedIn(home)
	if isFirstRunIn(home) {
		t.Error("marker should end the first run")
	}
}

func TestIsFirstRunWithConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".recipe-gpt.yaml"), []byte("llm: auto\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if isFirstRunIn(home) {
		t.Error("existing config should not be a first run")
	}
}

func TestPrintFirstRunNotice(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var buf bytes.Buffer
	PrintFirstRunNotice(&buf)

	if !strings.Contains(buf.String(), "recipe-gpt book") {
		t.Errorf("notice should mention the recipe book:\n%s", buf.String())
	}
	if IsFirstRun() {
		t.Error("notice should mark the installation initialized")
	}
}
