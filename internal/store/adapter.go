package store

import (
	"fmt"

	"github.com/dhabedank/recipe-gpt/internal/core"
)

// Adapter is the interface all recipe stores must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Insert appends a recipe and returns its store-local id.
	Insert(recipe *core.Recipe) (int, error)

	// All returns every stored recipe in insertion order.
	All() ([]core.Record, error)

	// Close releases any handle the store holds.
	Close() error
}

// Ensure Adapter satisfies core.RecipeStore.
var _ core.RecipeStore = Adapter(nil)

// Config configures store behavior.
type Config struct {
	// Kind selects the backend: "json" or "sqlite".
	Kind string

	// Path is the document file or database file.
	Path string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Kind: "json",
		Path: "recipes.json",
	}
}

// New opens the store selected by config.Kind.
func New(config Config) (Adapter, error) {
	switch config.Kind {
	case "", "json":
		return NewJSONStore(config.Path), nil
	case "sqlite":
		return NewSQLiteStore(config.Path)
	default:
		return nil, fmt.Errorf("unknown store: %s (use json or sqlite)", config.Kind)
	}
}
