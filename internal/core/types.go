package core

import "context"

// Recipe is a generated recipe accepted by ValidateRecipe.
// Field order matches the JSON the model is asked to produce.
type Recipe struct {
	Title        string   `json:"title"`        // Short description of the dish
	Ingredients  []string `json:"ingredients"`  // Quantity + name, optionally "Optional: " prefixed
	Instructions []string `json:"instructions"` // One complete sentence per step
	Equipment    []string `json:"equipment"`    // Required (or "Optional: ") equipment
}

// Record is a Recipe as persisted by a store, with its store-local id.
type Record struct {
	ID     int    `json:"id"`
	Recipe Recipe `json:"recipe"`
}

// Gateway is the interface for model providers used by the generator.
// This matches llm.Adapter but is defined here to avoid import cycles.
type Gateway interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Complete sends the two prompts and returns the raw response text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RecipeStore is the interface for recipe persistence used by the generator.
// This matches store.Adapter but is defined here to avoid import cycles.
type RecipeStore interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Insert appends a recipe and returns its store-local id.
	Insert(recipe *Recipe) (int, error)

	// All returns every stored recipe in insertion order.
	All() ([]Record, error)
}
