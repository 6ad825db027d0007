package core

import (
	"context"
	"errors"
	"testing"
)

type fakeGateway struct {
	response string
	err      error
	calls    int
	system   string
	user     string
}

func (f *fakeGateway) Name() string { return "fake" }

func (f *fakeGateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	f.system = systemPrompt
	f.user = userPrompt
	return f.response, f.err
}

type fakeStore struct {
	records []Record
	err     error
}

func (s *fakeStore) Name() string { return "fake" }

func (s *fakeStore) Insert(recipe *Recipe) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	id := len(s.records) + 1
	s.records = append(s.records, Record{ID: id, Recipe: *recipe})
	return id, nil
}

func (s *fakeStore) All() ([]Record, error) {
	return s.records, s.err
}

const soupJSON = `{"title":"Soup","ingredients":["500g tomato"],"instructions":["Boil the tomatoes."],"equipment":["Pot"]}`

func TestGenerateStoresValidRecipe(t *testing.T) {
	gateway := &fakeGateway{response: soupJSON}
	store := &fakeStore{records: []Record{{ID: 1, Recipe: Recipe{Title: "Earlier"}}}}
	gen := NewGenerator(gateway, store, nil)

	recipe, err := gen.Generate(context.Background(), "tomato soup")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if recipe.Title != "Soup" {
		t.Errorf("Title = %q, want Soup", recipe.Title)
	}
	if gateway.calls != 1 {
		t.Errorf("gateway calls = %d, want 1", gateway.calls)
	}
	if gateway.user != "tomato soup" || gateway.system != SystemPrompt {
		t.Error("gateway should receive the built prompt")
	}

	all, _ := store.All()
	if len(all) != 2 {
		t.Fatalf("stored %d records, want 2", len(all))
	}
	if last := all[len(all)-1]; last.Recipe.Title != "Soup" || last.ID != 2 {
		t.Errorf("last record = %+v, want the new recipe with id 2", last)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name      string
		prompt    string
		gateway   *fakeGateway
		storeErr  error
		wantKind  string
		wantCalls int
	}{
		{
			name:      "gateway error",
			prompt:    "soup",
			gateway:   &fakeGateway{err: errors.New("connection refused")},
			wantKind:  "gateway",
			wantCalls: 1,
		},
		{
			name:      "malformed json",
			prompt:    "soup",
			gateway:   &fakeGateway{response: "Sure! Here is your recipe."},
			wantKind:  "parse",
			wantCalls: 1,
		},
		{
			name:      "empty list",
			prompt:    "soup",
			gateway:   &fakeGateway{response: `{"title":"Soup","ingredients":[],"instructions":["Boil."],"equipment":["Pot"]}`},
			wantKind:  "shape",
			wantCalls: 1,
		},
		{
			name:      "store error",
			prompt:    "soup",
			gateway:   &fakeGateway{response: soupJSON},
			storeErr:  errors.New("disk full"),
			wantKind:  "store",
			wantCalls: 1,
		},
		{
			name:      "blank prompt",
			prompt:    "   ",
			gateway:   &fakeGateway{response: soupJSON},
			wantKind:  "empty_prompt",
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{err: tt.storeErr}
			gen := NewGenerator(tt.gateway, store, nil)

			recipe, err := gen.Generate(context.Background(), tt.prompt)
			if err == nil {
				t.Fatal("Generate() expected error")
			}
			if recipe != nil {
				t.Error("Generate() should not return a recipe on failure")
			}
			if got := FailureKind(err); got != tt.wantKind {
				t.Errorf("FailureKind() = %q, want %q (err = %v)", got, tt.wantKind, err)
			}
			if tt.gateway.calls != tt.wantCalls {
				t.Errorf("gateway calls = %d, want %d", tt.gateway.calls, tt.wantCalls)
			}
			if len(store.records) != 0 {
				t.Error("nothing should be stored on failure")
			}
		})
	}
}

func TestGenerateWithoutStore(t *testing.T) {
	gen := NewGenerator(&fakeGateway{response: soupJSON}, nil, nil)

	recipe, err := gen.Generate(context.Background(), "soup")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(recipe.Ingredients) != 1 {
		t.Errorf("Ingredients = %v", recipe.Ingredients)
	}
}

func TestGatewayErrorUnwraps(t *testing.T) {
	cause := context.DeadlineExceeded
	gen := NewGenerator(&fakeGateway{err: cause}, nil, nil)

	_, err := gen.Generate(context.Background(), "soup")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(%v, DeadlineExceeded) = false", err)
	}
}
