package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestFailureKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty prompt", ErrEmptyPrompt, "empty_prompt"},
		{"parse", &ParseError{Preview: "x", Length: 1}, "parse"},
		{"shape", &ShapeError{Field: "title", Message: "required"}, "shape"},
		{"gateway", &GatewayError{Adapter: "openai-api", Err: errors.New("401")}, "gateway"},
		{"store", &StoreError{Op: "insert", Err: errors.New("locked")}, "store"},
		{"wrapped shape", fmt.Errorf("generate: %w", &ShapeError{Field: "equipment"}), "shape"},
		{"other", errors.New("something else"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FailureKind(tt.err); got != tt.want {
				t.Errorf("FailureKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
