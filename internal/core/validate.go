package core

import (
	"github.com/tidwall/gjson"
)

// maxPreview bounds the response excerpt kept in a ParseError.
const maxPreview = 200

// requiredKeys are looked up by exact name, in output order.
var requiredKeys = []string{"title", "ingredients", "instructions", "equipment"}

// listKeys must each hold a non-empty array.
var listKeys = []string{"ingredients", "equipment", "instructions"}

// ValidateRecipe parses raw model output into a Recipe.
//
// The text must be a JSON object holding title, ingredients, instructions and
// equipment, with the three list fields non-empty. Nothing else is checked:
// line content, prefixes and title text are prompt conventions only.
// Malformed JSON yields *ParseError, anything else unacceptable *ShapeError.
func ValidateRecipe(raw string) (*Recipe, error) {
	if !gjson.Valid(raw) {
		return nil, &ParseError{Preview: preview(raw), Length: len(raw)}
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, &ShapeError{Message: "response must be a JSON object"}
	}

	// Duplicate keys resolve to their last occurrence.
	fields := make(map[string]gjson.Result, len(requiredKeys))
	doc.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})

	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return nil, &ShapeError{Field: key, Message: "required"}
		}
	}

	for _, key := range listKeys {
		value := fields[key]
		if !value.IsArray() {
			return nil, &ShapeError{Field: key, Message: "must be a list"}
		}
		if len(value.Array()) == 0 {
			return nil, &ShapeError{Field: key, Message: "at least one entry required"}
		}
	}

	return &Recipe{
		Title:        fields["title"].String(),
		Ingredients:  lines(fields["ingredients"]),
		Instructions: lines(fields["instructions"]),
		Equipment:    lines(fields["equipment"]),
	}, nil
}

// lines flattens a JSON array into text lines.
// Strings keep their value; any other element keeps its raw JSON text.
func lines(value gjson.Result) []string {
	items := value.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.String {
			out = append(out, item.String())
			continue
		}
		out = append(out, item.Raw)
	}
	return out
}

func preview(raw string) string {
	if len(raw) <= maxPreview {
		return raw
	}
	return raw[:maxPreview] + "..."
}
