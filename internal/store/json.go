package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dhabedank/recipe-gpt/internal/core"
)

// defaultTable is the document table every recipe lives in.
const defaultTable = "_default"

// JSONStore keeps recipes in a single JSON document of the form
// {"_default": {"1": {...}, "2": {...}}}.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore creates a store backed by the document at path.
// The file is created on first insert.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Name() string {
	return "json"
}

func (s *JSONStore) Insert(recipe *core.Recipe) (int, error) {
	if recipe == nil {
		return 0, errors.New("nil recipe")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return 0, err
	}

	table := gjson.GetBytes(doc, defaultTable)
	if !table.IsObject() {
		// sjson would create an array for a numeric key on a missing parent.
		doc, err = sjson.SetRawBytes(doc, defaultTable, []byte("{}"))
		if err != nil {
			return 0, fmt.Errorf("failed to init table: %w", err)
		}
	}

	id := nextID(table)
	doc, err = sjson.SetBytes(doc, defaultTable+"."+strconv.Itoa(id), recipe)
	if err != nil {
		return 0, fmt.Errorf("failed to encode recipe: %w", err)
	}

	if err := s.write(doc); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *JSONStore) All() ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	records := []core.Record{}
	gjson.GetBytes(doc, defaultTable).ForEach(func(key, value gjson.Result) bool {
		id, convErr := strconv.Atoi(key.String())
		if convErr != nil {
			return true
		}
		records = append(records, core.Record{ID: id, Recipe: decode(value)})
		return true
	})

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *JSONStore) Close() error {
	return nil
}

// read returns the raw document, or an empty object when the file is missing.
func (s *JSONStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s is not a valid recipe document", s.path)
	}
	return data, nil
}

// write replaces the document via a temp file and rename.
func (s *JSONStore) write(doc []byte) error {
	formatted := pretty.PrettyOptions(doc, &pretty.Options{Indent: "    ", Width: 80})

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, formatted, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func nextID(table gjson.Result) int {
	highest := 0
	table.ForEach(func(key, _ gjson.Result) bool {
		if id, err := strconv.Atoi(key.String()); err == nil && id > highest {
			highest = id
		}
		return true
	})
	return highest + 1
}

func decode(value gjson.Result) core.Recipe {
	return core.Recipe{
		Title:        value.Get("title").String(),
		Ingredients:  stringList(value.Get("ingredients")),
		Instructions: stringList(value.Get("instructions")),
		Equipment:    stringList(value.Get("equipment")),
	}
}

func stringList(value gjson.Result) []string {
	out := []string{}
	for _, item := range value.Array() {
		out = append(out, item.String())
	}
	return out
}
