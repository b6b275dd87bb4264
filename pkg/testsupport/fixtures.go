package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/preset"
)

// NotationCase is one row of a mask golden file.
type NotationCase struct {
	Preset      string `json:"preset"`
	Raw         string `json:"raw"`
	Notation    string `json:"notation"`
	Placeholder string `json:"placeholder"`
}

// MustLoadStore loads the preset files under dir.
func MustLoadStore(t *testing.T, dir string) *preset.Store {
	t.Helper()

	store, err := LoadStore(dir)
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	return store
}

// LoadStore returns the presets under dir without requiring testing.T.
func LoadStore(dir string) (*preset.Store, error) {
	if dir == "" {
		return nil, errors.New("testsupport: preset directory is required")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("testsupport: stat presets: %w", err)
	}
	return preset.LoadFS(os.DirFS(dir))
}

// MustLoadNotations reads a notation golden file.
func MustLoadNotations(t *testing.T, path string) []NotationCase {
	t.Helper()

	var out []NotationCase
	if err := json.Unmarshal(MustReadGolden(t, path), &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
