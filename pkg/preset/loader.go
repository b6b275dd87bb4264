package preset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-inputmask/pkg/locale"
)

// Store holds presets keyed by name.
type Store struct {
	presets map[string]Preset
}

// NewStore returns a store holding presets. Duplicate names are an error.
func NewStore(presets ...Preset) (*Store, error) {
	store := &Store{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		if err := store.Add(p); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LoadFS walks the provided filesystem and parses JSON/YAML preset files.
// When fsys is nil or no preset files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("preset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Presets {
			raw.Name = name
			raw.Source = path
			if err := store.Add(raw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Add normalises p and stores it under its name.
func (s *Store) Add(p Preset) error {
	if s == nil {
		return fmt.Errorf("preset: add to nil store")
	}
	normalised, err := Normalize(p)
	if err != nil {
		return err
	}
	if existing, exists := s.presets[normalised.Name]; exists {
		return fmt.Errorf("preset: duplicate preset %q (files %s, %s)", normalised.Name, existing.Source, normalised.Source)
	}
	if s.presets == nil {
		s.presets = make(map[string]Preset)
	}
	s.presets[normalised.Name] = normalised.Clone()
	return nil
}

// Preset returns the preset registered under name.
func (s *Store) Preset(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	p, ok := s.presets[strings.TrimSpace(name)]
	return p.Clone(), ok
}

// Lookup is Preset with an ErrNotFound error.
func (s *Store) Lookup(name string) (Preset, error) {
	p, ok := s.Preset(name)
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Names returns the preset names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any presets.
func (s *Store) Empty() bool {
	return s == nil || len(s.presets) == 0
}

// Merge returns a new store with the presets of s overlaid by other. Presets
// in other replace same-named presets in s.
func (s *Store) Merge(other *Store) *Store {
	out := &Store{presets: make(map[string]Preset)}
	for _, src := range []*Store{s, other} {
		if src == nil {
			continue
		}
		for name, p := range src.presets {
			out.presets[name] = p.Clone()
		}
	}
	return out
}

// Normalize trims and validates a preset: the name and kind are required, the
// locale must parse, and affix strings are stripped of markup.
func Normalize(p Preset) (Preset, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Preset{}, fmt.Errorf("preset: file %s defines an empty preset name", p.Source)
	}
	kind, err := ParseKind(string(p.Kind))
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %q (file %s): %w", p.Name, p.Source, err)
	}
	p.Kind = kind

	p.Locale = strings.TrimSpace(p.Locale)
	if p.Locale != "" {
		if _, err := locale.New(p.Locale); err != nil {
			return Preset{}, fmt.Errorf("preset: %q (file %s): %w", p.Name, p.Source, err)
		}
	}

	if limit := p.Number.DecimalLimit; limit != nil && *limit < 0 {
		return Preset{}, fmt.Errorf("preset: %q (file %s): negative decimalLimit %d", p.Name, p.Source, *limit)
	}
	if p.Number.IntegerLimit < 0 {
		return Preset{}, fmt.Errorf("preset: %q (file %s): negative integerLimit %d", p.Name, p.Source, p.Number.IntegerLimit)
	}
	if p.AutoCorrect && p.Kind != KindDate {
		return Preset{}, fmt.Errorf("preset: %q (file %s): autoCorrect requires kind %q", p.Name, p.Source, KindDate)
	}

	p.Number.Prefix = sanitizeAffix(p.Number.Prefix)
	p.Number.Suffix = sanitizeAffix(p.Number.Suffix)
	p.Date.Delimiter = sanitizeAffix(p.Date.Delimiter)
	p.Date.Format = strings.TrimSpace(p.Date.Format)
	return p, nil
}

type documentFile struct {
	Presets map[string]Preset `json:"presets" yaml:"presets"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("preset: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("preset: parse %s: invalid JSON or YAML", source)
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
