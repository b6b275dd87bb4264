// Package preset binds named mask configurations to the generators in
// pkg/mask. Presets are loaded from JSON or YAML documents, resolved for
// described fields through a Registry, and evaluated against raw input.
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/locale"
	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Kind selects the generator a preset runs.
type Kind string

const (
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindRange  Kind = "range"
)

var (
	// ErrUnknownKind is returned for presets whose kind is not one of the
	// generator kinds.
	ErrUnknownKind = errors.New("preset: unknown kind")
	// ErrNotFound is returned when a named preset does not exist.
	ErrNotFound = errors.New("preset: not found")
)

// ParseKind normalises raw into a Kind.
func ParseKind(raw string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case KindNumber, KindDate, KindRange:
		return kind, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKind, raw)
	}
}

// Preset is a named mask configuration.
type Preset struct {
	Name string `json:"-" yaml:"-"`
	Kind Kind   `json:"kind" yaml:"kind"`
	// Locale is a BCP 47 tag. Empty keeps the generators' built-in behaviour.
	Locale string             `json:"locale,omitempty" yaml:"locale,omitempty"`
	Number mask.NumberOptions `json:"number,omitempty" yaml:"number,omitempty"`
	Date   mask.DateOptions   `json:"date,omitempty" yaml:"date,omitempty"`
	// AutoCorrect enables the date pipe for date presets.
	AutoCorrect bool `json:"autoCorrect,omitempty" yaml:"autoCorrect,omitempty"`

	Source string `json:"-" yaml:"-"`
}

// Clone returns a copy of p that shares no pointers with it.
func (p Preset) Clone() Preset {
	if l := p.Number.DecimalLimit; l != nil {
		p.Number.DecimalLimit = mask.Limit(*l)
	}
	return p
}

// Result is the outcome of evaluating a preset against raw input.
type Result struct {
	Preset         string    `json:"preset"`
	Kind           Kind      `json:"kind"`
	Mask           mask.Mask `json:"mask"`
	Notation       string    `json:"notation"`
	Placeholder    string    `json:"placeholder"`
	Literals       []string  `json:"literals,omitempty"`
	LiteralPattern string    `json:"literalPattern,omitempty"`
}

// Generate runs the preset's generator over raw. Locales are resolved through
// cache, which may be nil.
func (p Preset) Generate(raw string, cache *locale.Cache) (Result, error) {
	loc, err := p.resolveLocale(cache)
	if err != nil {
		return Result{}, err
	}

	out := Result{Preset: p.Name, Kind: p.Kind}
	switch p.Kind {
	case KindNumber:
		opts := p.Number
		if loc != nil {
			opts.Locale = loc
			symbols := loc.Symbols()
			if opts.Symbols.Decimal == "" {
				opts.Symbols.Decimal = symbols.Decimal
			}
			if opts.Symbols.Thousands == "" {
				opts.Symbols.Thousands = symbols.Thousands
			}
		}
		out.Mask = mask.NumberMask(raw, opts).Mask
	case KindDate, KindRange:
		opts := p.Date
		if loc != nil {
			opts.Locale = loc
		}
		var res mask.DateResult
		if p.Kind == KindRange {
			res = mask.RangeDateMask(raw, opts)
		} else {
			res = mask.DateMask(raw, opts)
		}
		out.Mask = res.Mask
		out.Literals = res.Literals
		out.LiteralPattern = res.LiteralPattern()
	default:
		return Result{}, fmt.Errorf("%w %q (preset %q)", ErrUnknownKind, p.Kind, p.Name)
	}

	out.Notation = out.Mask.Notation()
	out.Placeholder = out.Mask.Placeholder(mask.DefaultPlaceholderChar)
	return out, nil
}

// AutoCorrects reports whether Correct runs the date pipe.
func (p Preset) AutoCorrects() bool {
	return p.AutoCorrect && p.Kind == KindDate
}

// Correct runs the auto-correcting date pipe over a conformed value. Presets
// that do not auto-correct accept the value unchanged. A missing placeholder
// is derived from the preset's empty mask.
func (p Preset) Correct(res mask.ProcessResult) (mask.Correction, bool) {
	if !p.AutoCorrects() {
		return mask.Correction{Value: res.ConformedValue, CharacterIndexes: []int{}}, true
	}
	if res.PlaceholderChar == 0 {
		res.PlaceholderChar = mask.DefaultPlaceholderChar
	}
	if res.Placeholder == "" {
		res.Placeholder = mask.DateMask("", p.Date).Mask.Placeholder(res.PlaceholderChar)
	}
	return mask.AutoCorrectedDatePipe(res, mask.PipeOptions{DateFormat: p.Date.Format})
}

func (p Preset) resolveLocale(cache *locale.Cache) (*locale.Locale, error) {
	if strings.TrimSpace(p.Locale) == "" {
		return nil, nil
	}
	loc, err := cache.Get(p.Locale)
	if err != nil {
		return nil, fmt.Errorf("preset: %q: %w", p.Name, err)
	}
	return loc, nil
}
