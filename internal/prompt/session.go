package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/locale"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/preset"
)

// Session asks for a preset and then evaluates raw values against it until
// the user submits an empty value or interrupts.
type Session struct {
	Driver  Driver
	Presets *preset.Store
	Locales *locale.Cache
	// Preset skips the selection prompt when set.
	Preset string
}

// Run executes the session. Interrupts end it without error.
func (s Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

func (s Session) run(ctx context.Context) error {
	if s.Driver == nil {
		return errors.New("prompt: driver is required")
	}
	if s.Presets.Empty() {
		return errors.New("prompt: no presets available")
	}

	name := s.Preset
	if name == "" {
		names := s.Presets.Names()
		idx, err := s.Driver.Select(ctx, SelectConfig{
			Message:  "Preset",
			Options:  names,
			PageSize: 10,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(names) {
			return fmt.Errorf("prompt: invalid preset selection %d", idx)
		}
		name = names[idx]
	}
	p, err := s.Presets.Lookup(name)
	if err != nil {
		return err
	}

	for {
		raw, err := s.Driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s value", p.Name),
			Help:    "Text typed so far. Leave empty to finish.",
		})
		if err != nil {
			return err
		}
		if raw == "" {
			return nil
		}

		res, err := p.Generate(raw, s.Locales)
		if err != nil {
			return err
		}
		if err := s.Driver.Info(ctx, fmt.Sprintf("mask: %s\nplaceholder: %s", res.Notation, res.Placeholder)); err != nil {
			return err
		}

		if !p.AutoCorrects() {
			continue
		}
		conformed, err := s.Driver.Input(ctx, InputConfig{
			Message: "conformed value",
			Default: res.Placeholder,
			Validator: func(value string) error {
				if strings.TrimSpace(value) == "" {
					return errors.New("conformed value is required")
				}
				return nil
			},
		})
		if err != nil {
			return err
		}
		correction, ok := p.Correct(mask.ProcessResult{ConformedValue: conformed})
		msg := "rejected"
		if ok {
			msg = fmt.Sprintf("corrected: %s %v", correction.Value, correction.CharacterIndexes)
		}
		if err := s.Driver.Info(ctx, msg); err != nil {
			return err
		}
	}
}
