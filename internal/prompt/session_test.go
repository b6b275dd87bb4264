package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/preset"
)

type scriptedDriver struct {
	selectIdx int
	inputs    []string
	infos     []string
	abortAt   int
	asked     []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if d.abortAt > 0 && len(d.asked) == d.abortAt {
		return "", ErrAborted
	}
	if len(d.inputs) == 0 {
		return "", nil
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(next); err != nil {
			return "", err
		}
	}
	return next, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	return d.selectIdx, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestSession_NumberPreset(t *testing.T) {
	store := preset.Builtins()
	names := store.Names()
	idx := -1
	for i, name := range names {
		if name == preset.BuiltinMoney {
			idx = i
		}
	}

	driver := &scriptedDriver{selectIdx: idx, inputs: []string{"1234", "-5", ""}}
	if err := (Session{Driver: driver, Presets: store}).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{
		"mask: $#,###\nplaceholder: $_,___",
		"mask: [-]$#\nplaceholder: _$_",
	}
	if diff := cmp.Diff(want, driver.infos); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_DatePresetRunsPipe(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"4", "4_/__/____", "1", "13/__/____", ""}}
	session := Session{Driver: driver, Presets: preset.Builtins(), Preset: preset.BuiltinDate}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(driver.infos) != 4 {
		t.Fatalf("expected 4 info lines, got %#v", driver.infos)
	}
	if driver.infos[1] != "corrected: 04/__/____ [0]" {
		t.Fatalf("unexpected correction line %q", driver.infos[1])
	}
	if driver.infos[3] != "rejected" {
		t.Fatalf("unexpected rejection line %q", driver.infos[3])
	}
}

func TestSession_AbortEndsQuietly(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"12"}, abortAt: 2}
	session := Session{Driver: driver, Presets: preset.Builtins(), Preset: preset.BuiltinInteger}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("expected abort to end without error, got %v", err)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected one evaluation before abort, got %#v", driver.infos)
	}
}

func TestSession_Errors(t *testing.T) {
	ctx := context.Background()
	if err := (Session{Presets: preset.Builtins()}).Run(ctx); err == nil {
		t.Fatalf("expected error without driver")
	}
	empty, _ := preset.NewStore()
	if err := (Session{Driver: &scriptedDriver{}, Presets: empty}).Run(ctx); err == nil {
		t.Fatalf("expected error without presets")
	}
	err := (Session{Driver: &scriptedDriver{}, Presets: preset.Builtins(), Preset: "missing"}).Run(ctx)
	if !errors.Is(err, preset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := (Session{Driver: &scriptedDriver{selectIdx: -1}, Presets: preset.Builtins()}).Run(ctx); err == nil {
		t.Fatalf("expected error for invalid selection")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Fatalf("unexpected translation of unrelated error")
	}
	if indexOf([]string{"a", "b"}, "b") != 1 || indexOf(nil, "x") != -1 {
		t.Fatalf("indexOf mismatch")
	}
}
