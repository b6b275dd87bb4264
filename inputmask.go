// Package inputmask is the top-level entry point: it re-exports the core mask
// types and offers one-call helpers over pkg/mask, pkg/preset and pkg/openapi.
package inputmask

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-inputmask/pkg/mask"
	pkgopenapi "github.com/goliatone/go-inputmask/pkg/openapi"
	"github.com/goliatone/go-inputmask/pkg/preset"
)

// Mask is an ordered list of mask elements.
type Mask = mask.Mask

// DateResult aliases mask.DateResult for callers of DateMask and RangeMask.
type DateResult = mask.DateResult

// Preset aliases preset.Preset.
type Preset = preset.Preset

// NumberMask builds a number mask for raw using default options plus fns.
func NumberMask(raw string, fns ...mask.NumberOptionFn) Mask {
	return mask.NumberMask(raw, mask.NewNumberOptions(fns...)).Mask
}

// DateMask builds a date mask for raw in format. An empty format uses the
// short `M/d/yyyy` date.
func DateMask(raw, format string) DateResult {
	return mask.DateMask(raw, mask.DateOptions{Format: format})
}

// RangeMask builds a date range mask for raw in format using the default
// delimiter.
func RangeMask(raw, format string) DateResult {
	return mask.RangeDateMask(raw, mask.DateOptions{Format: format})
}

// CorrectDate runs the auto-correcting date pipe over a conformed `M/d/yyyy`
// value using the default placeholder.
func CorrectDate(conformed string) (mask.Correction, bool) {
	return mask.AutoCorrectedDatePipe(mask.ProcessResult{
		ConformedValue: conformed,
		Placeholder:    DateMask("", mask.PipeDateFormat).Mask.Placeholder(mask.DefaultPlaceholderChar),
	}, mask.PipeOptions{})
}

// LoadPresets returns the built-in presets overlaid with the preset files in
// fsys. A nil fsys yields only the built-ins.
func LoadPresets(fsys fs.FS) (*preset.Store, error) {
	loaded, err := preset.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return preset.Builtins().Merge(loaded), nil
}

// PresetsFromOpenAPI fetches an OpenAPI document and derives presets for its
// schema properties, resolved against the built-ins.
func PresetsFromOpenAPI(ctx context.Context, src pkgopenapi.Source, options ...pkgopenapi.LoaderOption) (map[string]Preset, error) {
	return pkgopenapi.LoadPresetsFrom(ctx, src, pkgopenapi.NewLoaderOptions(options...), pkgopenapi.Options{})
}
