package inputmask

import (
	"log/slog"
	"net/http"

	"github.com/goliatone/go-inputmask/pkg/locale"
	"github.com/goliatone/go-inputmask/pkg/preset"
)

const (
	defaultRoutePath      = "/api/masks"
	defaultMaxValueLength = 256
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath        string
	PresetParam      string
	ValueParam       string
	ConformedParam   string
	PlaceholderParam string
	// MaxValueLength bounds the raw and conformed query values in bytes.
	MaxValueLength int
	Guard          GuardFunc

	// Presets defaults to preset.Builtins when nil.
	Presets *preset.Store
	Locales *locale.Cache
	// Logger receives request diagnostics; nil keeps the handler silent.
	Logger *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:        defaultRoutePath,
		PresetParam:      "preset",
		ValueParam:       "value",
		ConformedParam:   "conformed",
		PlaceholderParam: "placeholder",
		MaxValueLength:   defaultMaxValueLength,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.PresetParam == "" {
		opts.PresetParam = "preset"
	}
	if opts.ValueParam == "" {
		opts.ValueParam = "value"
	}
	if opts.ConformedParam == "" {
		opts.ConformedParam = "conformed"
	}
	if opts.PlaceholderParam == "" {
		opts.PlaceholderParam = "placeholder"
	}
	if opts.MaxValueLength <= 0 {
		opts.MaxValueLength = defaultMaxValueLength
	}
	if opts.Presets == nil {
		opts.Presets = preset.Builtins()
	}
	if opts.Locales == nil {
		opts.Locales = locale.NewCache()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithPresetParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PresetParam = name
	}
}

func WithValueParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValueParam = name
	}
}

func WithConformedParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ConformedParam = name
	}
}

func WithPlaceholderParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PlaceholderParam = name
	}
}

func WithMaxValueLength(n int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxValueLength = n
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithPresets replaces the served presets. Combine with preset.Builtins via
// Store.Merge to keep the built-ins.
func WithPresets(store *preset.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Presets = store
	}
}

func WithLocales(cache *locale.Cache) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locales = cache
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
