package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-inputmask/internal/prompt"
	"github.com/goliatone/go-inputmask/pkg/locale"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/openapi"
	"github.com/goliatone/go-inputmask/pkg/preset"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, nil); err != nil {
		log.Fatalf("inputmask: %v", err)
	}
}

type config struct {
	presetsDir  string
	presetName  string
	kind        string
	format      string
	localeTag   string
	prefix      string
	suffix      string
	decimals    int
	negative    bool
	thousands   bool
	value       string
	conformed   string
	openapiSrc  string
	asJSON      bool
	interactive bool
	list        bool
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("inputmask-cli", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.presetsDir, "presets", "", "directory of JSON/YAML preset files")
	fs.StringVar(&cfg.presetName, "preset", "", "preset name to evaluate")
	fs.StringVar(&cfg.kind, "kind", "", "ad-hoc preset kind: number, date or range")
	fs.StringVar(&cfg.format, "format", "", "date format for date and range kinds (default M/d/yyyy)")
	fs.StringVar(&cfg.localeTag, "locale", "", "BCP 47 locale tag")
	fs.StringVar(&cfg.prefix, "prefix", "", "number prefix")
	fs.StringVar(&cfg.suffix, "suffix", "", "number suffix")
	fs.IntVar(&cfg.decimals, "decimals", 0, "allowed fraction digits for numbers; negative means uncapped")
	fs.BoolVar(&cfg.negative, "negative", false, "allow negative numbers")
	fs.BoolVar(&cfg.thousands, "thousands", true, "group number digits")
	fs.StringVar(&cfg.value, "value", "", "raw value typed so far")
	fs.StringVar(&cfg.conformed, "conformed", "", "conformed value to run through the date pipe")
	fs.StringVar(&cfg.openapiSrc, "openapi", "", "OpenAPI document path or URL to derive presets from")
	fs.BoolVar(&cfg.asJSON, "json", false, "print the result as JSON")
	fs.BoolVar(&cfg.interactive, "interactive", false, "prompt for values until interrupted")
	fs.BoolVar(&cfg.list, "list", false, "list available presets")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// run executes the CLI. driver is used for interactive mode; nil selects the
// terminal driver.
func run(ctx context.Context, args []string, stdout io.Writer, driver prompt.Driver) error {
	cfg, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	store, err := loadStore(ctx, cfg)
	if err != nil {
		return err
	}
	cache := locale.NewCache()

	if cfg.list {
		for _, name := range store.Names() {
			if _, err := fmt.Fprintln(stdout, name); err != nil {
				return err
			}
		}
		return nil
	}

	name := cfg.presetName
	if cfg.kind != "" {
		adhoc, err := adHocPreset(cfg)
		if err != nil {
			return err
		}
		if err := store.Add(adhoc); err != nil {
			return err
		}
		name = adhoc.Name
	}

	if cfg.interactive {
		if driver == nil {
			driver = prompt.NewSurveyDriver(stdout)
		}
		return prompt.Session{Driver: driver, Presets: store, Locales: cache, Preset: name}.Run(ctx)
	}

	if name == "" {
		return errors.New("one of -preset, -kind, -list or -interactive is required")
	}
	p, err := store.Lookup(name)
	if err != nil {
		return err
	}
	res, err := p.Generate(cfg.value, cache)
	if err != nil {
		return err
	}

	var pipe *mask.Correction
	rejected := false
	if cfg.conformed != "" {
		if !p.AutoCorrects() {
			return fmt.Errorf("preset %q does not auto-correct", p.Name)
		}
		correction, ok := p.Correct(mask.ProcessResult{ConformedValue: cfg.conformed})
		if ok {
			pipe = &correction
		} else {
			rejected = true
		}
	}

	if cfg.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			preset.Result
			Pipe     *mask.Correction `json:"pipe,omitempty"`
			Rejected bool             `json:"rejected,omitempty"`
		}{Result: res, Pipe: pipe, Rejected: rejected})
	}

	lines := []string{
		"mask: " + res.Notation,
		"placeholder: " + res.Placeholder,
	}
	if res.LiteralPattern != "" {
		lines = append(lines, "literals: "+res.LiteralPattern)
	}
	switch {
	case pipe != nil:
		lines = append(lines, fmt.Sprintf("corrected: %s %v", pipe.Value, pipe.CharacterIndexes))
	case rejected:
		lines = append(lines, "corrected: rejected")
	}
	_, err = fmt.Fprintln(stdout, strings.Join(lines, "\n"))
	return err
}

func loadStore(ctx context.Context, cfg config) (*preset.Store, error) {
	store := preset.Builtins()
	if cfg.presetsDir != "" {
		loaded, err := preset.LoadFS(os.DirFS(cfg.presetsDir))
		if err != nil {
			return nil, err
		}
		store = store.Merge(loaded)
	}
	if cfg.openapiSrc != "" {
		src, err := openapi.ParseSource(cfg.openapiSrc)
		if err != nil {
			return nil, err
		}
		derived, err := openapi.LoadPresetsFrom(ctx, src, openapi.NewLoaderOptions(openapi.WithHTTPFallback(0)), openapi.Options{Presets: store})
		if err != nil {
			return nil, err
		}
		values := make([]preset.Preset, 0, len(derived))
		for _, p := range derived {
			values = append(values, p)
		}
		fromDoc, err := preset.NewStore(values...)
		if err != nil {
			return nil, err
		}
		store = store.Merge(fromDoc)
	}
	return store, nil
}

const adHocName = "cli"

func adHocPreset(cfg config) (preset.Preset, error) {
	kind, err := preset.ParseKind(cfg.kind)
	if err != nil {
		return preset.Preset{}, err
	}
	p := preset.Preset{Name: adHocName, Kind: kind, Locale: cfg.localeTag, Source: "flags"}
	switch kind {
	case preset.KindNumber:
		fns := []mask.NumberOptionFn{
			mask.WithPrefix(cfg.prefix),
			mask.WithSuffix(cfg.suffix),
			mask.WithThousandsSeparator(cfg.thousands),
			mask.WithNegative(cfg.negative),
		}
		if cfg.decimals != 0 {
			fns = append(fns, mask.WithDecimal(cfg.decimals))
		}
		p.Number = mask.NewNumberOptions(fns...)
		if cfg.localeTag != "" {
			// let the locale pick the separators
			p.Number.Symbols.Decimal = ""
			p.Number.Symbols.Thousands = ""
		}
	case preset.KindDate, preset.KindRange:
		p.Date = mask.DateOptions{Format: cfg.format}
		if p.Date.Format == "" {
			p.Date.Format = mask.PipeDateFormat
		}
		p.AutoCorrect = kind == preset.KindDate && p.Date.Format == mask.PipeDateFormat
	}
	return p, nil
}
