// Package openapi derives input-mask presets from the component schemas of an
// OpenAPI 3 document.
package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-inputmask/pkg/preset"
)

// ExtensionKey names the schema extension carrying explicit mask options.
// Its value is either a preset name or an object with an optional "preset"
// member plus preset fields that override the resolved preset.
const ExtensionKey = "x-inputmask"

// Options configures LoadPresets.
type Options struct {
	// Registry resolves fields to preset names. Defaults to preset.NewRegistry.
	Registry *preset.Registry
	// Presets are the base presets referenced by name. Defaults to
	// preset.Builtins.
	Presets *preset.Store
	// AllowExternalRefs lets the loader follow references outside the
	// document.
	AllowExternalRefs bool
}

// LoadPresets loads an OpenAPI document and returns one preset per component
// schema property that resolves to a mask, keyed "<Schema>.<property>".
// Nested object properties use dotted paths.
func LoadPresets(ctx context.Context, data []byte, opts Options) (map[string]preset.Preset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.AllowExternalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	w := walker{
		registry: opts.Registry,
		presets:  opts.Presets,
		out:      make(map[string]preset.Preset),
		visiting: make(map[*openapi3.Schema]bool),
	}
	if w.registry == nil {
		w.registry = preset.NewRegistry()
	}
	if w.presets == nil {
		w.presets = preset.Builtins()
	}

	if doc.Components == nil {
		return w.out, nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if err := w.walkProperties(name, ref.Value); err != nil {
			return nil, err
		}
	}
	return w.out, nil
}

type walker struct {
	registry *preset.Registry
	presets  *preset.Store
	out      map[string]preset.Preset
	visiting map[*openapi3.Schema]bool
}

func (w *walker) walkProperties(path string, schema *openapi3.Schema) error {
	if w.visiting[schema] {
		return nil
	}
	w.visiting[schema] = true
	defer delete(w.visiting, schema)

	props := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		props = append(props, name)
	}
	sort.Strings(props)

	for _, name := range props {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		key := path + "." + name
		prop := ref.Value
		if schemaType(prop.Type) == "object" {
			if err := w.walkProperties(key, prop); err != nil {
				return err
			}
			continue
		}

		p, ok, err := w.presetFor(key, name, prop)
		if err != nil {
			return err
		}
		if ok {
			w.out[key] = p
		}
	}
	return nil
}

func (w *walker) presetFor(key, name string, schema *openapi3.Schema) (preset.Preset, bool, error) {
	ext, err := parseExtension(schema.Extensions[ExtensionKey])
	if err != nil {
		return preset.Preset{}, false, fmt.Errorf("openapi: %s: %w", key, err)
	}

	field := preset.Field{
		Name:   name,
		Type:   schemaType(schema.Type),
		Format: schema.Format,
	}
	if ext.name != "" {
		field.Hints = map[string]string{preset.HintKey: ext.name}
	}

	presetName, ok := w.registry.Resolve(field)
	if !ok && len(ext.overrides) == 0 {
		return preset.Preset{}, false, nil
	}

	var p preset.Preset
	if ok {
		p, err = w.presets.Lookup(presetName)
		if err != nil {
			return preset.Preset{}, false, fmt.Errorf("openapi: %s: %w", key, err)
		}
	}
	if p.Kind == preset.KindNumber {
		applyNumericConstraints(&p, field.Type, schema)
	}
	if len(ext.overrides) > 0 {
		if err := json.Unmarshal(ext.overrides, &p); err != nil {
			return preset.Preset{}, false, fmt.Errorf("openapi: %s: decode %s: %w", key, ExtensionKey, err)
		}
	}

	p.Name = key
	p.Source = "openapi"
	normalised, err := preset.Normalize(p)
	if err != nil {
		return preset.Preset{}, false, fmt.Errorf("openapi: %s: %w", key, err)
	}
	return normalised, true, nil
}

// applyNumericConstraints narrows a number preset with the schema's maximum,
// minimum and multipleOf keywords.
func applyNumericConstraints(p *preset.Preset, fieldType string, schema *openapi3.Schema) {
	if schema.Max != nil && p.Number.IntegerLimit == 0 {
		if digits := integerDigits(*schema.Max); digits > 0 {
			p.Number.IntegerLimit = digits
		}
	}
	if schema.Min != nil && *schema.Min >= 0 {
		p.Number.AllowNegative = false
	}
	switch {
	case fieldType == "integer":
		p.Number.AllowDecimal = false
		p.Number.DecimalLimit = nil
	case schema.MultipleOf != nil && *schema.MultipleOf > 0:
		places := fractionDigits(*schema.MultipleOf)
		p.Number.AllowDecimal = places > 0
		if places > 0 {
			p.Number.DecimalLimit = &places
		} else {
			p.Number.DecimalLimit = nil
		}
	}
}

func integerDigits(v float64) int {
	v = math.Abs(math.Trunc(v))
	if v < 1 || v > math.MaxInt64 {
		return 0
	}
	return len(strconv.FormatInt(int64(v), 10))
}

func fractionDigits(v float64) int {
	formatted := strconv.FormatFloat(v, 'f', -1, 64)
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		return len(formatted) - idx - 1
	}
	return 0
}

type extension struct {
	name      string
	overrides json.RawMessage
}

func parseExtension(value any) (extension, error) {
	switch v := value.(type) {
	case nil:
		return extension{}, nil
	case string:
		return extension{name: strings.TrimSpace(v)}, nil
	case map[string]any:
		ext := extension{}
		rest := make(map[string]any, len(v))
		for key, val := range v {
			if key == "preset" {
				name, ok := val.(string)
				if !ok {
					return extension{}, fmt.Errorf("%s.preset must be a string", ExtensionKey)
				}
				ext.name = strings.TrimSpace(name)
				continue
			}
			rest[key] = val
		}
		if len(rest) > 0 {
			raw, err := json.Marshal(rest)
			if err != nil {
				return extension{}, fmt.Errorf("encode %s: %w", ExtensionKey, err)
			}
			ext.overrides = raw
		}
		return ext, nil
	default:
		return extension{}, fmt.Errorf("%s must be a string or object, got %T", ExtensionKey, value)
	}
}

// schemaType returns the first non-null type of the schema.
func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}
