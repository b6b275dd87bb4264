package preset_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/locale"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/preset"
)

const presetsJSON = `{
  "presets": {
    "price": {
      "kind": "number",
      "number": {
        "prefix": "<b>R$</b>",
        "allowThousandsSeparator": true,
        "allowDecimal": true,
        "decimalLimit": 2
      }
    },
    "birthday": {
      "kind": "date",
      "date": {"format": "M/d/yyyy"},
      "autoCorrect": true
    }
  }
}`

const presetsYAML = `presets:
  amount-de:
    kind: number
    locale: de
    number:
      allowThousandsSeparator: true
      allowDecimal: true
      decimalLimit: 2
  stay:
    kind: range
    date:
      format: dd/MM/yyyy
      delimiter: " <i>to</i> "
`

func TestLoadFS(t *testing.T) {
	t.Parallel()

	store, err := preset.LoadFS(fstest.MapFS{
		"presets/money.json":  {Data: []byte(presetsJSON)},
		"presets/locale.yaml": {Data: []byte(presetsYAML)},
		"presets/README.md":   {Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	if diff := cmp.Diff([]string{"amount-de", "birthday", "price", "stay"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	price, ok := store.Preset("price")
	if !ok {
		t.Fatalf("expected price preset")
	}
	if price.Number.Prefix != "R$" {
		t.Fatalf("expected sanitized prefix, got %q", price.Number.Prefix)
	}
	if price.Source != "presets/money.json" {
		t.Fatalf("unexpected source %q", price.Source)
	}

	stay, _ := store.Preset("stay")
	if stay.Date.Delimiter != " to " {
		t.Fatalf("expected sanitized delimiter, got %q", stay.Date.Delimiter)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		files fstest.MapFS
		is    error
	}{
		{name: "empty file", files: fstest.MapFS{"a.json": {Data: []byte("  ")}}},
		{name: "invalid document", files: fstest.MapFS{"a.yaml": {Data: []byte("presets: [")}}},
		{name: "unknown kind", files: fstest.MapFS{"a.json": {Data: []byte(`{"presets":{"x":{"kind":"color"}}}`)}}, is: preset.ErrUnknownKind},
		{name: "bad locale", files: fstest.MapFS{"a.json": {Data: []byte(`{"presets":{"x":{"kind":"number","locale":"not a tag!"}}}`)}}, is: locale.ErrInvalidTag},
		{name: "autocorrect on number", files: fstest.MapFS{"a.json": {Data: []byte(`{"presets":{"x":{"kind":"number","autoCorrect":true}}}`)}}},
		{name: "negative decimal limit", files: fstest.MapFS{"a.json": {Data: []byte(`{"presets":{"x":{"kind":"number","number":{"decimalLimit":-1}}}}`)}}},
		{
			name: "duplicate across files",
			files: fstest.MapFS{
				"a.json": {Data: []byte(`{"presets":{"x":{"kind":"number"}}}`)},
				"b.yml":  {Data: []byte("presets:\n  x:\n    kind: date\n")},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := preset.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Fatalf("expected %v, got %v", tc.is, err)
			}
		})
	}
}

func TestLoadFS_Nil(t *testing.T) {
	t.Parallel()

	store, err := preset.LoadFS(nil)
	if err != nil {
		t.Fatalf("LoadFS(nil): %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	store, err := preset.LoadFS(fstest.MapFS{
		"money.json":  {Data: []byte(presetsJSON)},
		"locale.yaml": {Data: []byte(presetsYAML)},
	})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	all := preset.Builtins().Merge(store)
	cache := locale.NewCache()

	cases := []struct {
		preset      string
		raw         string
		notation    string
		placeholder string
	}{
		{preset: "price", raw: "1234.5", notation: "R$#,###|.|#", placeholder: "R$_,___._"},
		{preset: "amount-de", raw: "1234,5", notation: "#.###|,|#", placeholder: "_.___,_"},
		{preset: "birthday", raw: "", notation: "##|/|##|/|####", placeholder: "__/__/____"},
		{preset: preset.BuiltinMoney, raw: "-12", notation: "[-]$##", placeholder: "_$__"},
		{preset: preset.BuiltinInteger, raw: "12345", notation: "##,###", placeholder: "__,___"},
		{preset: "stay", raw: "01/02/2020 to 1", notation: "##|/|##|/|#### to ##|/|##|/|####", placeholder: "__/__/____ to __/__/____"},
	}

	for _, tc := range cases {
		p, err := all.Lookup(tc.preset)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.preset, err)
		}
		res, err := p.Generate(tc.raw, cache)
		if err != nil {
			t.Fatalf("Generate(%q): %v", tc.preset, err)
		}
		if res.Notation != tc.notation {
			t.Fatalf("%s: notation = %q, want %q", tc.preset, res.Notation, tc.notation)
		}
		if res.Placeholder != tc.placeholder {
			t.Fatalf("%s: placeholder = %q, want %q", tc.preset, res.Placeholder, tc.placeholder)
		}
		if res.Notation != res.Mask.Notation() || res.Preset != tc.preset {
			t.Fatalf("%s: inconsistent result %#v", tc.preset, res)
		}
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := preset.Preset{Name: "x", Kind: "color"}.Generate("1", nil)
	if !errors.Is(err, preset.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()

	if _, err := preset.Builtins().Lookup("missing"); !errors.Is(err, preset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCorrect(t *testing.T) {
	t.Parallel()

	date, _ := preset.Builtins().Preset(preset.BuiltinDate)
	got, ok := date.Correct(mask.ProcessResult{ConformedValue: "4_/__/____"})
	if !ok {
		t.Fatalf("expected correction")
	}
	want := mask.Correction{Value: "04/__/____", CharacterIndexes: []int{0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("correction mismatch (-want +got):\n%s", diff)
	}

	if _, ok := date.Correct(mask.ProcessResult{ConformedValue: "13/__/____"}); ok {
		t.Fatalf("expected rejection for month 13")
	}

	money, _ := preset.Builtins().Preset(preset.BuiltinMoney)
	passthrough, ok := money.Correct(mask.ProcessResult{ConformedValue: "$1,2"})
	if !ok || passthrough.Value != "$1,2" {
		t.Fatalf("non-date presets should pass values through, got %#v", passthrough)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	custom, err := preset.NewStore(preset.Preset{Name: preset.BuiltinDate, Kind: preset.KindDate, Date: mask.DateOptions{Format: "yyyy-MM-dd"}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	merged := preset.Builtins().Merge(custom)
	got, _ := merged.Preset(preset.BuiltinDate)
	if got.Date.Format != "yyyy-MM-dd" || got.AutoCorrect {
		t.Fatalf("expected override to win, got %#v", got)
	}
	if len(merged.Names()) != len(preset.Builtins().Names()) {
		t.Fatalf("unexpected merged size %d", len(merged.Names()))
	}
}

func TestStore_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	store := preset.Builtins()
	first, err := store.Lookup(preset.BuiltinMoney)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	*first.Number.DecimalLimit = 7

	again, _ := store.Preset(preset.BuiltinMoney)
	if *again.Number.DecimalLimit != 2 {
		t.Fatalf("store preset mutated through lookup copy: %d", *again.Number.DecimalLimit)
	}
	merged, _ := store.Merge(nil).Preset(preset.BuiltinMoney)
	if merged.Number.DecimalLimit == again.Number.DecimalLimit {
		t.Fatalf("merged store shares decimal limit pointer")
	}
}
