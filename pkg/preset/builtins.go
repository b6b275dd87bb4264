package preset

import "github.com/goliatone/go-inputmask/pkg/mask"

// Built-in preset names resolved by the registry.
const (
	BuiltinDate      = "date"
	BuiltinDateTime  = "date-time"
	BuiltinTime      = "time"
	BuiltinDateRange = "date-range"
	BuiltinMoney     = "money"
	BuiltinDecimal   = "decimal"
	BuiltinInteger   = "integer"
)

// Builtins returns a store with the built-in presets. Callers may overlay
// their own presets with Merge.
func Builtins() *Store {
	presets := []Preset{
		{
			Name:        BuiltinDate,
			Kind:        KindDate,
			Date:        mask.DateOptions{Format: mask.PipeDateFormat},
			AutoCorrect: true,
		},
		{
			Name: BuiltinDateTime,
			Kind: KindDate,
			Date: mask.DateOptions{Format: mask.DefaultFormat(mask.DateSymbols{}, true)},
		},
		{
			Name: BuiltinTime,
			Kind: KindDate,
			Date: mask.DateOptions{Format: "h:mm a"},
		},
		{
			Name: BuiltinDateRange,
			Kind: KindRange,
			Date: mask.DateOptions{Format: mask.PipeDateFormat, Delimiter: mask.DefaultRangeDelimiter},
		},
		{
			Name: BuiltinMoney,
			Kind: KindNumber,
			Number: mask.NewNumberOptions(
				mask.WithPrefix(mask.DefaultCurrency),
				mask.WithThousandsSeparator(true),
				mask.WithDecimal(2),
				mask.WithNegative(true),
			),
		},
		{
			Name: BuiltinDecimal,
			Kind: KindNumber,
			Number: mask.NewNumberOptions(
				mask.WithThousandsSeparator(true),
				mask.WithDecimal(-1),
				mask.WithNegative(true),
			),
		},
		{
			Name: BuiltinInteger,
			Kind: KindNumber,
			Number: mask.NewNumberOptions(
				mask.WithThousandsSeparator(true),
				mask.WithNegative(true),
			),
		},
	}

	store, err := NewStore(presets...)
	if err != nil {
		panic(err)
	}
	for name, p := range store.presets {
		p.Source = "builtin"
		store.presets[name] = p
	}
	return store
}
