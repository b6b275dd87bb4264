package mask

// Default symbols applied to zero-valued NumberSymbols fields.
const (
	DefaultCurrency  = "$"
	DefaultDecimal   = "."
	DefaultNegative  = "-"
	DefaultThousands = ","
)

// NumberSymbols are the single-character affixes recognised in raw input.
type NumberSymbols struct {
	Currency  string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Decimal   string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Negative  string `json:"negative,omitempty" yaml:"negative,omitempty"`
	Thousands string `json:"thousands,omitempty" yaml:"thousands,omitempty"`
}

// NumberOptions configures NumberMask. Zero-valued symbols fall back to the
// defaults above.
type NumberOptions struct {
	Prefix  string        `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix  string        `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Symbols NumberSymbols `json:"symbols,omitempty" yaml:"symbols,omitempty"`

	AllowThousandsSeparator bool `json:"allowThousandsSeparator,omitempty" yaml:"allowThousandsSeparator,omitempty"`
	AllowDecimal            bool `json:"allowDecimal,omitempty" yaml:"allowDecimal,omitempty"`
	// DecimalLimit caps fraction digits; nil leaves them uncapped.
	DecimalLimit      *int `json:"decimalLimit,omitempty" yaml:"decimalLimit,omitempty"`
	RequireDecimal    bool `json:"requireDecimal,omitempty" yaml:"requireDecimal,omitempty"`
	AllowNegative     bool `json:"allowNegative,omitempty" yaml:"allowNegative,omitempty"`
	AllowLeadingZeros bool `json:"allowLeadingZeros,omitempty" yaml:"allowLeadingZeros,omitempty"`
	// IntegerLimit caps integer digits; 0 means no limit.
	IntegerLimit int `json:"integerLimit,omitempty" yaml:"integerLimit,omitempty"`

	// Locale renders grouped integers. When nil a plain three-digit grouping
	// is used.
	Locale Locale `json:"-" yaml:"-"`
}

// NumberOptionFn mutates NumberOptions during NewNumberOptions.
type NumberOptionFn func(*NumberOptions)

// DefaultNumberOptions returns the defaults: no affixes, default symbols,
// no decimals, no leading zeros, no integer limit.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		Symbols: NumberSymbols{
			Currency:  DefaultCurrency,
			Decimal:   DefaultDecimal,
			Negative:  DefaultNegative,
			Thousands: DefaultThousands,
		},
	}
}

// NewNumberOptions applies fns over DefaultNumberOptions.
func NewNumberOptions(fns ...NumberOptionFn) NumberOptions {
	opts := DefaultNumberOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts.normalized()
}

func (o NumberOptions) normalized() NumberOptions {
	if o.Symbols.Currency == "" {
		o.Symbols.Currency = DefaultCurrency
	}
	if o.Symbols.Decimal == "" {
		o.Symbols.Decimal = DefaultDecimal
	}
	if o.Symbols.Negative == "" {
		o.Symbols.Negative = DefaultNegative
	}
	if o.Symbols.Thousands == "" {
		o.Symbols.Thousands = DefaultThousands
	}
	if o.IntegerLimit < 0 {
		o.IntegerLimit = 0
	}
	if o.DecimalLimit != nil {
		limit := *o.DecimalLimit
		if limit < 0 {
			limit = 0
		}
		o.DecimalLimit = &limit
	}
	return o
}

// Limit returns a pointer to n, for DecimalLimit literals.
func Limit(n int) *int {
	return &n
}

func WithPrefix(prefix string) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.Prefix = prefix
	}
}

func WithSuffix(suffix string) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.Suffix = suffix
	}
}

// WithSymbols overrides the non-empty fields of symbols.
func WithSymbols(symbols NumberSymbols) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		if symbols.Currency != "" {
			o.Symbols.Currency = symbols.Currency
		}
		if symbols.Decimal != "" {
			o.Symbols.Decimal = symbols.Decimal
		}
		if symbols.Negative != "" {
			o.Symbols.Negative = symbols.Negative
		}
		if symbols.Thousands != "" {
			o.Symbols.Thousands = symbols.Thousands
		}
	}
}

func WithThousandsSeparator(enabled bool) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.AllowThousandsSeparator = enabled
	}
}

// WithDecimal allows a fraction of at most limit digits. A negative limit
// leaves the fraction uncapped.
func WithDecimal(limit int) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.AllowDecimal = true
		if limit < 0 {
			o.DecimalLimit = nil
			return
		}
		o.DecimalLimit = Limit(limit)
	}
}

func WithRequireDecimal(required bool) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.RequireDecimal = required
	}
}

func WithNegative(allowed bool) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.AllowNegative = allowed
	}
}

func WithLeadingZeros(allowed bool) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.AllowLeadingZeros = allowed
	}
}

func WithIntegerLimit(limit int) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.IntegerLimit = limit
	}
}

func WithNumberLocale(locale Locale) NumberOptionFn {
	return func(o *NumberOptions) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}
