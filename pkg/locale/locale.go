// Package locale provides the golang.org/x/text backed implementation of the
// mask.Locale capability: CLDR digit grouping for number masks and day-period
// strings for time masks.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// DefaultTag is used when callers do not specify a locale.
const DefaultTag = "en-US"

// maxInt64Digits bounds the inputs handed to the x/text printer; longer digit
// strings are grouped by threes.
const maxInt64Digits = 18

// ErrInvalidTag is returned for tags that do not parse as BCP 47.
var ErrInvalidTag = errors.New("locale: invalid language tag")

// Locale formats digits and exposes calendar strings for one language tag.
// It is immutable and safe for concurrent use.
type Locale struct {
	tag      language.Tag
	printer  *message.Printer
	group    string
	decimal  string
	calendar mask.Calendar
}

var _ mask.Locale = (*Locale)(nil)

// New parses tag and prepares the printer. Digits are always Latin so masks
// can rely on 0-9.
func New(tag string) (*Locale, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		trimmed = DefaultTag
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTag, trimmed, err)
	}
	if latn, err := parsed.SetTypeForKey("nu", "latn"); err == nil {
		parsed = latn
	}

	l := &Locale{
		tag:     parsed,
		printer: message.NewPrinter(parsed),
	}
	l.group = separatorOf(l.printer.Sprint(number.Decimal(1234567)))
	l.decimal = separatorOf(l.printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1))))
	if l.decimal == "" {
		l.decimal = mask.DefaultDecimal
	}
	l.calendar = mask.Calendar{DayPeriods: dayPeriodsFor(parsed)}
	return l, nil
}

// MustNew is New for package-level initialisation; it panics on bad tags.
func MustNew(tag string) *Locale {
	l, err := New(tag)
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the en-US locale.
func Default() *Locale {
	return defaultLocale()
}

var defaultLocale = sync.OnceValue(func() *Locale {
	return MustNew(DefaultTag)
})

// Tag returns the canonical language tag.
func (l *Locale) Tag() string {
	if l == nil {
		return ""
	}
	return l.tag.String()
}

// FormatNumber groups digits following the locale's CLDR pattern. When
// f.Group is set it replaces the locale's own separator so the result lines up
// with the symbols the mask was configured with. Non-digit input yields "".
// f.MaxIntegerDigits is informational: digits are never dropped here.
func (l *Locale) FormatNumber(digits string, f mask.NumberFormat) string {
	if l == nil || digits == "" || strings.Trim(digits, "0123456789") != "" {
		return ""
	}
	group := l.group
	if f.Group != "" {
		group = f.Group
	}
	if len(digits) > maxInt64Digits {
		return mask.GroupThousands(digits, group)
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return mask.GroupThousands(digits, group)
	}
	out := l.printer.Sprint(number.Decimal(value))
	if l.group != "" && group != l.group {
		out = strings.ReplaceAll(out, l.group, group)
	}
	return out
}

// Calendar returns the localized day periods, empty for languages without
// data.
func (l *Locale) Calendar() mask.Calendar {
	if l == nil {
		return mask.Calendar{}
	}
	return l.calendar
}

// Symbols reports the locale's decimal and grouping separators in the shape
// number masks expect.
func (l *Locale) Symbols() mask.NumberSymbols {
	symbols := mask.NumberSymbols{
		Currency:  mask.DefaultCurrency,
		Decimal:   mask.DefaultDecimal,
		Negative:  mask.DefaultNegative,
		Thousands: mask.DefaultThousands,
	}
	if l == nil {
		return symbols
	}
	symbols.Decimal = l.decimal
	if l.group != "" {
		symbols.Thousands = l.group
	}
	return symbols
}

// separatorOf returns the first run of non-digit characters in formatted.
func separatorOf(formatted string) string {
	start := strings.IndexFunc(formatted, func(r rune) bool { return r < '0' || r > '9' })
	if start < 0 {
		return ""
	}
	rest := formatted[start:]
	end := strings.IndexFunc(rest, func(r rune) bool { return r >= '0' && r <= '9' })
	if end < 0 {
		return rest
	}
	return rest[:end]
}
