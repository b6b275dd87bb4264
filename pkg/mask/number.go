package mask

import (
	"strings"
	"unicode/utf8"
)

// NumberResult is the output of NumberMask.
type NumberResult struct {
	Mask Mask `json:"mask"`
}

// NumberMask builds the mask for a currency, decimal or integer value from the
// text typed so far. It never fails: characters it cannot place are dropped
// and the result always holds at least one matcher.
func NumberMask(raw string, opts NumberOptions) NumberResult {
	return NumberResult{Mask: numberMask(raw, opts.normalized())}
}

func numberMask(raw string, o NumberOptions) Mask {
	prefix := Literals(o.Prefix)
	suffix := Literals(o.Suffix)
	dec := o.Symbols.Decimal

	if raw == "" || (o.Prefix != "" && raw == firstRune(o.Prefix)) {
		return Concat(prefix, Mask{Digit}, suffix)
	}
	if raw == dec && o.AllowDecimal {
		return Concat(prefix, Mask{Literal('0'), CaretTrap}, Literals(dec), Mask{CaretTrap, Digit}, suffix)
	}

	negative := o.AllowNegative && strings.HasPrefix(raw, o.Symbols.Negative)
	if negative {
		raw = raw[len(o.Symbols.Negative):]
	}
	if o.Suffix != "" && strings.HasSuffix(raw, o.Suffix) {
		raw = strings.TrimSuffix(raw, o.Suffix)
	}

	decimalAt := strings.LastIndex(raw, dec)
	hasDecimal := decimalAt >= 0
	splitDecimal := hasDecimal && (o.AllowDecimal || o.RequireDecimal)

	var integer, fractionText string
	switch {
	case splitDecimal:
		start := 0
		if o.Prefix != "" && strings.HasPrefix(raw, o.Prefix) {
			start = min(len(o.Prefix), decimalAt)
		}
		integer = raw[start:decimalAt]
		fractionText = raw[decimalAt+len(dec):]
	case o.Prefix != "":
		integer = strings.TrimPrefix(raw, o.Prefix)
	default:
		integer = raw
	}

	if o.IntegerLimit > 0 {
		limit := o.IntegerLimit
		if negative {
			limit++
		}
		if th := o.Symbols.Thousands; th != "" {
			limit += strings.Count(integer, th) * utf8.RuneCountInString(th)
		}
		integer = truncateRunes(integer, limit)
	}

	integer = digitsOnly(integer)
	if !o.AllowLeadingZeros {
		integer = collapseLeadingZeros(integer)
	}
	if o.AllowThousandsSeparator && integer != "" {
		integer = groupInteger(integer, o)
	}

	m := fromFormatted(integer)

	if (hasDecimal && o.AllowDecimal) || o.RequireDecimal {
		// no leading trap when the decimal symbol was typed twice in a row
		if !(hasDecimal && strings.HasSuffix(raw[:decimalAt], dec)) {
			m = append(m, CaretTrap)
		}
		m = append(m, Literals(dec)...)
		m = append(m, CaretTrap)

		fraction := Digits(len(digitsOnly(fractionText)))
		if o.DecimalLimit != nil && len(fraction) > *o.DecimalLimit {
			fraction = fraction[:*o.DecimalLimit]
		}
		m = append(m, fraction...)

		endsAtDecimal := hasDecimal && decimalAt+len(dec) == len(raw)
		if endsAtDecimal && (o.DecimalLimit == nil || *o.DecimalLimit > 0) {
			m = append(m, Digit)
		}
	}

	if len(m) == 0 {
		m = Mask{Digit}
	}
	m = Concat(prefix, m)

	if negative {
		if len(m) == len(prefix) {
			m = append(m, Digit)
		}
		m = Concat(Mask{Class(o.Symbols.Negative, false)}, m)
	}

	return Concat(m, suffix)
}

// groupInteger renders digits with thousands separators. Leading zeros are
// set aside before formatting and restored afterwards, since grouping
// formatters drop them.
func groupInteger(digits string, o NumberOptions) string {
	significant := strings.TrimLeft(digits, "0")
	zeros := digits[:len(digits)-len(significant)]
	if significant == "" {
		return zeros
	}

	var formatted string
	if o.Locale != nil {
		formatted = o.Locale.FormatNumber(significant, NumberFormat{
			Group:            o.Symbols.Thousands,
			MaxIntegerDigits: o.IntegerLimit,
		})
	}
	if formatted == "" {
		formatted = GroupThousands(significant, o.Symbols.Thousands)
	}
	return zeros + formatted
}

// GroupThousands inserts sep between every three digits counted from the
// right.
func GroupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// collapseLeadingZeros drops a run of leading zeros, keeping a single zero
// when the value is all zeros.
func collapseLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" && digits != "" {
		return "0"
	}
	return trimmed
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
