package mask

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Defaults used when DateOptions leave them empty.
const (
	DefaultDateSeparator      = "/"
	DefaultTimeSeparator      = ":"
	DefaultDayPeriodSeparator = " "
	DefaultRangeDelimiter     = " - "
)

// dateLetters are the format characters that belong to field tokens.
const dateLetters = "dMyHhmsa"

var tokenPattern = regexp.MustCompile(`ah{1,2}|d{1,2}|M{1,4}|y{1,4}|H{1,2}|h{1,2}|m{1,2}|s{1,2}|a`)

// DateSymbols are the separators used to compose a default format.
type DateSymbols struct {
	TimeSeparator      string `json:"timeSeparator,omitempty" yaml:"timeSeparator,omitempty"`
	DayPeriodSeparator string `json:"dayPeriodSeparator,omitempty" yaml:"dayPeriodSeparator,omitempty"`
	DateSeparator      string `json:"dateSeparator,omitempty" yaml:"dateSeparator,omitempty"`
}

// DateOptions configures DateMask and RangeDateMask.
type DateOptions struct {
	// Format is a token string such as `M/d/yyyy` or `HH:mm`. When empty the
	// short date format built from Symbols is used.
	Format  string      `json:"format,omitempty" yaml:"format,omitempty"`
	Symbols DateSymbols `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	// Delimiter separates the two dates of a range.
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// Locale supplies localized day periods. Optional.
	Locale Locale `json:"-" yaml:"-"`
}

// DateResult is the output of DateMask and RangeDateMask.
type DateResult struct {
	Mask Mask `json:"mask"`
	// Literals are the distinct separator characters of the format.
	Literals []string `json:"literals"`
	// LiteralRegex matches runs of Literals; nil when the format has none.
	LiteralRegex *regexp.Regexp `json:"-"`
}

// LiteralPattern returns the source of LiteralRegex, or "".
func (r DateResult) LiteralPattern() string {
	if r.LiteralRegex == nil {
		return ""
	}
	return r.LiteralRegex.String()
}

// Segments splits raw into per-field segments using LiteralRegex.
func (r DateResult) Segments(raw string) []string {
	return splitSegments(raw, r.LiteralRegex)
}

func (s DateSymbols) normalized() DateSymbols {
	if s.DateSeparator == "" {
		s.DateSeparator = DefaultDateSeparator
	}
	if s.TimeSeparator == "" {
		s.TimeSeparator = DefaultTimeSeparator
	}
	if s.DayPeriodSeparator == "" {
		s.DayPeriodSeparator = DefaultDayPeriodSeparator
	}
	return s
}

// DefaultFormat composes `M/d/yyyy` (and `h:mm a` when withTime is set) from
// the separators in s.
func DefaultFormat(s DateSymbols, withTime bool) string {
	s = s.normalized()
	format := "M" + s.DateSeparator + "d" + s.DateSeparator + "yyyy"
	if withTime {
		format += " h" + s.TimeSeparator + "mm" + s.DayPeriodSeparator + "a"
	}
	return format
}

type formatToken struct {
	text  string
	field Field
	start int
	end   int
}

func tokenize(format string) []formatToken {
	spans := tokenPattern.FindAllStringIndex(format, -1)
	tokens := make([]formatToken, 0, len(spans))
	for _, span := range spans {
		text := format[span[0]:span[1]]
		tokens = append(tokens, formatToken{
			text:  text,
			field: fieldForToken(text),
			start: span[0],
			end:   span[1],
		})
	}
	return tokens
}

// DateMask builds the mask for one date/time value typed against opts.Format.
func DateMask(raw string, opts DateOptions) DateResult {
	format := opts.Format
	if format == "" {
		format = DefaultFormat(opts.Symbols, false)
	}

	literals := formatLiterals(format)
	literalRegex := literalsRegex(literals)
	segments := splitSegments(raw, literalRegex)
	tokens := tokenize(format)

	var calendar Calendar
	if opts.Locale != nil {
		calendar = opts.Locale.Calendar()
	}

	var m Mask
	if len(tokens) > 0 && tokens[0].start > 0 {
		m = append(m, Literals(format[:tokens[0].start])...)
		m = append(m, CaretTrap)
	}

	for i, tok := range tokens {
		segment, typed := "", false
		if i < len(segments) {
			segment = segments[i]
			typed = segment != ""
		}
		hasNext := i+1 < len(segments)

		switch {
		case tok.field == FieldDayPeriod:
			m = append(m, dayPeriodMask(calendar)...)
		case tok.field == FieldDayPeriodHour:
			m = append(m, dayPeriodMask(calendar)...)
			m = append(m, Digits(dayPeriodHourWidth(segment, typed, calendar))...)
		case !tok.field.Numeric():
			m = append(m, Alphas(utf8.RuneCountInString(tok.text))...)
		case typed:
			m = append(m, Digits(typedWidth(tok, segment, hasNext))...)
		default:
			m = append(m, Digits(tok.field.Width())...)
		}

		if i < len(tokens)-1 {
			if between := format[tok.end:tokens[i+1].start]; between != "" {
				m = append(m, CaretTrap)
				m = append(m, Literals(between)...)
				m = append(m, CaretTrap)
			}
		}
	}

	if n := len(tokens); n > 0 && tokens[n-1].end < len(format) {
		m = append(m, CaretTrap)
		m = append(m, Literals(format[tokens[n-1].end:])...)
	}

	return DateResult{
		Mask:         m,
		Literals:     literals,
		LiteralRegex: literalRegex,
	}
}

// typedWidth picks the digit slots for a field the user has started typing.
// A single slot is used when the first digit can only be a one-digit value,
// or when the user typed one digit and already moved on to the next field.
func typedWidth(tok formatToken, segment string, hasNext bool) int {
	first := -1
	if c := segment[0]; c >= '0' && c <= '9' {
		first = int(c - '0')
	}

	switch {
	case len(tok.text) == 1 && first > tok.field.MaxFirstDigit():
		return 1
	case utf8.RuneCountInString(segment) == 1 && first > 0 && first <= tok.field.Max() && hasNext && tok.text != "HH":
		return 1
	}
	return tok.field.Width()
}

// dayPeriodMask merges the AM and PM strings position by position into
// case-insensitive classes.
func dayPeriodMask(calendar Calendar) Mask {
	if !calendar.HasDayPeriods() {
		return Mask{Class("ap", true), Class("m", true)}
	}
	am := []rune(strings.ToLower(calendar.DayPeriods[0]))
	pm := []rune(strings.ToLower(calendar.DayPeriods[1]))

	size := max(len(am), len(pm))
	out := make(Mask, 0, size)
	for i := 0; i < size; i++ {
		var set []rune
		if i < len(am) {
			set = append(set, am[i])
		}
		if i < len(pm) {
			set = append(set, pm[i])
		}
		out = append(out, Class(string(set), true))
	}
	return out
}

// dayPeriodHourWidth sizes the hour digits of a compound `ah` token from the
// typed text with the day-period strings removed.
func dayPeriodHourWidth(segment string, typed bool, calendar Calendar) int {
	width := FieldHour12.Width()
	if !typed {
		return width
	}
	periods := [2]string{"am", "pm"}
	if calendar.HasDayPeriods() {
		periods = calendar.DayPeriods
	}
	hour := strings.ToLower(segment)
	for _, period := range periods {
		hour = strings.ReplaceAll(hour, strings.ToLower(period), "")
	}
	n := utf8.RuneCountInString(strings.TrimSpace(hour))
	return min(max(n, 1), width)
}

// formatLiterals returns the distinct non-token characters of format in order
// of appearance.
func formatLiterals(format string) []string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(dateLetters, r) {
			return -1
		}
		return r
	}, format)

	var out []string
	for _, r := range stripped {
		lit := string(r)
		if containsString(out, lit) {
			continue
		}
		out = append(out, lit)
	}
	return out
}

// literalsRegex matches a run of any of the literal characters.
func literalsRegex(literals []string) *regexp.Regexp {
	if len(literals) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, lit := range literals {
		r, _ := utf8.DecodeRuneInString(lit)
		b.WriteString(escapeClassRune(r))
	}
	b.WriteString("]+")
	return regexp.MustCompile(b.String())
}

func splitSegments(raw string, literalRegex *regexp.Regexp) []string {
	if literalRegex == nil {
		return []string{raw}
	}
	return literalRegex.Split(raw, -1)
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
