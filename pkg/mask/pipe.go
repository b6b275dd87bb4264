package mask

import (
	"strconv"
	"unicode/utf8"
)

// PipeDateFormat is the only format AutoCorrectedDatePipe understands.
const PipeDateFormat = "M/d/yyyy"

// DefaultPlaceholderChar fills unfilled mask positions.
const DefaultPlaceholderChar = '_'

// ProcessResult is the state handed over by the masked-input widget after it
// conformed the typed text to a date mask.
type ProcessResult struct {
	ConformedValue  string `json:"conformedValue"`
	PlaceholderChar rune   `json:"placeholderChar,omitempty"`
	Placeholder     string `json:"placeholder,omitempty"`
}

// PipeOptions is accepted for API symmetry with the generators.
type PipeOptions struct {
	// DateFormat is ignored: the pipe always applies PipeDateFormat.
	DateFormat string `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty"`
}

// Correction is a repaired conformed value. CharacterIndexes lists the
// positions where a zero was inserted, so the widget can move the caret past
// them.
type Correction struct {
	Value            string `json:"value"`
	CharacterIndexes []int  `json:"characterIndexes"`
}

// AutoCorrectedDatePipe repairs single-digit overflow in a conformed
// `M/d/yyyy` value: a month starting with 2-9 or a day starting with 4-9 is
// turned into 0N. It returns false when any field is out of range, which the
// widget must treat as a rejected edit.
//
// Field positions come from res.Placeholder. Without a usable placeholder the
// conformed value is split on the format's separators, and when that does not
// yield one run per field the raw format positions are used, which only line
// up with single-width month and day values such as `4/5/2020`.
//
// Known limitation: PipeOptions.DateFormat is not honoured and PipeDateFormat
// is always used.
func AutoCorrectedDatePipe(res ProcessResult, _ PipeOptions) (Correction, bool) {
	return autoCorrect(res, PipeDateFormat)
}

type fieldSpan struct {
	field Field
	start int
	width int
}

func autoCorrect(res ProcessResult, format string) (Correction, bool) {
	value := []rune(res.ConformedValue)
	spans := pipeLayout(format, res)

	indexes := []int{}
	for _, span := range spans {
		pos := span.start
		if span.width < 2 || pos+1 >= len(value) {
			continue
		}
		digit, ok := runeDigit(value[pos])
		if !ok || digit <= span.field.MaxFirstDigit() {
			continue
		}
		value[pos+1] = value[pos]
		value[pos] = '0'
		indexes = append(indexes, pos)
	}

	for _, span := range spans {
		text := digitsOnly(sliceRunes(value, span.start, span.width))
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return Correction{}, false
		}
		if n > span.field.Max() || (len(text) == span.width && n < span.field.Min()) {
			return Correction{}, false
		}
	}

	return Correction{Value: string(value), CharacterIndexes: indexes}, true
}

// pipeLayout locates each numeric field of format inside the conformed value.
// Runs of the placeholder character give the positions and widths. When the
// placeholder does not line up with the format, the conformed value split on
// the format separators is tried, then the format positions.
func pipeLayout(format string, res ProcessResult) []fieldSpan {
	var tokens []formatToken
	for _, tok := range tokenize(format) {
		if tok.field.Numeric() {
			tokens = append(tokens, tok)
		}
	}

	placeholderChar := res.PlaceholderChar
	if placeholderChar == 0 {
		placeholderChar = DefaultPlaceholderChar
	}
	if runs := runsOf(res.Placeholder, func(r rune) bool { return r == placeholderChar }); len(runs) == len(tokens) {
		return spansFromRuns(tokens, runs)
	}
	separators := formatSeparators(format, tokens)
	if runs := runsOf(res.ConformedValue, func(r rune) bool { return !separators[r] }); len(runs) == len(tokens) {
		return spansFromRuns(tokens, runs)
	}

	spans := make([]fieldSpan, len(tokens))
	for i, tok := range tokens {
		spans[i] = fieldSpan{
			field: tok.field,
			start: utf8.RuneCountInString(format[:tok.start]),
			width: utf8.RuneCountInString(tok.text),
		}
	}
	return spans
}

func spansFromRuns(tokens []formatToken, runs [][2]int) []fieldSpan {
	spans := make([]fieldSpan, len(tokens))
	for i, tok := range tokens {
		spans[i] = fieldSpan{field: tok.field, start: runs[i][0], width: runs[i][1]}
	}
	return spans
}

// formatSeparators returns the runes of format that lie outside tokens.
func formatSeparators(format string, tokens []formatToken) map[rune]bool {
	separators := make(map[rune]bool)
	prev := 0
	for _, tok := range tokens {
		for _, r := range format[prev:tok.start] {
			separators[r] = true
		}
		prev = tok.end
	}
	for _, r := range format[prev:] {
		separators[r] = true
	}
	return separators
}

// runsOf returns [start, width] pairs, in runes, for each maximal run of
// runes accepted by keep.
func runsOf(s string, keep func(rune) bool) [][2]int {
	var runs [][2]int
	start := -1
	pos := 0
	for _, r := range s {
		if keep(r) {
			if start < 0 {
				start = pos
			}
		} else if start >= 0 {
			runs = append(runs, [2]int{start, pos - start})
			start = -1
		}
		pos++
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, pos - start})
	}
	return runs
}

func sliceRunes(value []rune, start, width int) string {
	if start >= len(value) {
		return ""
	}
	end := min(start+width, len(value))
	return string(value[start:end])
}

func runeDigit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}
