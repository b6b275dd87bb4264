package mask

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind tags the variant held by an Element.
type Kind uint8

const (
	KindLiteral Kind = iota + 1
	KindDigit
	KindAlpha
	KindAny
	KindClass
	KindCaretTrap
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindDigit:
		return "digit"
	case KindAlpha:
		return "alpha"
	case KindAny:
		return "any"
	case KindClass:
		return "class"
	case KindCaretTrap:
		return "caret-trap"
	default:
		return "unknown"
	}
}

// Regular expression sources for the built-in matchers. The alpha range
// covers Latin-1 supplement and Latin Extended-A letters.
const (
	DigitPattern = `\d`
	AlphaPattern = "[\u00C0-\u017Fa-zA-Z]"
	AnyPattern   = "[\u00C0-\u017Fa-zA-Z0-9]"

	caretTrapToken = "[]"
)

// Element is one position of a Mask. The zero value is invalid; use the
// constructors below.
type Element struct {
	kind Kind
	char rune
	set  string
	fold bool
}

var (
	// Digit accepts one of 0-9.
	Digit = Element{kind: KindDigit}
	// Alpha accepts one ASCII or Latin-1/Latin Extended-A letter.
	Alpha = Element{kind: KindAlpha}
	// Any accepts one Alpha or Digit character.
	Any = Element{kind: KindAny}
	// CaretTrap is a zero-width section boundary.
	CaretTrap = Element{kind: KindCaretTrap}
)

// Literal returns an element requiring exactly r.
func Literal(r rune) Element {
	return Element{kind: KindLiteral, char: r}
}

// Class returns a matcher accepting any rune of set. When fold is true the
// match is case-insensitive and set is stored lower-cased.
func Class(set string, fold bool) Element {
	if fold {
		set = strings.ToLower(set)
	}
	return Element{kind: KindClass, set: dedupeRunes(set), fold: fold}
}

// Kind reports the variant.
func (e Element) Kind() Kind { return e.kind }

// Rune returns the literal character, or utf8.RuneError for non-literals.
func (e Element) Rune() rune {
	if e.kind != KindLiteral {
		return utf8.RuneError
	}
	return e.char
}

// Set returns the members of a class matcher.
func (e Element) Set() string { return e.set }

// IsMatcher reports whether the element consumes one typed character that is
// not fixed in advance.
func (e Element) IsMatcher() bool {
	switch e.kind {
	case KindDigit, KindAlpha, KindAny, KindClass:
		return true
	}
	return false
}

// Matches reports whether r is accepted at this position. Caret traps match
// nothing.
func (e Element) Matches(r rune) bool {
	switch e.kind {
	case KindLiteral:
		return r == e.char
	case KindDigit:
		return isASCIIDigit(r)
	case KindAlpha:
		return isMaskAlpha(r)
	case KindAny:
		return isMaskAlpha(r) || isASCIIDigit(r)
	case KindClass:
		if e.fold {
			r = unicode.ToLower(r)
		}
		return strings.ContainsRune(e.set, r)
	}
	return false
}

// Pattern returns the regular expression source for matchers, the quoted
// literal for literals, and "[]" for caret traps.
func (e Element) Pattern() string {
	switch e.kind {
	case KindLiteral:
		return quoteRune(e.char)
	case KindDigit:
		return DigitPattern
	case KindAlpha:
		return AlphaPattern
	case KindAny:
		return AnyPattern
	case KindClass:
		return classPattern(e.set, e.fold)
	case KindCaretTrap:
		return caretTrapToken
	}
	return ""
}

// String renders the element in mask notation.
func (e Element) String() string {
	var b strings.Builder
	e.writeNotation(&b)
	return b.String()
}

func (e Element) writeNotation(b *strings.Builder) {
	switch e.kind {
	case KindLiteral:
		if strings.ContainsRune(notationReserved, e.char) {
			b.WriteByte('\\')
		}
		b.WriteRune(e.char)
	case KindDigit:
		b.WriteByte('#')
	case KindAlpha:
		b.WriteByte('x')
	case KindAny:
		b.WriteByte('*')
	case KindClass:
		b.WriteByte('[')
		b.WriteString(e.set)
		b.WriteByte(']')
	case KindCaretTrap:
		b.WriteByte('|')
	default:
		b.WriteByte('?')
	}
}

const notationReserved = `#x*|[]\`

type wirePattern struct {
	Pattern string `json:"pattern"`
}

// MarshalJSON encodes literals as one-character strings, caret traps as
// "[]" and matchers as {"pattern": "<regexp>"}.
func (e Element) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case KindLiteral:
		return json.Marshal(string(e.char))
	case KindCaretTrap:
		return json.Marshal(caretTrapToken)
	case KindDigit, KindAlpha, KindAny, KindClass:
		return json.Marshal(wirePattern{Pattern: e.Pattern()})
	}
	return nil, fmt.Errorf("mask: marshal element of kind %d", e.kind)
}

var errUnknownPattern = errors.New("mask: unknown element pattern")

// UnmarshalJSON decodes the format written by MarshalJSON. Class patterns are
// only recognised in the bracket form produced by this package.
func (e *Element) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if text == caretTrapToken {
			*e = CaretTrap
			return nil
		}
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 || size != len(text) {
			return fmt.Errorf("mask: literal %q must be a single character", text)
		}
		*e = Literal(r)
		return nil
	}

	var wire wirePattern
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("mask: decode element: %w", err)
	}
	switch wire.Pattern {
	case DigitPattern:
		*e = Digit
	case AlphaPattern:
		*e = Alpha
	case AnyPattern:
		*e = Any
	default:
		set, fold, ok := parseClassPattern(wire.Pattern)
		if !ok {
			return fmt.Errorf("%w: %q", errUnknownPattern, wire.Pattern)
		}
		*e = Class(set, fold)
	}
	return nil
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isMaskAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0x00C0 && r <= 0x017F)
}

func dedupeRunes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(b.String(), r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func classPattern(set string, fold bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range set {
		b.WriteString(escapeClassRune(r))
		if fold {
			if upper := unicode.ToUpper(r); upper != r {
				b.WriteString(escapeClassRune(upper))
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// parseClassPattern reverses classPattern. A class is treated as folded when
// every letter appears in both cases.
func parseClassPattern(pattern string) (string, bool, bool) {
	if len(pattern) < 3 || pattern[0] != '[' || pattern[len(pattern)-1] != ']' {
		return "", false, false
	}
	body := pattern[1 : len(pattern)-1]
	var members []rune
	escaped := false
	for _, r := range body {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		if escaped && r == 's' {
			r = ' '
		}
		escaped = false
		members = append(members, r)
	}
	if len(members) == 0 {
		return "", false, false
	}

	fold := false
	for _, r := range members {
		if unicode.IsLetter(r) && unicode.ToUpper(r) != unicode.ToLower(r) {
			fold = true
			break
		}
	}
	if fold {
		for _, r := range members {
			if !unicode.IsLetter(r) {
				continue
			}
			if !containsRune(members, unicode.ToUpper(r)) || !containsRune(members, unicode.ToLower(r)) {
				fold = false
				break
			}
		}
	}
	return string(members), fold, true
}

func containsRune(list []rune, r rune) bool {
	for _, candidate := range list {
		if candidate == r {
			return true
		}
	}
	return false
}

func escapeClassRune(r rune) string {
	switch r {
	case ' ':
		return `\s`
	case '\\', ']', '[', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}

func quoteRune(r rune) string {
	if r < utf8.RuneSelf && strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
		return `\` + string(r)
	}
	return string(r)
}
