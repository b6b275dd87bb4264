package mask

import "strings"

// Mask is an ordered list of elements. Ignoring caret traps, element i
// describes character i of the fully formatted value.
type Mask []Element

// Literals converts every character of s into a literal element.
func Literals(s string) Mask {
	if s == "" {
		return nil
	}
	out := make(Mask, 0, len(s))
	for _, r := range s {
		out = append(out, Literal(r))
	}
	return out
}

// Digits returns n digit matchers.
func Digits(n int) Mask {
	if n <= 0 {
		return nil
	}
	out := make(Mask, n)
	for i := range out {
		out[i] = Digit
	}
	return out
}

// Alphas returns n alpha matchers.
func Alphas(n int) Mask {
	if n <= 0 {
		return nil
	}
	out := make(Mask, n)
	for i := range out {
		out[i] = Alpha
	}
	return out
}

// Concat joins masks into a freshly allocated mask.
func Concat(parts ...Mask) Mask {
	size := 0
	for _, part := range parts {
		size += len(part)
	}
	out := make(Mask, 0, size)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

// Len counts the character positions of the mask, skipping caret traps.
func (m Mask) Len() int {
	n := 0
	for _, el := range m {
		if el.kind != KindCaretTrap {
			n++
		}
	}
	return n
}

// Count returns how many elements are of the given kind.
func (m Mask) Count(kind Kind) int {
	n := 0
	for _, el := range m {
		if el.kind == kind {
			n++
		}
	}
	return n
}

// Notation renders the mask compactly: '#' digit, 'x' alpha, '*' any,
// '[..]' class, '|' caret trap. Literals are written as-is, with a backslash
// before reserved notation characters.
func (m Mask) Notation() string {
	var b strings.Builder
	for _, el := range m {
		el.writeNotation(&b)
	}
	return b.String()
}

// Placeholder renders the mask with placeholder in every matcher position and
// the literal characters in place. Caret traps are dropped.
func (m Mask) Placeholder(placeholder rune) string {
	var b strings.Builder
	for _, el := range m {
		switch {
		case el.kind == KindLiteral:
			b.WriteRune(el.char)
		case el.IsMatcher():
			b.WriteRune(placeholder)
		}
	}
	return b.String()
}

// fromFormatted maps digits to digit matchers and every other character to a
// literal.
func fromFormatted(s string) Mask {
	out := make(Mask, 0, len(s))
	for _, r := range s {
		if isASCIIDigit(r) {
			out = append(out, Digit)
			continue
		}
		out = append(out, Literal(r))
	}
	return out
}
