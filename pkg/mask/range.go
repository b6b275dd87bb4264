package mask

import "strings"

// RangeDateMask builds the mask for "start<delimiter>end" values. Both halves
// share opts.Format. The returned LiteralRegex belongs to the second date and
// Literals holds the delimiter characters; callers that need the date
// separators should call DateMask directly.
func RangeDateMask(raw string, opts DateOptions) DateResult {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = DefaultRangeDelimiter
	}

	parts := strings.Split(raw, delimiter)
	first := parts[0]
	second := ""
	if len(parts) > 1 {
		second = parts[1]
	}

	start := DateMask(first, opts)
	end := DateMask(second, opts)

	literals := make([]string, 0, len(delimiter))
	for _, r := range delimiter {
		literals = append(literals, string(r))
	}

	return DateResult{
		Mask:         Concat(start.Mask, Literals(delimiter), end.Mask),
		Literals:     literals,
		LiteralRegex: end.LiteralRegex,
	}
}
