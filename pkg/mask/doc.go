// Package mask generates input masks for number and date/time fields.
//
// A Mask is an ordered list of Elements: literal characters that must appear
// verbatim, character-class matchers that accept one typed character, and
// zero-width caret traps that mark section boundaries for the masked-input
// widget. Generators are recomputed from the current raw value on every
// keystroke; the widget that applies the mask (conformance and caret
// placement) lives outside this package.
//
// Four entry points are exposed: NumberMask for currency/decimal/integer
// values, DateMask for a single date/time value driven by a token format such
// as `M/d/yyyy`, RangeDateMask for "start - end" ranges, and
// AutoCorrectedDatePipe which repairs single-digit overflow after the widget
// has conformed a date. None of them return errors or panic: malformed input
// degrades to the closest usable mask.
//
// Locale-sensitive behaviour (digit grouping, day periods) is read from the
// Locale capability passed in the options. The package never caches anything
// derived from it, so callers always observe the locale's current state.
package mask
