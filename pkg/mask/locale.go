package mask

// NumberFormat carries the grouping instructions handed to
// Locale.FormatNumber.
type NumberFormat struct {
	// Group replaces the locale's own grouping separator when non-empty.
	Group string
	// MaxIntegerDigits is the integer limit in effect, 0 when unbounded.
	// The digits are already truncated; implementations must not cut them.
	MaxIntegerDigits int
}

// Calendar exposes the localized calendar strings the date generator needs.
type Calendar struct {
	// DayPeriods holds the AM and PM strings. Empty strings mean the locale
	// has no day-period data.
	DayPeriods [2]string
}

// HasDayPeriods reports whether both day-period strings are present.
func (c Calendar) HasDayPeriods() bool {
	return c.DayPeriods[0] != "" && c.DayPeriods[1] != ""
}

// Locale is the read-only locale capability consumed by the generators.
type Locale interface {
	// FormatNumber groups a string of ASCII digits for display.
	FormatNumber(digits string, f NumberFormat) string
	// Calendar returns the calendar strings for the current locale state.
	Calendar() Calendar
}
