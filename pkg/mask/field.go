package mask

import "strconv"

// Field identifies the date/time component a format token stands for.
type Field uint8

const (
	FieldUnknown Field = iota
	FieldDay
	FieldMonth
	FieldMonthName
	FieldYear
	FieldYear2
	FieldHour12
	FieldHour24
	FieldMinute
	FieldSecond
	FieldDayPeriod
	FieldDayPeriodHour
)

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldMonthName:
		return "month-name"
	case FieldYear:
		return "year"
	case FieldYear2:
		return "year2"
	case FieldHour12:
		return "hour12"
	case FieldHour24:
		return "hour24"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldDayPeriod:
		return "day-period"
	case FieldDayPeriodHour:
		return "day-period-hour"
	default:
		return "unknown"
	}
}

// Max returns the field maximum used for width allocation and first-digit
// disambiguation. Fields without a numeric maximum return 0.
func (f Field) Max() int {
	switch f {
	case FieldDay:
		return 31
	case FieldMonth:
		return 12
	case FieldYear:
		return 9999
	case FieldYear2:
		return 99
	case FieldHour12:
		return 12
	case FieldHour24:
		return 24
	case FieldMinute, FieldSecond:
		return 60
	}
	return 0
}

// Min returns the smallest value accepted for a fully typed field.
func (f Field) Min() int {
	switch f {
	case FieldDay, FieldMonth, FieldYear, FieldHour12:
		return 1
	}
	return 0
}

// Numeric reports whether the field is typed as digits.
func (f Field) Numeric() bool {
	return f.Max() > 0
}

// Width is the number of digits of the field maximum.
func (f Field) Width() int {
	if !f.Numeric() {
		return 0
	}
	return len(strconv.Itoa(f.Max()))
}

// MaxFirstDigit is the leading digit of the field maximum.
func (f Field) MaxFirstDigit() int {
	if !f.Numeric() {
		return 0
	}
	return int(strconv.Itoa(f.Max())[0] - '0')
}

// fieldForToken maps a format token to its field.
func fieldForToken(token string) Field {
	switch token {
	case "d", "dd":
		return FieldDay
	case "M", "MM":
		return FieldMonth
	case "MMM", "MMMM":
		return FieldMonthName
	case "yy":
		return FieldYear2
	case "y", "yyy", "yyyy":
		return FieldYear
	case "h", "hh":
		return FieldHour12
	case "H", "HH":
		return FieldHour24
	case "m", "mm":
		return FieldMinute
	case "s", "ss":
		return FieldSecond
	case "a":
		return FieldDayPeriod
	case "ah", "ahh":
		return FieldDayPeriodHour
	}
	return FieldUnknown
}
