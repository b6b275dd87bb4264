package mask_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// groupingLocale formats with a fixed grouping callback so tests can observe
// how NumberMask consumes locale output.
type groupingLocale struct {
	format func(digits string, f mask.NumberFormat) string
}

func (l groupingLocale) FormatNumber(digits string, f mask.NumberFormat) string {
	return l.format(digits, f)
}

func (l groupingLocale) Calendar() mask.Calendar { return mask.Calendar{} }

func TestNumberMask(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		opts mask.NumberOptions
		want string
	}{
		{name: "empty", raw: "", opts: mask.NewNumberOptions(), want: "#"},
		{name: "empty with affixes", raw: "", opts: mask.NewNumberOptions(mask.WithPrefix("$"), mask.WithSuffix(" USD")), want: "$# USD"},
		{name: "prefix only", raw: "$", opts: mask.NewNumberOptions(mask.WithPrefix("$")), want: "$#"},
		{name: "bare decimal", raw: ".", opts: mask.NewNumberOptions(mask.WithDecimal(2)), want: "0|.|#"},
		{name: "bare decimal with prefix", raw: ".", opts: mask.NewNumberOptions(mask.WithPrefix("$"), mask.WithDecimal(2)), want: "$0|.|#"},
		{name: "plain integer", raw: "1234", opts: mask.NewNumberOptions(), want: "####"},
		{name: "four digits grouped", raw: "1234", opts: mask.NewNumberOptions(mask.WithThousandsSeparator(true)), want: "#,###"},
		{name: "seven digits grouped", raw: "1234567", opts: mask.NewNumberOptions(mask.WithThousandsSeparator(true)), want: "#,###,###"},
		{name: "three digits grouped", raw: "123", opts: mask.NewNumberOptions(mask.WithThousandsSeparator(true)), want: "###"},
		{name: "regroups typed separators", raw: "12,34567", opts: mask.NewNumberOptions(mask.WithThousandsSeparator(true)), want: "#,###,###"},
		{name: "trailing decimal gets entry slot", raw: "1.", opts: mask.NewNumberOptions(mask.WithDecimal(-1)), want: "#|.|#"},
		{name: "doubled decimal has no doubled trap", raw: "1..", opts: mask.NewNumberOptions(mask.WithDecimal(-1)), want: "#.|#"},
		{name: "fraction uncapped", raw: "1.2345", opts: mask.NewNumberOptions(mask.WithDecimal(-1)), want: "#|.|####"},
		{name: "fraction capped", raw: "1.2345", opts: mask.NewNumberOptions(mask.WithDecimal(2)), want: "#|.|##"},
		{name: "zero decimal limit has no entry slot", raw: "1.", opts: mask.NewNumberOptions(mask.WithDecimal(0)), want: "#|.|"},
		{name: "decimal ignored when not allowed", raw: "12.5", opts: mask.NewNumberOptions(), want: "###"},
		{name: "fraction drops non digits", raw: "3.1a4", opts: mask.NewNumberOptions(mask.WithDecimal(-1)), want: "#|.|##"},
		{
			name: "currency",
			raw:  "$1234.56",
			opts: mask.NewNumberOptions(mask.WithPrefix("$"), mask.WithThousandsSeparator(true), mask.WithDecimal(2)),
			want: "$#,###|.|##",
		},
		{name: "require decimal without decimal typed", raw: "12", opts: mask.NewNumberOptions(mask.WithRequireDecimal(true)), want: "##|.|"},
		{name: "require decimal at decimal point", raw: "12.", opts: mask.NewNumberOptions(mask.WithRequireDecimal(true)), want: "##|.|#"},
		{name: "integer limit", raw: "123456", opts: mask.NewNumberOptions(mask.WithIntegerLimit(3)), want: "###"},
		{
			name: "integer limit counts digits not separators",
			raw:  "1,234,567",
			opts: mask.NewNumberOptions(mask.WithIntegerLimit(4), mask.WithThousandsSeparator(true)),
			want: "#,###",
		},
		{
			name: "integer limit allows for negative sign",
			raw:  "-12345",
			opts: mask.NewNumberOptions(mask.WithIntegerLimit(3), mask.WithNegative(true)),
			want: "[-]####",
		},
		{name: "leading zeros collapsed", raw: "0005", opts: mask.NewNumberOptions(), want: "#"},
		{name: "all zeros keep one", raw: "000", opts: mask.NewNumberOptions(), want: "#"},
		{name: "leading zeros kept", raw: "0005", opts: mask.NewNumberOptions(mask.WithLeadingZeros(true)), want: "####"},
		{
			name: "leading zeros restored after grouping",
			raw:  "0001234",
			opts: mask.NewNumberOptions(mask.WithLeadingZeros(true), mask.WithThousandsSeparator(true)),
			want: "####,###",
		},
		{name: "lone negative sign anchors a digit", raw: "-", opts: mask.NewNumberOptions(mask.WithNegative(true)), want: "[-]#"},
		{name: "negative with prefix", raw: "-$", opts: mask.NewNumberOptions(mask.WithNegative(true), mask.WithPrefix("$")), want: "[-]$#"},
		{name: "negative number", raw: "-12", opts: mask.NewNumberOptions(mask.WithNegative(true)), want: "[-]##"},
		{name: "negative not allowed", raw: "-12", opts: mask.NewNumberOptions(), want: "##"},
		{name: "suffix stripped", raw: "50 %", opts: mask.NewNumberOptions(mask.WithSuffix(" %")), want: "## %"},
		{
			name: "european symbols",
			raw:  "1.234,5",
			opts: mask.NewNumberOptions(
				mask.WithSymbols(mask.NumberSymbols{Decimal: ",", Thousands: "."}),
				mask.WithThousandsSeparator(true),
				mask.WithDecimal(2),
			),
			want: "#.###|,|#",
		},
		{name: "garbage", raw: "abc", opts: mask.NewNumberOptions(), want: "#"},
		{name: "multibyte prefix", raw: "€12", opts: mask.NewNumberOptions(mask.WithPrefix("€")), want: "€##"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := mask.NumberMask(tc.raw, tc.opts).Mask.Notation()
			if got != tc.want {
				t.Fatalf("NumberMask(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNumberMask_TrailingDecimalPattern(t *testing.T) {
	t.Parallel()

	m := mask.NumberMask("1.", mask.NewNumberOptions(mask.WithDecimal(-1))).Mask
	if len(m) < 3 {
		t.Fatalf("mask too short: %q", m.Notation())
	}
	tail := m[len(m)-3:]
	if tail[0].Kind() != mask.KindLiteral || tail[0].Rune() != '.' {
		t.Fatalf("expected decimal literal, got %v", tail[0])
	}
	if tail[1].Kind() != mask.KindCaretTrap {
		t.Fatalf("expected caret trap after decimal, got %v", tail[1])
	}
	if tail[2].Kind() != mask.KindDigit {
		t.Fatalf("expected digit entry slot, got %v", tail[2])
	}
}

func TestNumberMask_IsPure(t *testing.T) {
	t.Parallel()

	opts := mask.NewNumberOptions(mask.WithPrefix("$"), mask.WithThousandsSeparator(true))
	first := mask.NumberMask("", opts).Mask.Notation()
	second := mask.NumberMask("", opts).Mask.Notation()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("masks differ between calls (-first +second):\n%s", diff)
	}
}

func TestNumberMask_NeverEmpty(t *testing.T) {
	t.Parallel()

	inputs := []string{"", " ", "-", ".", "..", "$", "$$", "abc", "-.", "1.2.3", "\x00", "１２３", "--1", "%"}
	optionSets := []mask.NumberOptions{
		mask.NewNumberOptions(),
		mask.NewNumberOptions(mask.WithPrefix("$"), mask.WithSuffix("%"), mask.WithDecimal(2), mask.WithNegative(true)),
		mask.NewNumberOptions(mask.WithRequireDecimal(true), mask.WithThousandsSeparator(true), mask.WithIntegerLimit(2)),
		{},
	}
	for _, opts := range optionSets {
		for _, raw := range inputs {
			m := mask.NumberMask(raw, opts).Mask
			if len(m) == 0 {
				t.Fatalf("NumberMask(%q, %+v) returned empty mask", raw, opts)
			}
			matchers := 0
			for _, el := range m {
				if el.IsMatcher() {
					matchers++
				}
			}
			if matchers == 0 {
				t.Fatalf("NumberMask(%q) has no matcher: %q", raw, m.Notation())
			}
		}
	}
}

func TestNumberMask_ZeroOptionsUseDefaultSymbols(t *testing.T) {
	t.Parallel()

	got := mask.NumberMask("1234.5", mask.NumberOptions{AllowDecimal: true, AllowThousandsSeparator: true}).Mask.Notation()
	if got != "#,###|.|#" {
		t.Fatalf("unexpected mask %q", got)
	}
}

func TestNumberMask_UsesLocaleGrouping(t *testing.T) {
	t.Parallel()

	var seen mask.NumberFormat
	locale := groupingLocale{format: func(digits string, f mask.NumberFormat) string {
		seen = f
		// lakh-style grouping, dropping leading zeros like real formatters do
		digits = strings.TrimLeft(digits, "0")
		if len(digits) <= 3 {
			return digits
		}
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		return strings.Join(parts, f.Group) + f.Group + tail
	}}

	opts := mask.NewNumberOptions(
		mask.WithThousandsSeparator(true),
		mask.WithLeadingZeros(true),
		mask.WithIntegerLimit(9),
		mask.WithNumberLocale(locale),
	)

	if got := mask.NumberMask("1234567", opts).Mask.Notation(); got != "##,##,###" {
		t.Fatalf("unexpected grouped mask %q", got)
	}
	if seen.Group != "," || seen.MaxIntegerDigits != 9 {
		t.Fatalf("unexpected format instructions: %+v", seen)
	}
	if got := mask.NumberMask("0012345", opts).Mask.Notation(); got != "####,###" {
		t.Fatalf("leading zeros not restored: %q", got)
	}
}

func TestGroupThousands(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":           "",
		"1":          "1",
		"123":        "123",
		"1234":       "1 234",
		"123456":     "123 456",
		"1234567890": "1 234 567 890",
	}
	for in, want := range cases {
		if got := mask.GroupThousands(in, " "); got != want {
			t.Fatalf("GroupThousands(%q) = %q, want %q", in, got, want)
		}
	}
	if got := mask.GroupThousands("1234", ""); got != "1234" {
		t.Fatalf("empty separator should not group, got %q", got)
	}
}
