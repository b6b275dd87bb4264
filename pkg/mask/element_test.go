package mask_test

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

func TestElementMatches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		el     mask.Element
		accept string
		reject string
	}{
		{el: mask.Digit, accept: "0123456789", reject: "a-.١"},
		{el: mask.Alpha, accept: "azAZÀéſ", reject: "09-ƀ"},
		{el: mask.Any, accept: "a9Éz0", reject: "-._"},
		{el: mask.Literal('/'), accept: "/", reject: "\\-"},
		{el: mask.Class("-", false), accept: "-", reject: "+1"},
		{el: mask.Class("AP", true), accept: "aApP", reject: "mM"},
		{el: mask.CaretTrap, accept: "", reject: "[]a1"},
	}
	for _, tc := range cases {
		for _, r := range tc.accept {
			if !tc.el.Matches(r) {
				t.Fatalf("%s should accept %q", tc.el.Kind(), r)
			}
		}
		for _, r := range tc.reject {
			if tc.el.Matches(r) {
				t.Fatalf("%s should reject %q", tc.el.Kind(), r)
			}
		}
	}
}

func TestMaskJSON(t *testing.T) {
	t.Parallel()

	m := mask.Mask{mask.Digit, mask.CaretTrap, mask.Literal('/'), mask.Class("ap", true), mask.Class("-", false)}
	payload, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"pattern":"\\d"},"[]","/",{"pattern":"[aApP]"},{"pattern":"[\\-]"}]`
	if string(payload) != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", payload, want)
	}

	var decoded mask.Mask
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Notation() != m.Notation() {
		t.Fatalf("round trip mismatch: %q vs %q", decoded.Notation(), m.Notation())
	}
	if !decoded[3].Matches('P') {
		t.Fatalf("decoded class lost case folding")
	}
}

func TestElementUnmarshal_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`"ab"`, `""`, `{"pattern":"\\w+"}`, `42`} {
		var el mask.Element
		if err := json.Unmarshal([]byte(raw), &el); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestMaskHelpers(t *testing.T) {
	t.Parallel()

	m := mask.Concat(mask.Literals("$"), mask.Digits(3), mask.Mask{mask.CaretTrap}, mask.Literals("#|"))
	if got := m.Len(); got != 6 {
		t.Fatalf("Len() = %d, want 6", got)
	}
	if got := m.Count(mask.KindDigit); got != 3 {
		t.Fatalf("Count(digit) = %d, want 3", got)
	}
	if got := m.Notation(); got != `$###|\#\|` {
		t.Fatalf("unexpected notation %q", got)
	}
	if got := m.Placeholder('_'); got != "$___#|" {
		t.Fatalf("unexpected placeholder %q", got)
	}
	if mask.Digits(0) != nil || mask.Literals("") != nil {
		t.Fatalf("expected nil for empty constructors")
	}
}
