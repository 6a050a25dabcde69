package banks

import (
	"reflect"
	"testing"
)

func TestCodes(t *testing.T) {
	want := []string{
		"ACB", "BIDV", "KBANK", "SC", "TCB", "UOB",
		"UOBV", "VCB", "VIB", "VTB", "WOORI",
	}
	got := Codes()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, code := range []string{"ACB", "acb", "Acb"} {
		e := Lookup(code)
		if e == nil {
			t.Fatalf("Lookup(%q) = nil", code)
		}
		if e.Code() != "ACB" {
			t.Errorf("Lookup(%q).Code() = %q", code, e.Code())
		}
	}
	if Lookup("NOSUCHBANK") != nil {
		t.Error("Lookup returned an extractor for an unknown code")
	}
}

// Every extractor must treat blank input as nothing to parse: three empty
// tables, no fallback stub rows, no panic.
func TestBlankInputAllBanks(t *testing.T) {
	for _, e := range All() {
		for _, input := range []string{"", "   ", "\n\t \n"} {
			forward, spot, central := e.Parse(input)
			if len(forward) != 0 || len(spot) != 0 || len(central) != 0 {
				t.Errorf("%s.Parse(%q) = %d/%d/%d rows, want all empty",
					e.Code(), input, len(forward), len(spot), len(central))
			}
		}
	}
}

// Unstructured but non-blank text must never panic an extractor; at worst
// it yields the bank's stub rows.
func TestGarbageInputAllBanks(t *testing.T) {
	const garbage = "Dear team,\nplease find attached\nregards\n"
	for _, e := range All() {
		forward, _, _ := e.Parse(garbage)
		for i, row := range forward {
			if row.Bank != e.Code() {
				t.Errorf("%s forward row %d has bank %q", e.Code(), i, row.Bank)
			}
		}
	}
}
