package termid_test

import (
	"errors"
	"testing"

	"github.com/Phenomics/annotation-simulator/termid"
)

// TestParse_Valid covers round-tripping of canonical identifiers.
func TestParse_Valid(t *testing.T) {
	id, err := termid.Parse("HP:0001250")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Prefix != "HP" || id.Local != "0001250" {
		t.Errorf("Parse = %+v; want {HP 0001250}", id)
	}
	if got, want := id.String(), "HP:0001250"; got != want {
		t.Errorf("String = %q; want %q", got, want)
	}
}

// TestParse_LocalMayContainColon pins down split-once semantics.
func TestParse_LocalMayContainColon(t *testing.T) {
	id, err := termid.Parse("HP:0001250:extra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := id.Local, "0001250:extra"; got != want {
		t.Errorf("Local = %q; want %q", got, want)
	}
}

// TestParse_Malformed verifies the sentinel on bad input.
func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "HP0001250", ":0001250"} {
		if _, err := termid.Parse(in); !errors.Is(err, termid.ErrMalformedID) {
			t.Errorf("Parse(%q): want ErrMalformedID, got %v", in, err)
		}
	}
}

// TestCompare_Ordering verifies the prefix-then-local total order.
func TestCompare_Ordering(t *testing.T) {
	a := termid.New("HP", "0000001")
	b := termid.New("HP", "0000002")
	c := termid.New("MP", "0000001")

	if !a.Less(b) {
		t.Errorf("want %v < %v", a, b)
	}
	if !b.Less(c) {
		t.Errorf("want %v < %v (prefix dominates)", b, c)
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(self) != 0")
	}
}

// TestSortIDs verifies in-place canonical ordering.
func TestSortIDs(t *testing.T) {
	ids := []termid.TermID{
		termid.New("MP", "2"),
		termid.New("HP", "9"),
		termid.New("HP", "1"),
	}
	termid.SortIDs(ids)

	want := []termid.TermID{
		termid.New("HP", "1"),
		termid.New("HP", "9"),
		termid.New("MP", "2"),
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("SortIDs = %v; want %v", ids, want)
		}
	}
}

// TestContains covers membership on short slices.
func TestContains(t *testing.T) {
	ids := []termid.TermID{termid.New("HP", "1"), termid.New("HP", "2")}
	if !termid.Contains(ids, termid.New("HP", "2")) {
		t.Errorf("Contains: expected member not found")
	}
	if termid.Contains(ids, termid.New("HP", "3")) {
		t.Errorf("Contains: unexpected member found")
	}
}
