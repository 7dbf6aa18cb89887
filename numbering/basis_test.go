package numbering

import (
	"errors"
	"testing"
)

// testMapping builds the chain mapping used across the conversion tests:
// the first and last stretches of the structure are unresolved.
func testMapping(t *testing.T) *Mapping {
	t.Helper()
	pdbStream := ParseStream([]string{"null", "null", "null", "11", "12", "13",
		"null", "null", "16", "17", "18", "19", "20"})
	uniStream := ParseStream([]string{"35", "36", "37", "38", "39", "40", "41",
		"42", "43", "44", "45", "46", "47"})

	m, err := NewMapping(pdbStream, uniStream)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func positionsEqual(t *testing.T, actual []Position, expected []string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("expected %d positions, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if actual[i].String() != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], actual[i])
		}
	}
}

func TestToUniProt(t *testing.T) {
	m := testMapping(t)

	actual, err := m.ToUniProt(m.PDB)
	if err != nil {
		t.Fatal(err)
	}
	positionsEqual(t, actual, []string{"null", "null", "null", "38", "39", "40",
		"null", "null", "43", "44", "45", "46", "47"})
}

func TestToPDB(t *testing.T) {
	m := testMapping(t)

	uniTarget, err := m.ToUniProt(m.PDB)
	if err != nil {
		t.Fatal(err)
	}
	actual, err := m.ToPDB(uniTarget[2:9])
	if err != nil {
		t.Fatal(err)
	}
	positionsEqual(t, actual, []string{"null", "11", "12", "13", "null", "null", "16"})
}

func TestRoundTrip(t *testing.T) {
	// With no gaps on either side, converting forward then back restores
	// the original positions.
	pdbStream := ParseStream([]string{"8", "9", "10", "11", "12", "13", "14"})
	uniStream := ParseStream([]string{"35", "36", "37", "38", "39", "40", "41"})
	m, err := NewMapping(pdbStream, uniStream)
	if err != nil {
		t.Fatal(err)
	}

	target := []Position{Pos(9), Pos(12), Pos(14)}
	forward, err := m.ToUniProt(target)
	if err != nil {
		t.Fatal(err)
	}
	back, err := m.ToPDB(forward)
	if err != nil {
		t.Fatal(err)
	}

	for i := range target {
		if back[i] != target[i] {
			t.Errorf("position %d: expected %v after round trip, got %v", i, target[i], back[i])
		}
	}
}

func TestGapPropagation(t *testing.T) {
	m := testMapping(t)

	target := []Position{Gap, Pos(11), Gap}
	actual, err := m.ToUniProt(target)
	if err != nil {
		t.Fatal(err)
	}
	positionsEqual(t, actual, []string{"null", "38", "null"})
}

func TestNotMapped(t *testing.T) {
	m := testMapping(t)

	_, err := m.ToUniProt([]Position{Pos(999)})
	if !errors.Is(err, ErrNotMapped) {
		t.Errorf("expected ErrNotMapped, got %v", err)
	}
}

func TestMappingLengthMismatch(t *testing.T) {
	_, err := NewMapping([]Position{Pos(1)}, []Position{Pos(1), Pos(2)})
	if err == nil {
		t.Error("expected error for parallel streams of different length")
	}
}

func TestByIndex(t *testing.T) {
	uniStream := ParseStream([]string{"35", "36", "37", "38", "39", "40", "41",
		"42", "43", "44", "45", "46", "47"})
	target := ParseStream([]string{"8", "9", "10", "11", "12", "13", "14",
		"15", "16", "17", "18", "19", "20"})
	indices := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	actual, err := ByIndex(uniStream, target, indices)
	if err != nil {
		t.Fatal(err)
	}
	positionsEqual(t, actual, []string{"35", "36", "37", "38", "39", "40", "41",
		"42", "43", "44", "45", "46", "47"})
}

func TestByIndexRejectsGaps(t *testing.T) {
	mapped := []Position{Pos(1), Pos(2)}
	_, err := ByIndex(mapped, []Position{Pos(1), Gap}, []int{0, 1})
	if !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestByIndexOutOfRange(t *testing.T) {
	mapped := []Position{Pos(1), Pos(2)}
	if _, err := ByIndex(mapped, []Position{Pos(1)}, []int{5}); err == nil {
		t.Error("expected error for index outside mapping")
	}
}
