package uniprot

import (
	"os"
	"testing"
)

func loadTestEntry(t *testing.T) *UniProt {
	t.Helper()
	raw, err := os.ReadFile("./testdata/P12345.txt")
	if err != nil {
		t.Fatalf("cannot open file: %s", err)
	}

	u := &UniProt{ID: "P12345", Raw: raw}
	if err := u.extract(); err != nil {
		t.Fatal(err)
	}
	return u
}

func TestExtract(t *testing.T) {
	u := loadTestEntry(t)

	if u.Name != "Test protein" {
		t.Errorf("expected protein name Test protein, got %q", u.Name)
	}
	if u.Gene != "TST1" {
		t.Errorf("expected gene TST1, got %q", u.Gene)
	}
	if u.Organism != "Homo sapiens (Human)" {
		t.Errorf("expected organism Homo sapiens (Human), got %q", u.Organism)
	}

	expected := "MAGKLGSTYACDEFGHIKLMNPQRSTVWYA"
	if u.Sequence != expected {
		t.Errorf("expected sequence %s, got %s", expected, u.Sequence)
	}
}

func TestExtractPDBs(t *testing.T) {
	u := loadTestEntry(t)

	// Only the X-ray crystal is kept, the NMR entry is ignored.
	if len(u.PDBIDs) != 1 || u.PDBIDs[0] != "1ABC" {
		t.Errorf("expected PDB IDs [1ABC], got %v", u.PDBIDs)
	}
	if !u.PDBIDExists("1ABC") {
		t.Error("expected 1ABC to exist in entry")
	}
	if u.PDBIDExists("2XYZ") {
		t.Error("expected 2XYZ to be excluded from entry")
	}
}

func TestSubSequence(t *testing.T) {
	u := loadTestEntry(t)

	seq, err := u.SubSequence(1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if seq != "MAGKL" {
		t.Errorf("expected MAGKL, got %s", seq)
	}

	if _, err := u.SubSequence(25, 40); err == nil {
		t.Error("expected error for positions outside sequence")
	}
	if _, err := u.SubSequence(10, 5); err == nil {
		t.Error("expected error for inverted positions")
	}
}
