package pdb

import (
	"os"
	"testing"
)

func loadTestPDB(t *testing.T) *PDB {
	t.Helper()
	raw, err := os.ReadFile("./testdata/mini.pdb")
	if err != nil {
		t.Fatalf("cannot open file: %s", err)
	}

	p := PDB{ID: "xxxx", RawPDB: raw}
	err = p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	return &p
}

func TestChains(t *testing.T) {
	p := loadTestPDB(t)

	if p.TotalLength != 9 {
		t.Errorf("expected 9 residues, got %d", p.TotalLength)
	}

	res := p.Chains["A"][11]
	if res.Name != "Methionine" {
		t.Errorf("expected Methionine in A-11, got %s", res.Name)
	}
	if len(res.Atoms) != 2 {
		t.Errorf("expected 2 atoms in A-11, got %d", len(res.Atoms))
	}

	res = p.Chains["B"][4]
	if res.Name != "Tyrosine" {
		t.Errorf("expected Tyrosine in B-4, got %s", res.Name)
	}

	if len(p.HetGroups) != 1 || p.HetGroups[0] != "HOH" {
		t.Errorf("expected HOH het group, got %v", p.HetGroups)
	}
}

func TestSeqRes(t *testing.T) {
	p := loadTestPDB(t)

	if len(p.SeqRes["A"]) != 7 {
		t.Fatalf("expected 7 SEQRES residues in A, got %d", len(p.SeqRes["A"]))
	}
	if p.SeqRes["A"][0].Name != "Methionine" {
		t.Errorf("expected Methionine in SEQRES A-1, got %s", p.SeqRes["A"][0].Name)
	}
	if p.SeqRes["B"][3].Name != "Tyrosine" {
		t.Errorf("expected Tyrosine in SEQRES B-4, got %s", p.SeqRes["B"][3].Name)
	}
}

func TestChainPositions(t *testing.T) {
	p := loadTestPDB(t)

	expected := []int64{11, 12, 13, 16, 17}
	actual := p.ChainPositions("A")
	if len(actual) != len(expected) {
		t.Fatalf("expected %d positions, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("position %d: expected %d, got %d", i, expected[i], actual[i])
		}
	}

	if seq := p.ChainSequence("A"); seq != "MAGKL" {
		t.Errorf("expected sequence MAGKL, got %s", seq)
	}
}

func TestCACoordinates(t *testing.T) {
	p := loadTestPDB(t)

	coords, err := p.CACoordinates("A", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 5 {
		t.Fatalf("expected 5 coordinates, got %d", len(coords))
	}
	if coords[1].X != 4.0 || coords[1].Y != 0.0 {
		t.Errorf("expected (4, 0) for A-12, got (%f, %f)", coords[1].X, coords[1].Y)
	}

	// Positions missing from the structure are skipped.
	coords, err = p.CACoordinates("A", []int64{11, 14, 17})
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 2 {
		t.Errorf("expected 2 coordinates, got %d", len(coords))
	}

	if _, err = p.CACoordinates("Z", nil); err == nil {
		t.Error("expected error for unknown chain")
	}
}

func TestDistances(t *testing.T) {
	p := loadTestPDB(t)

	d := ResiduesDistance(p.Chains["A"][11], p.Chains["A"][12])
	if d > 4.0 {
		t.Errorf("expected distance at most 4, got %f", d)
	}

	d = CoordsDistance(Coord{X: 0, Y: 0, Z: 0}, Coord{X: 3, Y: 4, Z: 0})
	if d != 5.0 {
		t.Errorf("expected distance 5, got %f", d)
	}
}

func testSIFTS() *SIFTS {
	return &SIFTS{
		UniProt: map[string]*Accession{
			"P12345": {
				Identifier: "TEST_HUMAN",
				Mappings: []*Mapping{
					{
						ChainID:  "A",
						PDBStart: &Position{ResidueNumber: 11},
						PDBEnd:   &Position{ResidueNumber: 17},
						UnpStart: 2,
						UnpEnd:   8,
					},
				},
			},
		},
	}
}

func TestChainMapping(t *testing.T) {
	p := loadTestPDB(t)
	p.SIFTS = testSIFTS()

	m, err := p.ChainMapping("P12345", "A")
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 7 {
		t.Fatalf("expected mapping over 7 residues, got %d", m.Len())
	}

	// Residues 14 and 15 are unresolved in the structure.
	expectedPDB := []string{"11", "12", "13", "null", "null", "16", "17"}
	expectedUni := []string{"2", "3", "4", "5", "6", "7", "8"}
	for i := range expectedPDB {
		if m.PDB[i].String() != expectedPDB[i] {
			t.Errorf("PDB stream %d: expected %s, got %s", i, expectedPDB[i], m.PDB[i])
		}
		if m.Uni[i].String() != expectedUni[i] {
			t.Errorf("UniProt stream %d: expected %s, got %s", i, expectedUni[i], m.Uni[i])
		}
	}

	if _, err := p.ChainMapping("Q99999", "A"); err == nil {
		t.Error("expected error for accession not in SIFTS")
	}
	if _, err := p.ChainMapping("P12345", "Z"); err == nil {
		t.Error("expected error for chain without SIFTS segments")
	}

	chains := p.MappedChains("P12345")
	if len(chains) != 1 || chains[0] != "A" {
		t.Errorf("expected mapped chains [A], got %v", chains)
	}
}

func TestGetChainMapping(t *testing.T) {
	sifts := testSIFTS()

	m, err := sifts.GetChainMapping("P12345", "A")
	if err != nil {
		t.Fatal(err)
	}
	if m.UnpStart != 2 || m.UnpEnd != 8 {
		t.Errorf("received unexpected mapping positions")
	}

	if _, err := sifts.GetChainMapping("P12345", "Z"); err == nil {
		t.Error("expected error for unknown chain")
	}
}
