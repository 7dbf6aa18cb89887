package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tikz/ppiprep/fasta"
)

func TestReadComplexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complexes.csv")
	table := `pdb_id,chain1,chain2,uniprot1,uniprot2
1abc,A,B,P12345,Q67890
2xyz,C,D,P11111,P22222
`
	if err := os.WriteFile(path, []byte(table), 0644); err != nil {
		t.Fatal(err)
	}

	complexes, err := ReadComplexes(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(complexes) != 2 {
		t.Fatalf("expected 2 complexes, got %d", len(complexes))
	}

	expected := Complex{PDBID: "1abc", Chain1: "A", Chain2: "B", UniProt1: "P12345", UniProt2: "Q67890"}
	if complexes[0] != expected {
		t.Errorf("expected %+v, got %+v", expected, complexes[0])
	}
}

func TestReadComplexesMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complexes.csv")
	table := "pdb_id,chain1,chain2,uniprot1\n1abc,A,B,P12345\n"
	if err := os.WriteFile(path, []byte(table), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadComplexes(path); err == nil {
		t.Error("expected error for missing column")
	}
}

func TestDedupe(t *testing.T) {
	records := []fasta.Record{
		{Header: "P12345_A 2-8", Sequence: "AGKLGST"},
		{Header: "Q67890_B 1-4", Sequence: "MAGK"},
		{Header: "P12345_A 2-8", Sequence: "AGKLGST"},
	}

	out := dedupe(records)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Header != "P12345_A 2-8" || out[1].Header != "Q67890_B 1-4" {
		t.Errorf("unexpected order: %v, %v", out[0].Header, out[1].Header)
	}
}
