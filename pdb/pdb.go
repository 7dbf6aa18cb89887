// Package pdb fetches and parses PDB structure files, and exposes the
// residue level data the dataset pipeline needs: chains, alpha carbon
// coordinates and the SIFTS position mappings against UniProt.
package pdb

import (
	"fmt"
	"os"

	"github.com/tikz/ppiprep/http"
)

// PDB represents a single structure entry.
type PDB struct {
	ID     string `json:"id"`     // PDB ID
	URL    string `json:"url"`    // RCSB web page URL
	PDBURL string `json:"pdbUrl"` // RCSB download URL for the PDB file

	TotalLength int64 `json:"totalLength"` // total residue count over all chains

	Atoms     []*Atom  `json:"-"`         // ATOM records in the structure
	HetAtoms  []*Atom  `json:"-"`         // HETATM records in the structure
	HetGroups []string `json:"hetGroups"` // HET groups in the structure

	SIFTS  *SIFTS                        // EBI SIFTS data for residue position mapping
	SeqRes map[string][]*Residue         `json:"-"`      // chain ID to SEQRES residues
	Chains map[string]map[int64]*Residue `json:"chains"` // chain ID and ATOM residue number to residue

	RawPDB    []byte `json:"-"` // PDB file raw data
	LocalPath string `json:"-"` // local path for the PDB file
}

// NewPDBFromID constructs a new instance from a PDB ID, fetching and parsing
// the structure file and the SIFTS mappings.
func NewPDBFromID(pdbID string) (*PDB, error) {
	pdb := PDB{ID: pdbID}

	err := pdb.Load()
	if err != nil {
		return nil, err
	}
	return &pdb, nil
}

// NewPDBFromFile constructs a new instance from a structure file on disk.
// No SIFTS mappings are fetched; callers that need position conversion use
// NewPDBFromID or attach them separately.
func NewPDBFromFile(path string) (*PDB, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read PDB file: %v", err)
	}

	pdb := PDB{RawPDB: raw, LocalPath: path}
	err = pdb.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse: %v", err)
	}
	return &pdb, nil
}

// NewPDBFromRaw constructs a new instance from raw bytes, and only extracts
// ATOM records. Useful for parsing PDB output files from external tools.
func NewPDBFromRaw(raw []byte) (*PDB, error) {
	pdb := PDB{RawPDB: raw}

	err := pdb.ExtractResidues()
	if err != nil {
		return nil, fmt.Errorf("parse: %v", err)
	}
	return &pdb, nil
}

// Load fetches and parses the necessary data.
func (pdb *PDB) Load() error {
	err := pdb.Fetch()
	if err != nil {
		return fmt.Errorf("fetch data: %v", err)
	}

	err = pdb.Parse()
	if err != nil {
		return fmt.Errorf("parse: %v", err)
	}
	return nil
}

// Parse parses the raw PDB text.
func (pdb *PDB) Parse() error {
	err := pdb.ExtractSeqRes()
	if err != nil {
		return fmt.Errorf("extract SEQRES: %v", err)
	}

	err = pdb.ExtractResidues()
	if err != nil {
		return fmt.Errorf("extract PDB residues: %v", err)
	}
	return nil
}

// Fetch downloads all external data for the entry.
func (pdb *PDB) Fetch() error {
	urlPDB := "https://files.rcsb.org/download/" + pdb.ID + ".pdb"
	rawPDB, err := http.Get(urlPDB)
	if err != nil {
		return fmt.Errorf("download PDB file: %v", err)
	}

	pdb.URL = "https://www.rcsb.org/structure/" + pdb.ID
	pdb.PDBURL = urlPDB
	pdb.RawPDB = rawPDB

	err = pdb.getSIFTSMappings()
	if err != nil {
		return fmt.Errorf("SIFTS: %v", err)
	}
	return nil
}

// WriteFile writes the raw PDB contents to a file.
func (pdb *PDB) WriteFile(path string) error {
	err := os.WriteFile(path, pdb.RawPDB, 0644)
	if err != nil {
		return fmt.Errorf("write PDB file: %v", err)
	}

	pdb.LocalPath = path
	return nil
}
