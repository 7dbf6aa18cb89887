// Package uniprot fetches and parses UniProt TXT records for the canonical
// sequence data the dataset pipeline aligns structures and annotations
// against.
package uniprot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tikz/ppiprep/http"
)

// UniProt contains relevant protein data for a single accession.
type UniProt struct {
	ID       string   `json:"id"`       // accession ID
	URL      string   `json:"url"`      // page URL for the entry
	TXTURL   string   `json:"txtUrl"`   // TXT API URL for the entry
	Name     string   `json:"name"`     // protein name
	Gene     string   `json:"gene"`     // gene code
	Organism string   `json:"organism"` // organism
	Sequence string   `json:"sequence"` // canonical sequence
	PDBIDs   []string `json:"pdbIds"`   // crystal structure PDB IDs
	Raw      []byte   `json:"-"`        // TXT API raw bytes
}

// NewUniProt constructs an instance from an UniProt accession ID, fetching
// and parsing the TXT record.
func NewUniProt(uniprotID string) (*UniProt, error) {
	url := "https://www.uniprot.org/uniprot/" + uniprotID
	txtURL := url + ".txt"
	raw, err := http.Get(txtURL)
	if err != nil {
		return nil, fmt.Errorf("get UniProt accession %v: %v", uniprotID, err)
	}

	u := &UniProt{
		ID:     uniprotID,
		URL:    url,
		TXTURL: txtURL,
		Raw:    raw,
	}

	err = u.extract()
	if err != nil {
		return nil, fmt.Errorf("extract %v: %v", uniprotID, err)
	}

	return u, nil
}

// extract parses the TXT response.
func (u *UniProt) extract() error {
	err := u.extractSequence()
	if err != nil {
		return fmt.Errorf("get seq: %v", err)
	}

	err = u.extractPDBs()
	if err != nil {
		return fmt.Errorf("extracting crystals from UniProt TXT: %v", err)
	}

	err = u.extractNames()
	if err != nil {
		return fmt.Errorf("extracting names from UniProt TXT: %v", err)
	}

	return nil
}

// extractPDBs parses the TXT for PDB IDs and populates UniProt.PDBIDs.
// X-ray only, ignore others (NMR, etc).
func (u *UniProt) extractPDBs() error {
	r, _ := regexp.Compile("PDB;[ ]*(.*?);[ ]*(X.*?ray);[ ]*([0-9\\.]*).*?;.*?\n")
	matches := r.FindAllStringSubmatch(string(u.Raw), -1)

	for _, m := range matches {
		u.PDBIDs = append(u.PDBIDs, m[1])
	}

	return nil
}

// extractSequence parses the canonical sequence.
func (u *UniProt) extractSequence() error {
	r, _ := regexp.Compile("(?ms)^SQ.*?$(.*?)//")
	matches := r.FindAllStringSubmatch(string(u.Raw), -1)

	if len(matches) == 0 {
		return errors.New("canonical sequence not found")
	}

	seqGroup := matches[0][1]
	sequence := strings.ReplaceAll(seqGroup, " ", "")
	sequence = strings.ReplaceAll(sequence, "\n", "")

	u.Sequence = sequence

	return nil
}

// extractNames parses protein, gene and organism names.
func (u *UniProt) extractNames() error {
	r, _ := regexp.Compile("(?m)^DE.*?Name.*?Full=(.*?)(;| {)")
	matches := r.FindAllStringSubmatch(string(u.Raw), -1)

	if len(matches) == 0 {
		return errors.New("protein name not found")
	}
	u.Name = matches[0][1]

	r, _ = regexp.Compile("(?m)^GN.*?=(.*?)[;| ]")
	matches = r.FindAllStringSubmatch(string(u.Raw), -1)

	if len(matches) == 0 {
		return errors.New("gene name not found")
	}
	u.Gene = matches[0][1]

	r, _ = regexp.Compile("(?m)^OS[ ]+(.*?)\\.")
	matches = r.FindAllStringSubmatch(string(u.Raw), -1)

	if len(matches) == 0 {
		return errors.New("organism name not found")
	}
	u.Organism = matches[0][1]

	return nil
}

// PDBIDExists returns true if the given PDB ID is included in this UniProt
// entry, false otherwise.
func (u *UniProt) PDBIDExists(pdbID string) bool {
	for _, id := range u.PDBIDs {
		if id == pdbID {
			return true
		}
	}
	return false
}

// SubSequence returns the 1-based inclusive sequence stretch between two
// UniProt positions.
func (u *UniProt) SubSequence(start, end int64) (string, error) {
	if start < 1 || end > int64(len(u.Sequence)) || start > end {
		return "", fmt.Errorf("positions %d-%d outside sequence of length %d", start, end, len(u.Sequence))
	}
	return u.Sequence[start-1 : end], nil
}
