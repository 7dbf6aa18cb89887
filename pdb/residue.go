package pdb

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var residueNames = [...][3]string{
	{"Alanine", "Ala", "A"},
	{"Arginine", "Arg", "R"},
	{"Asparagine", "Asn", "N"},
	{"Aspartic acid", "Asp", "D"},
	{"Cysteine", "Cys", "C"},
	{"Glutamic acid", "Glu", "E"},
	{"Glutamine", "Gln", "Q"},
	{"Glycine", "Gly", "G"},
	{"Histidine", "His", "H"},
	{"Isoleucine", "Ile", "I"},
	{"Leucine", "Leu", "L"},
	{"Lysine", "Lys", "K"},
	{"Methionine", "Met", "M"},
	{"Phenylalanine", "Phe", "F"},
	{"Proline", "Pro", "P"},
	{"Serine", "Ser", "S"},
	{"Threonine", "Thr", "T"},
	{"Tryptophan", "Trp", "W"},
	{"Tyrosine", "Tyr", "Y"},
	{"Valine", "Val", "V"},
}

// Residue represents a single residue from the PDB structure.
type Residue struct {
	Chain          string  `json:"chain"`
	StructPosition int64   `json:"structPosition"` // residue number as informed in the ATOM column
	Name           string  `json:"-"`
	Name1          string  `json:"name1"`
	Name3          string  `json:"-"`
	Atoms          []*Atom `json:"-"`
}

// IsAminoacid returns true if the given letter is an aminoacid, false otherwise.
func IsAminoacid(letter string) bool {
	for _, res := range residueNames {
		if res[2] == letter {
			return true
		}
	}
	return false
}

// AminoacidNames receives a name and returns all the possible representations as a string.
func AminoacidNames(input string) (string, string, string) {
	s := strings.Title(strings.ToLower(input))
	for _, res := range residueNames {
		for _, n := range res {
			if n == s {
				return res[0], res[1], res[2]
			}
		}
	}

	return input, "Unk", "X"
}

// NewResidue constructs a new residue given a chain, position and aminoacid name.
// The name is case-insensitive and can be either a full aminoacid name, one or three letter abbreviation.
func NewResidue(chain string, pos int64, input string) *Residue {
	name, abbrv3, abbrv1 := AminoacidNames(input)

	return &Residue{
		Chain:          chain,
		StructPosition: pos,
		Name:           name,
		Name1:          abbrv1,
		Name3:          abbrv3,
	}
}

// CA returns the alpha carbon atom of the residue, or nil when it is absent
// from the structure.
func (r *Residue) CA() *Atom {
	for _, atom := range r.Atoms {
		if atom.Name == "CA" {
			return atom
		}
	}
	return nil
}

// ExtractSeqRes parses the raw PDB for SEQRES records containing the primary sequence.
func (pdb *PDB) ExtractSeqRes() error {
	regex, _ := regexp.Compile("SEQRES[ ]*.*?[ ]+(.*?)[ ]+([0-9]*)[ ]*([A-Z ]*)")
	matches := regex.FindAllStringSubmatch(string(pdb.RawPDB), -1)
	if len(matches) == 0 {
		return errors.New("SEQRES not found")
	}

	pdb.SeqRes = make(map[string][]*Residue)
	for _, match := range matches {
		chain := match[1]
		resSplit := strings.Split(match[3], " ")
		for i, resStr := range resSplit {
			if resStr != "" {
				res := NewResidue(chain, int64(i), resStr)
				pdb.SeqRes[chain] = append(pdb.SeqRes[chain], res)
			}
		}
	}

	return nil
}

// ExtractResidues extracts data from the ATOM and HETATM records and parses them.
func (pdb *PDB) ExtractResidues() error {
	atoms, err := pdb.extractPDBATMRecords("ATOM")
	if err != nil {
		return fmt.Errorf("extract ATOM records: %v", err)
	}

	hetatms, _ := pdb.extractPDBATMRecords("HETATM")

	pdb.Atoms = atoms
	pdb.HetAtoms = hetatms

	err = pdb.ExtractPDBChains()
	if err != nil {
		return fmt.Errorf("extract PDB chains: %v", err)
	}

	return nil
}

// ExtractPDBChains parses the residue chains.
func (pdb *PDB) ExtractPDBChains() error {
	atoms := pdb.Atoms
	if len(atoms) == 0 {
		return errors.New("empty atoms list")
	}

	chains := make(map[string]map[int64]*Residue)

	for _, atom := range atoms {
		chain, chainOk := chains[atom.Chain]
		if !chainOk {
			chains[atom.Chain] = make(map[int64]*Residue)
			chain = chains[atom.Chain]
		}

		res, posOk := chain[atom.ResidueNumber]
		if !posOk {
			res = NewResidue(atom.Chain, atom.ResidueNumber, atom.Residue)
			chain[atom.ResidueNumber] = res
		}
		res.Atoms = append(res.Atoms, atom)
	}

	pdb.Chains = chains
	pdb.TotalLength = 0
	for _, chain := range pdb.Chains {
		pdb.TotalLength += int64(len(chain))
	}

	return nil
}

// ChainPositions returns the residue numbers observed in a chain, ascending.
func (pdb *PDB) ChainPositions(chain string) []int64 {
	positions := make([]int64, 0, len(pdb.Chains[chain]))
	for pos := range pdb.Chains[chain] {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	return positions
}

// ChainSequence returns the one letter sequence of the residues observed in
// a chain, in residue number order.
func (pdb *PDB) ChainSequence(chain string) string {
	var b strings.Builder
	for _, pos := range pdb.ChainPositions(chain) {
		b.WriteString(pdb.Chains[chain][pos].Name1)
	}
	return b.String()
}
