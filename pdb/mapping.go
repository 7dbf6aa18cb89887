package pdb

import (
	"errors"
	"fmt"

	"github.com/tikz/ppiprep/numbering"
)

// ChainMapping builds the parallel PDB and UniProt position streams for a
// chain out of the SIFTS segments and the residues actually observed in the
// structure. One stream slot per UniProt position covered by the segments;
// the PDB side holds a gap for residues unresolved in the structure. The
// returned mapping feeds the numbering conversions.
func (pdb *PDB) ChainMapping(accession string, chain string) (*numbering.Mapping, error) {
	if pdb.SIFTS == nil {
		return nil, errors.New("no SIFTS data attached to entry")
	}

	acc, ok := pdb.SIFTS.UniProt[accession]
	if !ok {
		return nil, fmt.Errorf("accession %s not in SIFTS", accession)
	}

	var pdbStream, uniStream []numbering.Position
	for _, m := range acc.Mappings {
		if m.ChainID != chain {
			continue
		}

		for u := m.UnpStart; u <= m.UnpEnd; u++ {
			pos := u - m.UnpStart + m.PDBStart.ResidueNumber
			uniStream = append(uniStream, numbering.Pos(u))

			if _, observed := pdb.Chains[chain][pos]; observed {
				pdbStream = append(pdbStream, numbering.Pos(pos))
			} else {
				pdbStream = append(pdbStream, numbering.Gap)
			}
		}
	}

	if len(uniStream) == 0 {
		return nil, fmt.Errorf("no SIFTS segments for accession %s chain %s", accession, chain)
	}

	return numbering.NewMapping(pdbStream, uniStream)
}

// MappedChains returns the chain IDs that SIFTS maps to the given accession.
func (pdb *PDB) MappedChains(accession string) []string {
	if pdb.SIFTS == nil {
		return nil
	}
	acc, ok := pdb.SIFTS.UniProt[accession]
	if !ok {
		return nil
	}

	var chains []string
	seen := make(map[string]struct{})
	for _, m := range acc.Mappings {
		if _, ok := seen[m.ChainID]; !ok {
			seen[m.ChainID] = struct{}{}
			chains = append(chains, m.ChainID)
		}
	}
	return chains
}
