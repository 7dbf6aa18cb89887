package pdb

import "fmt"

// Coord is a single point in the structure's coordinate frame.
type Coord struct {
	X, Y, Z float64
}

// CACoordinates returns the alpha carbon coordinates for the given residue
// numbers of a chain, in the given order. A nil positions list selects every
// residue of the chain in ascending residue number order. Residues absent
// from the structure or without an alpha carbon are skipped.
func (pdb *PDB) CACoordinates(chain string, positions []int64) ([]Coord, error) {
	residues, ok := pdb.Chains[chain]
	if !ok {
		return nil, fmt.Errorf("chain %s not in structure", chain)
	}

	if positions == nil {
		positions = pdb.ChainPositions(chain)
	}

	var coords []Coord
	for _, pos := range positions {
		res, ok := residues[pos]
		if !ok {
			continue
		}
		ca := res.CA()
		if ca == nil {
			continue
		}
		coords = append(coords, Coord{X: ca.X, Y: ca.Y, Z: ca.Z})
	}

	return coords, nil
}
