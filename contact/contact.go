// Package contact builds binary residue contact maps between protein chains
// from alpha carbon coordinates.
package contact

import (
	"fmt"

	"github.com/tikz/ppiprep/pdb"
)

// Map is a binary contact map: Cells[i][j] is 1 when residue i of the first
// chain and residue j of the second chain are within the threshold distance.
type Map struct {
	Cells     [][]int8
	Threshold float64
}

// New computes the contact map between two coordinate sets at the given
// distance threshold.
func New(coords1, coords2 []pdb.Coord, threshold float64) *Map {
	cells := make([][]int8, len(coords1))
	for i, c1 := range coords1 {
		cells[i] = make([]int8, len(coords2))
		for j, c2 := range coords2 {
			if pdb.CoordsDistance(c1, c2) <= threshold {
				cells[i][j] = 1
			}
		}
	}

	return &Map{Cells: cells, Threshold: threshold}
}

// FromChains computes the inter-chain contact map for two chains of a
// structure, restricted to the given residue numbers of each chain. A nil
// position list selects the whole chain.
func FromChains(p *pdb.PDB, chain1, chain2 string, pos1, pos2 []int64, threshold float64) (*Map, error) {
	coords1, err := p.CACoordinates(chain1, pos1)
	if err != nil {
		return nil, fmt.Errorf("chain %s: %v", chain1, err)
	}
	coords2, err := p.CACoordinates(chain2, pos2)
	if err != nil {
		return nil, fmt.Errorf("chain %s: %v", chain2, err)
	}

	return New(coords1, coords2, threshold), nil
}

// Count returns the number of contacts in the map.
func (m *Map) Count() int {
	var n int
	for _, row := range m.Cells {
		for _, cell := range row {
			if cell == 1 {
				n++
			}
		}
	}
	return n
}

// ContactedRows returns the indices of first-chain residues with at least
// one contact.
func (m *Map) ContactedRows() []int {
	var rows []int
	for i, row := range m.Cells {
		for _, cell := range row {
			if cell == 1 {
				rows = append(rows, i)
				break
			}
		}
	}
	return rows
}
