package numbering

import (
	"errors"
	"fmt"
)

var (
	// ErrNotMapped signals a residue position absent from the source side of
	// a coordinate mapping. It points at a data quality problem upstream and
	// is never masked with a default value.
	ErrNotMapped = errors.New("position not in mapping")

	// ErrInvalidPosition signals a gap in a target stream that must contain
	// concrete positions only.
	ErrInvalidPosition = errors.New("invalid position in target")
)

// Mapping pairs the PDB and UniProt numbering of a chain's residues, as
// produced by a structure to sequence mapper such as SIFTS. Index i on both
// sides refers to the same physical residue; either side may hold a gap when
// the residue is absent from that numbering system.
type Mapping struct {
	PDB []Position
	Uni []Position
}

// NewMapping builds a Mapping from two parallel position streams.
func NewMapping(pdbStream, uniStream []Position) (*Mapping, error) {
	if len(pdbStream) != len(uniStream) {
		return nil, fmt.Errorf("parallel streams differ in length: %d PDB vs %d UniProt",
			len(pdbStream), len(uniStream))
	}
	return &Mapping{PDB: pdbStream, Uni: uniStream}, nil
}

// Len returns the number of residues covered by the mapping.
func (m *Mapping) Len() int {
	return len(m.PDB)
}

// ToUniProt re-expresses PDB numbered target positions in UniProt numbering,
// preserving length and order. Gaps in the target propagate to the output; a
// concrete target position absent from the PDB stream returns ErrNotMapped.
func (m *Mapping) ToUniProt(target []Position) ([]Position, error) {
	return convert(m.PDB, m.Uni, target)
}

// ToPDB re-expresses UniProt numbered target positions in PDB numbering.
func (m *Mapping) ToPDB(target []Position) ([]Position, error) {
	return convert(m.Uni, m.PDB, target)
}

func convert(src, dst, target []Position) ([]Position, error) {
	out := make([]Position, 0, len(target))
	for _, t := range target {
		if !t.Known {
			out = append(out, Gap)
			continue
		}
		idx := indexOf(src, t.Number)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNotMapped, t.Number)
		}
		out = append(out, dst[idx])
	}
	return out, nil
}

func indexOf(s []Position, n int64) int {
	for i, p := range s {
		if p.Known && p.Number == n {
			return i
		}
	}
	return -1
}

// ByIndex converts target positions through one side of a mapping using
// already known alignment indices, skipping the lookup by value. The target
// must be gap free; callers strip gaps beforehand with RemoveGapsIndexed.
func ByIndex(mapped []Position, target []Position, indices []int) ([]Position, error) {
	for _, t := range target {
		if !t.Known {
			return nil, ErrInvalidPosition
		}
	}

	out := make([]Position, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(mapped) {
			return nil, fmt.Errorf("index %d outside mapping of length %d", idx, len(mapped))
		}
		out = append(out, mapped[idx])
	}
	return out, nil
}
