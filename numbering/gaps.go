package numbering

import "fmt"

// PadToReference expands target to the reference frame, placing a gap
// wherever the reference holds a position absent from target. With fillRef
// the reference position itself is placed instead of a gap. The output is
// always parallel to ref.
func PadToReference(ref, target []int64, fillRef bool) []Position {
	want := make(map[int64]struct{}, len(target))
	for _, p := range target {
		want[p] = struct{}{}
	}

	out := make([]Position, 0, len(ref))
	for _, p := range ref {
		if _, ok := want[p]; ok || fillRef {
			out = append(out, Pos(p))
			continue
		}
		out = append(out, Gap)
	}
	return out
}

// AlignToQuery inserts gap tokens into a per-residue data stream so that it
// becomes parallel to a query position stream. targetPos gives the position
// of each element of target in the query's numbering; wherever the query
// holds a gap, or a position not covered by targetPos, gapToken is inserted.
// Every residue of targetPos must be matched by the query frame, otherwise
// the 1:1 correspondence is violated and an error is returned.
func AlignToQuery(query, targetPos []Position, target []string, gapToken string) ([]string, error) {
	if len(targetPos) != len(target) {
		return nil, fmt.Errorf("target length %d does not match target positions length %d",
			len(target), len(targetPos))
	}

	out := make([]string, 0, len(query))
	j := 0
	for _, q := range query {
		if q.Known && j < len(targetPos) && targetPos[j].Known && targetPos[j].Number == q.Number {
			out = append(out, target[j])
			j++
			continue
		}
		out = append(out, gapToken)
	}

	if j != len(targetPos) {
		return nil, fmt.Errorf("%d target residues not covered by the query frame", len(targetPos)-j)
	}
	return out, nil
}
