package numbering

// RemoveGaps returns the subsequence of concrete positions in s, in original
// order. The input is never mutated.
func RemoveGaps(s []Position) []Position {
	var out []Position
	for _, p := range s {
		if p.Known {
			out = append(out, p)
		}
	}
	return out
}

// RemoveGapsIndexed returns the concrete positions in s together with the
// original index of each survivor.
func RemoveGapsIndexed(s []Position) ([]Position, []int) {
	var out []Position
	var idx []int
	for i, p := range s {
		if p.Known {
			out = append(out, p)
			idx = append(idx, i)
		}
	}
	return out, idx
}

// Fragments splits s into maximal contiguous runs of concrete positions.
// A run ends where one or more gaps occur; empty runs are never emitted.
func Fragments(s []Position) [][]Position {
	runs, _ := FragmentsIndexed(s)
	return runs
}

// FragmentsIndexed returns the contiguous concrete runs of s along with the
// original indices of each run.
func FragmentsIndexed(s []Position) ([][]Position, [][]int) {
	var runs [][]Position
	var runIdx [][]int
	var cur []Position
	var curIdx []int

	for i, p := range s {
		if p.Known {
			cur = append(cur, p)
			curIdx = append(curIdx, i)
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, cur)
			runIdx = append(runIdx, curIdx)
			cur, curIdx = nil, nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
		runIdx = append(runIdx, curIdx)
	}

	return runs, runIdx
}
