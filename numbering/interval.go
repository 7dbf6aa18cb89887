package numbering

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Interval is an inclusive run of residue positions.
type Interval struct {
	Start int64
	End   int64
}

// Len returns the number of positions the interval covers.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start + 1
}

// Positions expands the interval into the residue positions it covers.
func (iv Interval) Positions() []int64 {
	out := make([]int64, 0, iv.Len())
	for p := iv.Start; p <= iv.End; p++ {
		out = append(out, p)
	}
	return out
}

func (iv Interval) String() string {
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}

// Ranges converts a set of residue positions into the sorted list of maximal
// contiguous closed intervals. Duplicates are allowed and input order is
// irrelevant.
func Ranges(positions []int64) []Interval {
	if len(positions) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(positions))
	unique := make([]int64, 0, len(positions))
	for _, p := range positions {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			unique = append(unique, p)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	var out []Interval
	start, prev := unique[0], unique[0]
	for _, p := range unique[1:] {
		if p > prev+1 {
			out = append(out, Interval{Start: start, End: prev})
			start = p
		}
		prev = p
	}
	out = append(out, Interval{Start: start, End: prev})

	return out
}

// Merge combines every pair of intervals that overlaps or is directly
// adjacent (gap of exactly one position), returning the minimal disjoint
// cover sorted ascending by start. The result does not depend on input
// order.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	out := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End+1 {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}

	return out
}

// ParseInterval parses a single "start-end" region token.
func ParseInterval(tok string) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(tok), "-")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("malformed region %q", tok)
	}

	start, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("malformed region %q: %v", tok, err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("malformed region %q: %v", tok, err)
	}
	if start > end {
		return Interval{}, fmt.Errorf("inverted region %q", tok)
	}

	return Interval{Start: start, End: end}, nil
}

// Consolidate parses a comma separated "start-end,start-end" region string,
// merges overlapping and adjacent regions, and drops merged regions shorter
// than minLen.
func Consolidate(regions string, minLen int64) ([]Interval, error) {
	var parsed []Interval
	for _, tok := range strings.Split(regions, ",") {
		iv, err := ParseInterval(tok)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, iv)
	}

	var out []Interval
	for _, iv := range Merge(parsed) {
		if iv.Len() >= minLen {
			out = append(out, iv)
		}
	}
	return out, nil
}
