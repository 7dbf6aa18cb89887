// Package numbering converts residue positions between the two numbering
// systems of a protein chain: the numbering stored in the PDB structure file
// and the numbering of the canonical UniProt sequence. Both systems can have
// gaps, so every routine carries an explicit missing marker through its
// conversions instead of inventing positions for unresolved residues.
package numbering

import (
	"strconv"
	"strings"
)

// Missing is the canonical token for a residue absent from a numbering
// system, as written in raw mapping tables.
const Missing = "null"

// Position is a single residue position: either a concrete 1-based residue
// number or a gap.
type Position struct {
	Number int64
	Known  bool
}

// Gap is the missing-residue Position.
var Gap = Position{}

// Pos returns a concrete Position for the given residue number.
func Pos(n int64) Position {
	return Position{Number: n, Known: true}
}

// String renders the residue number in decimal, or the missing marker for a
// gap.
func (p Position) String() string {
	if !p.Known {
		return Missing
	}
	return strconv.FormatInt(p.Number, 10)
}

// NormalizeToken coerces a raw table cell into a canonical token: the decimal
// residue number, or the given marker when the cell holds a missing value.
// Fractional numbers are truncated. A cell that is not a number keeps only
// its digits; a cell with no digits at all normalizes to the empty token,
// which callers may encounter with sparse annotation formats.
func NormalizeToken(raw string, marker string) string {
	tok := strings.TrimSpace(raw)
	switch strings.ToLower(tok) {
	case "", "nan", Missing:
		return marker
	}

	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}

	var digits strings.Builder
	for _, ch := range tok {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	return digits.String()
}

// Normalize applies NormalizeToken to every cell of a raw stream, preserving
// length and order.
func Normalize(raw []string, marker string) []string {
	out := make([]string, len(raw))
	for i, tok := range raw {
		out[i] = NormalizeToken(tok, marker)
	}
	return out
}

// ParseToken converts a raw table cell into a Position. Missing markers and
// cells without digits become gaps.
func ParseToken(raw string) Position {
	tok := NormalizeToken(raw, Missing)
	if tok == Missing || tok == "" {
		return Gap
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return Gap
	}
	return Pos(n)
}

// ParseStream converts a raw token stream into Positions, preserving length
// and order.
func ParseStream(raw []string) []Position {
	out := make([]Position, len(raw))
	for i, tok := range raw {
		out[i] = ParseToken(tok)
	}
	return out
}

// Numbers returns the residue numbers of the concrete positions in s, in
// order, skipping gaps.
func Numbers(s []Position) []int64 {
	var out []int64
	for _, p := range s {
		if p.Known {
			out = append(out, p.Number)
		}
	}
	return out
}
