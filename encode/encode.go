// Package encode turns amino acid sequences into the fixed numeric
// representations consumed by model training: one hot vectors and integer
// tokens, optionally padded to a fixed length.
package encode

import "fmt"

// AminoAcids is the encoding alphabet: the 20 standard residues plus X for
// any unknown residue. Ambiguity codes (B, Z, J) also encode as X.
const AminoAcids = "ACDEFGHIKLMNPQRSTVWYX"

const padToken = 0 // token reserved for padding positions

// alphabetIndex returns the index of a residue in the alphabet, falling
// back to X for residues outside it.
func alphabetIndex(res byte) int {
	for i := 0; i < len(AminoAcids); i++ {
		if AminoAcids[i] == res {
			return i
		}
	}
	return len(AminoAcids) - 1 // X
}

// OneHot encodes a sequence as per-residue one hot vectors of width
// len(AminoAcids). With maxLen > 0 the output is padded with zero vectors
// up to maxLen; a sequence longer than maxLen is an error.
func OneHot(seq string, maxLen int) ([][]float32, error) {
	length := len(seq)
	if maxLen > 0 {
		if length > maxLen {
			return nil, fmt.Errorf("sequence length %d exceeds maximum %d", length, maxLen)
		}
		length = maxLen
	}

	out := make([][]float32, length)
	for i := range out {
		out[i] = make([]float32, len(AminoAcids))
		if i < len(seq) {
			out[i][alphabetIndex(seq[i])] = 1
		}
	}
	return out, nil
}

// Tokens encodes a sequence as integer tokens, one per residue, starting at
// 1. With maxLen > 0 the output is padded with the pad token up to maxLen;
// a sequence longer than maxLen is an error.
func Tokens(seq string, maxLen int) ([]int64, error) {
	length := len(seq)
	if maxLen > 0 {
		if length > maxLen {
			return nil, fmt.Errorf("sequence length %d exceeds maximum %d", length, maxLen)
		}
		length = maxLen
	}

	out := make([]int64, length)
	for i := 0; i < length; i++ {
		if i < len(seq) {
			out[i] = int64(alphabetIndex(seq[i])) + 1
		} else {
			out[i] = padToken
		}
	}
	return out, nil
}
