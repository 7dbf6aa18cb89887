package encode

import "testing"

func TestOneHot(t *testing.T) {
	oh, err := OneHot("AC", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(oh) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(oh))
	}

	// A is alphabet position 0, C is position 1.
	if oh[0][0] != 1 || oh[1][1] != 1 {
		t.Error("expected hot cells at A=0 and C=1")
	}

	var sum float32
	for _, row := range oh {
		for _, cell := range row {
			sum += cell
		}
	}
	if sum != 2 {
		t.Errorf("expected exactly one hot cell per residue, total %f", sum)
	}
}

func TestOneHotUnknownResidue(t *testing.T) {
	oh, err := OneHot("B", 0)
	if err != nil {
		t.Fatal(err)
	}
	// Ambiguity codes fall back to X, the last alphabet position.
	if oh[0][len(AminoAcids)-1] != 1 {
		t.Error("expected B to encode as X")
	}
}

func TestOneHotPadding(t *testing.T) {
	oh, err := OneHot("AC", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(oh) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(oh))
	}
	for _, cell := range oh[4] {
		if cell != 0 {
			t.Error("expected zero vector for padding row")
		}
	}

	if _, err := OneHot("ACDEFG", 5); err == nil {
		t.Error("expected error for sequence longer than maximum")
	}
}

func TestTokens(t *testing.T) {
	tokens, err := Tokens("ACX", 5)
	if err != nil {
		t.Fatal(err)
	}

	expected := []int64{1, 2, 21, 0, 0}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("token %d: expected %d, got %d", i, expected[i], tokens[i])
		}
	}
}
