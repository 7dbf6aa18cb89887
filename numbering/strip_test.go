package numbering

import "testing"

func TestRemoveGaps(t *testing.T) {
	raw := []string{"null", "null", "11", "12", "13", "14", "15", "16.0", "17",
		"18.0", "20.0", "null", "null", "null", "null", "25.0", "26.0", "27.0", "28.0"}
	expected := []int64{11, 12, 13, 14, 15, 16, 17, 18, 20, 25, 26, 27, 28}

	actual := RemoveGaps(ParseStream(raw))
	if len(actual) != len(expected) {
		t.Fatalf("expected %d positions, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if !actual[i].Known || actual[i].Number != expected[i] {
			t.Errorf("position %d: expected %d, got %v", i, expected[i], actual[i])
		}
	}
}

func TestRemoveGapsIndexed(t *testing.T) {
	stream := []Position{Gap, Pos(3), Gap, Pos(5), Pos(6)}
	pos, idx := RemoveGapsIndexed(stream)

	expectedIdx := []int{1, 3, 4}
	if len(pos) != len(expectedIdx) || len(idx) != len(expectedIdx) {
		t.Fatalf("expected %d survivors, got %d positions and %d indices",
			len(expectedIdx), len(pos), len(idx))
	}
	for i, want := range expectedIdx {
		if idx[i] != want {
			t.Errorf("index %d: expected %d, got %d", i, want, idx[i])
		}
	}
}

func TestFragments(t *testing.T) {
	raw := []string{"null", "null", "11", "12", "13", "14", "15", "16", "17", "18",
		"20", "null", "null", "null", "null", "25", "26", "27", "28"}
	expected := [][]int64{
		{11, 12, 13, 14, 15, 16, 17, 18, 20},
		{25, 26, 27, 28},
	}

	actual := Fragments(ParseStream(raw))
	if len(actual) != len(expected) {
		t.Fatalf("expected %d runs, got %d", len(expected), len(actual))
	}
	for i, run := range expected {
		if len(actual[i]) != len(run) {
			t.Fatalf("run %d: expected %d positions, got %d", i, len(run), len(actual[i]))
		}
		for j, want := range run {
			if actual[i][j].Number != want {
				t.Errorf("run %d position %d: expected %d, got %d", i, j, want, actual[i][j].Number)
			}
		}
	}
}

func TestFragmentsEmptyRuns(t *testing.T) {
	stream := []Position{Gap, Gap, Gap}
	if runs := Fragments(stream); len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	stream = []Position{Pos(1), Gap, Gap, Pos(4)}
	runs, idx := FragmentsIndexed(stream)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if idx[0][0] != 0 || idx[1][0] != 3 {
		t.Errorf("expected run indices 0 and 3, got %d and %d", idx[0][0], idx[1][0])
	}
}
