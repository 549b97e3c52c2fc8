package mot

import "testing"

func TestSolveAssignmentPrefersLowerCost(t *testing.T) {
	cost := [][]float64{
		{1, 5},
		{5, 1},
	}
	got, err := solveAssignment(cost)
	if err != nil {
		t.Fatalf("solveAssignment: %v", err)
	}
	want := []int{0, 1}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSolveAssignmentAvoidsBigCost(t *testing.T) {
	cost := [][]float64{
		{BigCost, 0.1},
		{0.1, BigCost},
	}
	got, err := solveAssignment(cost)
	if err != nil {
		t.Fatalf("solveAssignment: %v", err)
	}
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("assignment did not avoid the gated pairs: %v", got)
	}
}

func TestSolveAssignmentEmpty(t *testing.T) {
	got, err := solveAssignment(nil)
	if err != nil {
		t.Fatalf("solveAssignment: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no assignments for an empty matrix, got %v", got)
	}
}

func TestSolveAssignmentRejectsNonSquare(t *testing.T) {
	cost := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	if _, err := solveAssignment(cost); err == nil {
		t.Error("expected an error for a non-square matrix")
	}
}

func TestSolveAssignmentReturnsPermutation(t *testing.T) {
	cost := [][]float64{
		{2, 4, 6},
		{6, 2, 4},
		{4, 6, 2},
	}
	got, err := solveAssignment(cost)
	if err != nil {
		t.Fatalf("solveAssignment: %v", err)
	}
	seen := make(map[int]bool)
	for _, col := range got {
		if seen[col] {
			t.Fatalf("column %d assigned twice in %v", col, got)
		}
		seen[col] = true
	}
}
