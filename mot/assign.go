package mot

import (
	"github.com/arthurkushman/go-hungarian"
	"github.com/pkg/errors"
)

// BigCost is the sentinel cost for a track/detection pair that gating has
// ruled out entirely. It dominates any allowed cost, which is bounded by 1.
const BigCost = 1e9

// solveAssignment finds the minimum-cost perfect matching on a square cost
// matrix via Kuhn-Munkres. github.com/arthurkushman/go-hungarian only
// exposes a maximum-weight solver, so the matrix is inverted around BigCost
// first: since every row/column of an N x N matrix is assigned exactly one
// entry regardless of which permutation is chosen, maximizing
// sum(BigCost-cost) over a permutation is equivalent to minimizing sum(cost)
// over the same permutation - the two differ only by the constant
// N*BigCost.
//
// The returned slice gives, for each row, the column it was assigned to.
func solveAssignment(cost [][]float64) ([]int, error) {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return nil, errors.Errorf("cost matrix is not square: row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if n == 0 {
		return nil, nil
	}

	benefit := make([][]float64, n)
	for i, row := range cost {
		brow := make([]float64, n)
		for j, c := range row {
			brow[j] = BigCost - c
		}
		benefit[i] = brow
	}

	assignments := hungarian.SolveMax(benefit)

	result := make([]int, n)
	for i := range result {
		result[i] = -1
	}
	for row, cols := range assignments {
		if row < 0 || row >= n {
			return nil, errors.Errorf("assignment solver returned out-of-range row %d", row)
		}
		for col := range cols {
			result[row] = col
			break
		}
	}

	seen := make([]bool, n)
	for row, col := range result {
		if col < 0 || col >= n {
			return nil, errors.Errorf("assignment solver left row %d unassigned", row)
		}
		if seen[col] {
			return nil, errors.Errorf("assignment solver returned column %d twice, not a permutation", col)
		}
		seen[col] = true
	}
	return result, nil
}
