package mot

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 0.2, Y: 0.3}
	p2 := Point{X: 0.5, Y: 0.7}
	correctAnswer := 0.5
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
}

func TestIoUIdentical(t *testing.T) {
	r := Rectangle{X: 0.2, Y: 0.2, Width: 0.1, Height: 0.1}
	if answer := IoU(r, r); math.Abs(answer-1.0) > eps {
		t.Errorf("IoU of a rectangle with itself should be 1, got %v", answer)
	}
}

func TestIoUDisjoint(t *testing.T) {
	r1 := Rectangle{X: 0.0, Y: 0.0, Width: 0.1, Height: 0.1}
	r2 := Rectangle{X: 0.5, Y: 0.5, Width: 0.1, Height: 0.1}
	if answer := IoU(r1, r2); answer != 0.0 {
		t.Errorf("Wrong answer: %v, correct answer: 0", answer)
	}
}

func TestIoUPartialOverlap(t *testing.T) {
	r1 := Rectangle{X: 0.0, Y: 0.0, Width: 0.2, Height: 0.2}
	r2 := Rectangle{X: 0.1, Y: 0.1, Width: 0.2, Height: 0.2}
	// Intersection: 0.1x0.1 = 0.01. Union: 0.04+0.04-0.01 = 0.07.
	correnctAnswer := 0.01 / 0.07
	answer := IoU(r1, r2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}

func TestCenterDistance(t *testing.T) {
	r1 := Rectangle{X: 0.0, Y: 0.0, Width: 0.2, Height: 0.2}
	r2 := Rectangle{X: 0.3, Y: 0.0, Width: 0.2, Height: 0.2}
	// Centers are (0.1, 0.1) and (0.4, 0.1), 0.3 apart.
	answer := centerDistance(r1, r2)
	if math.Abs(answer-0.3) > eps {
		t.Errorf("Wrong answer: %v, correct answer: 0.3", answer)
	}
}
