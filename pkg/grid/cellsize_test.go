package grid

import (
	"math"
	"testing"
)

func TestCellFractionControlPoints(t *testing.T) {
	points := map[int]float64{
		0:   0.04,
		2:   0.04,
		8:   0.02,
		12:  0.02,
		28:  0.02,
		52:  0.02,
		88:  0.02,
		200: 0.01,
	}

	for count, want := range points {
		got := CellFraction(count)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("CellFraction(%d) = %f, want %f", count, got, want)
		}
	}
}

func TestCellFractionClamping(t *testing.T) {
	if got := CellFraction(0); got != 0.04 {
		t.Errorf("CellFraction(0) = %f, want 0.04", got)
	}
	if got := CellFraction(1000); got != 0.01 {
		t.Errorf("CellFraction(1000) = %f, want 0.01", got)
	}
}

func TestCellFractionInterpolation(t *testing.T) {
	// Midway between (2, 0.04) and (8, 0.02)
	got := CellFraction(5)
	want := 0.03
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CellFraction(5) = %f, want %f", got, want)
	}

	// Inside the (88, 0.02) -> (200, 0.01) interval
	got = CellFraction(144)
	want = 0.02 + (144.0-88.0)/(200.0-88.0)*(0.01-0.02)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CellFraction(144) = %f, want %f", got, want)
	}
}

func TestCellFractionMonotonicNonIncreasing(t *testing.T) {
	prev := CellFraction(0)
	for count := 1; count <= 250; count++ {
		cur := CellFraction(count)
		if cur > prev+1e-12 {
			t.Fatalf("CellFraction increased at %d: %f -> %f", count, prev, cur)
		}
		prev = cur
	}
}
