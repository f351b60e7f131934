package geom

import (
	"math"
	"sort"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name      string
		a, b, c   float64
		wantRoots []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -4, []float64{2}},
		{"all zero", 0, 0, 0, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadratic(tt.a, tt.b, tt.c)
			if len(got) != len(tt.wantRoots) {
				t.Fatalf("SolveQuadratic() = %v, want %v", got, tt.wantRoots)
			}
			for i := range got {
				if math.Abs(got[i]-tt.wantRoots[i]) > 1e-9 {
					t.Errorf("root[%d] = %v, want %v", i, got[i], tt.wantRoots[i])
				}
			}
		})
	}
}

func TestSolveCubic_ThreeRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	got := SolveCubic(1, -6, 11, -6)
	sort.Float64s(got)
	want := []float64{1, 2, 3}
	if len(got) != 3 {
		t.Fatalf("SolveCubic() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("root[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSolveCubicInUnitInterval(t *testing.T) {
	// x^3 - 0.125 = 0 has a single real root at 0.5.
	got := SolveCubicInUnitInterval(1, 0, 0, -0.125)
	if len(got) != 1 || math.Abs(got[0]-0.5) > 1e-9 {
		t.Errorf("SolveCubicInUnitInterval() = %v, want [0.5]", got)
	}
}
