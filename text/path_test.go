package text

import (
	"math"
	"testing"
)

func TestPathData(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  string
	}{
		{
			name:  "empty",
			build: func(*Path) {},
			want:  "",
		},
		{
			name: "integers and negatives",
			build: func(p *Path) {
				p.MoveTo(10, 20)
				p.LineTo(30.5, -4.25)
				p.Close()
			},
			want: "M10 20L30.50-4.25Z",
		},
		{
			name: "quad and cubic",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.QuadTo(1.005, -2, 3, 4)
				p.CubeTo(-1, -2, 3.333, 4, 5, 6)
			},
			want: "M0 0Q1.00-2 3 4C-1-2 3.33 4 5 6",
		},
		{
			name: "negative zero",
			build: func(p *Path) {
				p.MoveTo(math.Copysign(0, -1), 1)
			},
			want: "M0 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			tt.build(&p)
			if got := p.Data(PathDataPrecision); got != tt.want {
				t.Errorf("Data() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathBoundsIncludesCurveExtrema(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(50, 100, 100, 0)

	got := p.Bounds()
	want := BBox{X1: 0, Y1: 0, X2: 100, Y2: 50}
	if math.Abs(got.X1-want.X1) > 1e-9 || math.Abs(got.Y1-want.Y1) > 1e-9 ||
		math.Abs(got.X2-want.X2) > 1e-9 || math.Abs(got.Y2-want.Y2) > 1e-9 {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	var p Path
	if !p.Bounds().IsEmpty() {
		t.Error("Bounds() of empty path is not empty")
	}
	if !p.Empty() {
		t.Error("Empty() = false for empty path")
	}
	p.MoveTo(3, 4)
	if !p.Empty() {
		t.Error("Empty() = false for a lone MoveTo")
	}
}

func TestPathLength(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(3, 0)
	p.LineTo(3, 4)
	p.Close()

	if got := p.Length(); math.Abs(got-12) > 1e-9 {
		t.Errorf("Length() = %v, want 12", got)
	}
}

func TestBBoxOperations(t *testing.T) {
	a := BBox{X1: 0.5, Y1: -1.2, X2: 10.1, Y2: 5}
	b := BBox{X1: -3, Y1: 2, X2: 4, Y2: 8.7}

	u := a.Union(b)
	if !u.Contains(a) || !u.Contains(b) {
		t.Errorf("Union %+v does not contain both inputs", u)
	}
	if got := EmptyBBox().Union(a); got != a {
		t.Errorf("EmptyBBox().Union(a) = %+v, want %+v", got, a)
	}

	r := a.RoundOut()
	want := BBox{X1: 0, Y1: -2, X2: 11, Y2: 5}
	if r != want {
		t.Errorf("RoundOut() = %+v, want %+v", r, want)
	}
	if !r.Contains(a) {
		t.Error("rounded box does not contain the original")
	}
	if math.Abs(a.Width()-9.6) > 1e-9 || math.Abs(a.Height()-6.2) > 1e-9 {
		t.Errorf("Width/Height = %v/%v", a.Width(), a.Height())
	}
}
