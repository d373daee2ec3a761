package mesh

import (
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-6

func TestGridLen(t *testing.T) {
	for n := 1; n <= 16; n++ {
		expected := 2 * (2*n*(n+1) + 2*(n-1))
		if got := len(Grid(n, 3.5)); got != expected {
			t.Errorf("len(Grid(%d)) = %d (expected: %d)", n, got, expected)
		}
		if GridLen(n) != expected {
			t.Errorf("GridLen(%d) = %d (expected: %d)", n, GridLen(n), expected)
		}
	}
}

func TestGridSingleCell(t *testing.T) {
	expected := []float32{
		-1, -1,
		-1, 1,
		1, -1,
		1, 1,
	}
	got := Grid(1, 2)
	if len(got) != len(expected) {
		t.Fatalf("Grid(1, 2) has %d floats (expected: %d)", len(got), len(expected))
	}
	for i := range expected {
		if math32.Abs(got[i]-expected[i]) > tolerance {
			t.Errorf("Grid(1, 2)[%d] = %v (expected: %v)", i, got[i], expected[i])
		}
	}
}

func TestGridBounds(t *testing.T) {
	for _, width := range []float64{0.5, 1, 2, 10} {
		for n := 1; n <= 8; n++ {
			min, max := Bounds(Grid(n, width), 2)
			half := float32(width / 2)
			for c := 0; c < 2; c++ {
				if math32.Abs(min[c]+half) > tolerance || math32.Abs(max[c]-half) > tolerance {
					t.Errorf("Grid(%d, %v) component %d spans [%v, %v] (expected: [%v, %v])",
						n, width, c, min[c], max[c], -half, half)
				}
			}
		}
	}
}

func TestGridAvoidsOrigin(t *testing.T) {
	a := Grid(2, 2)
	for i := 0; i < len(a); i += 2 {
		if a[i] == 0 && a[i+1] == 0 {
			t.Errorf("vertex %d is exactly (0, 0)", i/2)
		}
	}
}

func triangleArea(a []float32, i, j, k int) float32 {
	ax, ay := a[2*i], a[2*i+1]
	bx, by := a[2*j], a[2*j+1]
	cx, cy := a[2*k], a[2*k+1]
	return math32.Abs((bx-ax)*(cy-ay)-(cx-ax)*(by-ay)) / 2
}

func TestGridStripCoversEveryCell(t *testing.T) {
	for n := 1; n <= 6; n++ {
		width := 2.0
		a := Grid(n, width)
		cell := float32(width/float64(n)) * float32(width/float64(n))

		var visible int
		var area float32
		for v := 0; v+2 < len(a)/2; v++ {
			ar := triangleArea(a, v, v+1, v+2)
			if ar > cell*1e-4 {
				visible++
				area += ar
			}
		}
		if visible != 2*n*n {
			t.Errorf("Grid(%d) strip draws %d triangles (expected: %d)", n, visible, 2*n*n)
		}
		if math32.Abs(area-float32(width*width)) > 1e-4 {
			t.Errorf("Grid(%d) strip covers area %v (expected: %v)", n, area, width*width)
		}
	}
}

func TestGridIdempotent(t *testing.T) {
	a, b := Grid(7, 3), Grid(7, 3)
	for i := range a {
		if math32.Float32bits(a[i]) != math32.Float32bits(b[i]) {
			t.Fatalf("Grid(7, 3)[%d] differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGridPanics(t *testing.T) {
	tests := []struct {
		n     int
		width float64
	}{
		{0, 1},
		{-3, 1},
		{2, 0},
		{2, -1},
		{2, math32NaN()},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Grid(%d, %v) did not panic", tt.n, tt.width)
				}
			}()
			Grid(tt.n, tt.width)
		}()
	}
}

func math32NaN() float64 { return float64(math32.NaN()) }

func TestCube(t *testing.T) {
	faces := Cube(2)
	if len(faces) != 6 {
		t.Fatalf("Cube has %d faces (expected: 6)", len(faces))
	}
	for i, f := range faces {
		if len(f) != 12 {
			t.Errorf("face %d has %d floats (expected: 12)", i, len(f))
		}
		min, max := Bounds(f, 3)
		var flat int
		for c := 0; c < 3; c++ {
			if min[c] == max[c] {
				flat++
				if math32.Abs(min[c]) != 1 {
					t.Errorf("face %d lies on plane %v (expected: +-1)", i, min[c])
				}
			}
		}
		if flat != 1 {
			t.Errorf("face %d is flat along %d axes (expected: 1)", i, flat)
		}
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]float32{1, -2, 3, 4, 0, -1, 9}, 3)
	expectedMin := []float32{0, -2, -1}
	expectedMax := []float32{4, 0, 3}
	for c := 0; c < 3; c++ {
		if min[c] != expectedMin[c] || max[c] != expectedMax[c] {
			t.Errorf("component %d: [%v, %v] (expected: [%v, %v])", c, min[c], max[c], expectedMin[c], expectedMax[c])
		}
	}

	min, max = Bounds(nil, 2)
	if !math32.IsInf(min[0], 1) || !math32.IsInf(max[1], -1) {
		t.Errorf("Bounds of empty buffer = %v, %v", min, max)
	}
	if min, max := Bounds([]float32{1}, 0); min != nil || max != nil {
		t.Errorf("Bounds with itemSize 0 = %v, %v (expected: nil)", min, max)
	}
}
