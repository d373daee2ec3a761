// Package mesh generates vertex data ready for triangle strip drawing.
package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// zeroGuard is added to the cell size so no generated vertex lands exactly on
// (0, 0), a coordinate some WebGL implementations mishandle.
const zeroGuard = 1e-15

// GridLen returns the number of floats Grid(n, width) produces.
func GridLen(n int) int {
	return 2 * (2*n*(n+1) + 2*(n-1))
}

// Grid creates a 2D mesh of n by n square cells centred at the origin with
// corners (-width/2, -width/2) and (width/2, width/2).
//
// The result holds 2D points (itemSize 2) meant for a single TRIANGLE_STRIP
// draw: each row is a strip of 2*n triangles and consecutive rows are joined
// with a degenerate pair so no gap or stray triangle shows up between them.
//
// Grid panics if n < 1 or width is not positive.
func Grid(n int, width float64) []float32 {
	if n < 1 {
		panic(fmt.Sprintf("mesh: grid needs at least one cell per side, got n = %d", n))
	}
	if !(width > 0) {
		panic(fmt.Sprintf("mesh: grid width must be positive, got %v", width))
	}

	a := make([]float32, 0, GridLen(n))
	half := width / 2
	delta := width/float64(n) + zeroGuard

	for j := 0; j < n; j++ {
		y := -half + float64(j)*delta
		if j > 0 {
			// Degenerate triangles: end of the previous row, start of this one.
			a = append(a,
				float32(half), float32(y),
				float32(-half), float32(y),
			)
		}
		for i := 0; i <= n; i++ {
			x := -half + float64(i)*delta
			a = append(a,
				float32(x), float32(y),
				float32(x), float32(y+delta),
			)
		}
	}
	return a
}

// Cube returns the six faces of an axis aligned cube with edge length size,
// centred at the origin. Each face is a 4 vertex triangle strip of 3D points,
// in the order back, front, top, bottom, right, left.
func Cube(size float32) [][]float32 {
	h := size / 2
	return [][]float32{
		// Back face
		{
			-h, h, -h,
			-h, -h, -h,
			h, h, -h,
			h, -h, -h,
		},
		// Front face
		{
			-h, h, h,
			-h, -h, h,
			h, h, h,
			h, -h, h,
		},
		// Top face
		{
			-h, h, h,
			-h, h, -h,
			h, h, h,
			h, h, -h,
		},
		// Bottom face
		{
			-h, -h, -h,
			h, -h, -h,
			-h, -h, h,
			h, -h, h,
		},
		// Right face
		{
			h, -h, -h,
			h, h, -h,
			h, -h, h,
			h, h, h,
		},
		// Left face
		{
			-h, -h, -h,
			-h, -h, h,
			-h, h, -h,
			-h, h, h,
		},
	}
}

// Bounds returns the per component minimum and maximum of the vertices in
// buf. Components of an empty buffer are +Inf and -Inf. A trailing partial
// vertex is ignored.
func Bounds(buf []float32, itemSize int) (min, max []float32) {
	if itemSize <= 0 {
		return nil, nil
	}
	min = make([]float32, itemSize)
	max = make([]float32, itemSize)
	for c := range min {
		min[c] = math32.Inf(1)
		max[c] = math32.Inf(-1)
	}
	for i := 0; i+itemSize <= len(buf); i += itemSize {
		for c := 0; c < itemSize; c++ {
			min[c] = math32.Min(min[c], buf[i+c])
			max[c] = math32.Max(max[c], buf[i+c])
		}
	}
	return min, max
}
