// Package strip packs triangle strips into single vertex buffers.
//
// A strip is a []float32 of vertices, itemSize floats each, drawn so that
// vertices v0, v1, v2, v3, ... form the triangles (v0,v1,v2), (v1,v2,v3), ...
// Every function accepts any number of strips; a single flat strip is just
// one argument.
package strip

import (
	"math"

	"github.com/noisersup/sgl/sglerr"
)

// Offset locates one strip inside a packed buffer. Both fields count
// vertices, not floats.
type Offset struct {
	Offset int
	Length int
}

// Packed is the result of Flatten.
type Packed struct {
	Buffer  []float32
	Offsets []Offset
}

// Vertices returns the number of vertices in the buffer.
func (p Packed) Vertices() int {
	if len(p.Offsets) == 0 {
		return 0
	}
	last := p.Offsets[len(p.Offsets)-1]
	return last.Offset + last.Length
}

// Indexed is the result of PackIndexed.
type Indexed struct {
	Buffer  []float32
	Indices []uint16
}

// Triangles returns the number of triangles described by the indices.
func (ix Indexed) Triangles() int { return len(ix.Indices) / 3 }

func validate(itemSize int, strips [][]float32) (floats int, err error) {
	if itemSize <= 0 {
		return 0, sglerr.NewItemSizeZero()
	}
	for _, s := range strips {
		if len(s)%itemSize != 0 {
			return 0, sglerr.NewArrayNotMultipleOfItemSize(len(s), itemSize)
		}
		floats += len(s)
	}
	return floats, nil
}

// Flatten concatenates strips into one buffer and records where each one
// starts, ready for one TRIANGLE_STRIP draw per offset.
//
// Each strip's length must be a multiple of itemSize; the first strip that
// is not fails the whole call with sglerr.ArrayNotMultipleOfItemSize. No
// strips at all yields an empty result.
func Flatten(itemSize int, strips ...[]float32) (Packed, error) {
	floats, err := validate(itemSize, strips)
	if err != nil {
		return Packed{}, err
	}

	p := Packed{
		Buffer:  make([]float32, 0, floats),
		Offsets: make([]Offset, 0, len(strips)),
	}
	index := 0
	for _, s := range strips {
		p.Buffer = append(p.Buffer, s...)
		n := len(s) / itemSize
		p.Offsets = append(p.Offsets, Offset{Offset: index, Length: n})
		index += n
	}
	return p, nil
}

// PackIndexed concatenates strips into one buffer and synthesizes 16-bit
// indices turning every strip into a list of separate triangles, so all
// strips can be drawn with a single indexed TRIANGLES draw. Strip k of n
// vertices starting at vertex s yields the triangles (s+i, s+i+1, s+i+2)
// for i in [0, n-2); no triangle joins two strips.
//
// Strips are validated like Flatten. More vertices than 16-bit indices can
// address fails with sglerr.IndexOverflow.
func PackIndexed(itemSize int, strips ...[]float32) (Indexed, error) {
	floats, err := validate(itemSize, strips)
	if err != nil {
		return Indexed{}, err
	}
	if vertices := floats / itemSize; vertices > math.MaxUint16+1 {
		return Indexed{}, sglerr.NewIndexOverflow(vertices)
	}

	triangles := 0
	for _, s := range strips {
		if n := len(s) / itemSize; n > 2 {
			triangles += n - 2
		}
	}

	ix := Indexed{
		Buffer:  make([]float32, 0, floats),
		Indices: make([]uint16, 0, 3*triangles),
	}
	s := 0
	for _, st := range strips {
		ix.Buffer = append(ix.Buffer, st...)
		n := len(st) / itemSize
		for i := 0; i+2 < n; i++ {
			ix.Indices = append(ix.Indices, uint16(s+i), uint16(s+i+1), uint16(s+i+2))
		}
		s += n
	}
	return ix, nil
}

// Stitch joins strips into one triangle strip by repeating the last vertex
// of each strip and the first vertex of the next, the same degenerate
// triangle trick mesh.Grid uses between rows. When a strip has an odd number
// of vertices the next strip's first vertex is repeated once more so every
// strip keeps its winding order.
//
// Strips are validated like Flatten. Empty strips are skipped.
func Stitch(itemSize int, strips ...[]float32) ([]float32, error) {
	floats, err := validate(itemSize, strips)
	if err != nil {
		return nil, err
	}

	out := make([]float32, 0, floats+4*itemSize*len(strips))
	count := 0 // vertices emitted so far
	for _, s := range strips {
		if len(s) == 0 {
			continue
		}
		if count > 0 {
			last := out[len(out)-itemSize:]
			out = append(out, last...)
			first := s[:itemSize]
			out = append(out, first...)
			count += 2
			if count%2 != 0 {
				out = append(out, first...)
				count++
			}
		}
		out = append(out, s...)
		count += len(s) / itemSize
	}
	return out, nil
}
