package scene

import (
	"fmt"

	"github.com/noisersup/sgl/sglerr"
	"github.com/noisersup/sgl/strip"
)

// DrawMode selects how an attribute's strips are laid out and drawn.
type DrawMode int

const (
	// DrawStrips packs the strips back to back and draws each one with its
	// own TRIANGLE_STRIP call.
	DrawStrips DrawMode = iota
	// DrawIndexed draws every strip with one indexed TRIANGLES call.
	DrawIndexed
	// DrawStitched joins the strips with degenerate triangles and draws
	// them with one TRIANGLE_STRIP call.
	DrawStitched
)

func (m DrawMode) String() string {
	switch m {
	case DrawStrips:
		return "strips"
	case DrawIndexed:
		return "indexed"
	case DrawStitched:
		return "stitched"
	}
	return fmt.Sprintf("DrawMode(%d)", int(m))
}

// Attribute is the vertex data for one shader attribute: one or more
// triangle strips of ItemSize floats per vertex.
type Attribute struct {
	Strips   [][]float32
	ItemSize int
}

// Flat wraps a single strip.
func Flat(value []float32, itemSize int) Attribute {
	return Attribute{Strips: [][]float32{value}, ItemSize: itemSize}
}

// AttributeStats summarizes the GPU side of one attribute.
type AttributeStats struct {
	Name      string
	ItemSize  int
	Vertices  int
	DrawCalls int
	Indices   int
}

type attributeData struct {
	name        string
	location    uint32
	itemSize    int
	buffer      uint32
	indexBuffer uint32
	vertices    int
	offsets     []strip.Offset
	indices     int
}

// layout packs the strips of a according to mode.
func layout(mode DrawMode, a Attribute) (data []float32, offsets []strip.Offset, indices []uint16, err error) {
	switch mode {
	case DrawIndexed:
		ix, err := strip.PackIndexed(a.ItemSize, a.Strips...)
		if err != nil {
			return nil, nil, nil, err
		}
		return ix.Buffer, nil, ix.Indices, nil
	case DrawStitched:
		data, err := strip.Stitch(a.ItemSize, a.Strips...)
		if err != nil {
			return nil, nil, nil, err
		}
		if n := len(data) / a.ItemSize; n > 0 {
			offsets = []strip.Offset{{Offset: 0, Length: n}}
		}
		return data, offsets, nil, nil
	default:
		p, err := strip.Flatten(a.ItemSize, a.Strips...)
		if err != nil {
			return nil, nil, nil, err
		}
		return p.Buffer, p.Offsets, nil, nil
	}
}

// setUpAttribute uploads the data of attribute name into a new buffer and
// points the attribute at it.
func (s *Scene) setUpAttribute(name string, a Attribute) error {
	if a.ItemSize <= 0 {
		return sglerr.NewItemSizeZero()
	}
	loc := s.backend.AttribLocation(s.program, name)
	data, offsets, indices, err := layout(s.mode, a)
	if err != nil {
		return err
	}
	if loc < 0 {
		return sglerr.NewNoAttribute(name)
	}

	ad := &attributeData{
		name:     name,
		location: uint32(loc),
		itemSize: a.ItemSize,
		buffer:   s.backend.CreateVertexBuffer(data),
		vertices: len(data) / a.ItemSize,
		offsets:  offsets,
		indices:  len(indices),
	}
	s.attrs[name] = ad
	if indices != nil {
		ad.indexBuffer = s.backend.CreateIndexBuffer(indices)
	}
	s.backend.EnableAttribute(ad.location, ad.buffer, ad.itemSize)

	Logger().Debug("sgl: attribute buffer ready",
		"name", name, "location", loc, "vertices", ad.vertices, "indices", ad.indices)
	return nil
}

// bindAttribute checks the attribute against its declared type and binds
// its buffer for drawing.
func (s *Scene) bindAttribute(v Variable, ad *attributeData) error {
	if ad.itemSize <= 0 {
		return sglerr.NewItemSizeZero()
	}
	if ad.itemSize > maxItemSize(v.Type) {
		return sglerr.NewItemSizeTooLarge(ad.itemSize, v.Type.String()+" "+v.Name)
	}
	s.backend.EnableAttribute(ad.location, ad.buffer, ad.itemSize)
	return nil
}

func (s *Scene) drawAttribute(ad *attributeData) {
	if s.mode == DrawIndexed {
		if ad.indices > 0 {
			s.backend.DrawElements(Triangles, ad.indexBuffer, ad.indices)
		}
		return
	}
	for _, off := range ad.offsets {
		s.backend.DrawArrays(TriangleStrip, off.Offset, off.Length)
	}
}

func (ad *attributeData) stats(mode DrawMode) AttributeStats {
	st := AttributeStats{
		Name:     ad.name,
		ItemSize: ad.itemSize,
		Vertices: ad.vertices,
		Indices:  ad.indices,
	}
	if mode == DrawIndexed {
		if ad.indices > 0 {
			st.DrawCalls = 1
		}
	} else {
		st.DrawCalls = len(ad.offsets)
	}
	return st
}
