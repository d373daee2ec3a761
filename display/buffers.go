package display

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/noisersup/sgl/scene"
)

func (s *Screen) CreateVertexBuffer(points []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(points) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(points), gl.Ptr(points), gl.STATIC_DRAW)
	}
	scene.Logger().Debug("sgl: vertex buffer", "buffer", vbo, "bytes", 4*len(points))
	return vbo
}

func (s *Screen) CreateIndexBuffer(indices []uint16) uint32 {
	var ibo uint32
	gl.GenBuffers(1, &ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)
	}
	scene.Logger().Debug("sgl: index buffer", "buffer", ibo, "bytes", 2*len(indices))
	return ibo
}

func (s *Screen) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (s *Screen) EnableAttribute(location, buffer uint32, itemSize int) {
	gl.EnableVertexAttribArray(location)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointer(location, int32(itemSize), gl.FLOAT, false, 0, nil)
}

func (s *Screen) DisableAttribute(location uint32) {
	gl.DisableVertexAttribArray(location)
}
