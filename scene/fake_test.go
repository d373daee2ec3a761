package scene

import (
	"fmt"
	"strings"
)

// fakeBackend records every call and tracks which objects are alive, so
// tests can check both the call sequence and that nothing leaks.
type fakeBackend struct {
	calls []string
	next  uint32
	live  map[uint32]string

	enabled map[uint32]bool

	compileLog  map[ShaderKind]string // a kind present here fails to compile
	linkLog     string
	linkFails   bool
	attributes  []Variable
	uniforms    []Variable
	locations   map[string]int32
	width       int
	height      int
	shaderKinds map[uint32]ShaderKind
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		live:        map[uint32]string{},
		enabled:     map[uint32]bool{},
		compileLog:  map[ShaderKind]string{},
		locations:   map[string]int32{"vertexPos": 0},
		attributes:  []Variable{{Name: "vertexPos", Type: Vec2, Size: 1}},
		width:       640,
		height:      480,
		shaderKinds: map[uint32]ShaderKind{},
	}
}

func (f *fakeBackend) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) create(kind string) uint32 {
	f.next++
	f.live[f.next] = kind
	return f.next
}

func (f *fakeBackend) destroy(h uint32, kind string) {
	if f.live[h] != kind {
		panic(fmt.Sprintf("deleting %s %d which is not a live %s", f.live[h], h, kind))
	}
	delete(f.live, h)
}

// reset forgets the calls recorded so far.
func (f *fakeBackend) reset() { f.calls = nil }

func (f *fakeBackend) callsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeBackend) FramebufferSize() (int, int) { return f.width, f.height }

func (f *fakeBackend) CreateShader(kind ShaderKind) uint32 {
	h := f.create("shader")
	f.shaderKinds[h] = kind
	f.record("CreateShader(%d) = %d", kind, h)
	return h
}

func (f *fakeBackend) CompileShader(shader uint32, source string) (bool, string) {
	f.record("CompileShader(%d)", shader)
	if log, fail := f.compileLog[f.shaderKinds[shader]]; fail {
		return false, log
	}
	return true, ""
}

func (f *fakeBackend) DeleteShader(shader uint32) {
	f.record("DeleteShader(%d)", shader)
	f.destroy(shader, "shader")
}

func (f *fakeBackend) CreateProgram() uint32 {
	h := f.create("program")
	f.record("CreateProgram() = %d", h)
	return h
}

func (f *fakeBackend) AttachShader(program, shader uint32) {
	f.record("AttachShader(%d, %d)", program, shader)
}

func (f *fakeBackend) DetachShader(program, shader uint32) {
	f.record("DetachShader(%d, %d)", program, shader)
}

func (f *fakeBackend) LinkProgram(program uint32) (bool, string) {
	f.record("LinkProgram(%d)", program)
	return !f.linkFails, f.linkLog
}

func (f *fakeBackend) UseProgram(program uint32) { f.record("UseProgram(%d)", program) }

func (f *fakeBackend) DeleteProgram(program uint32) {
	f.record("DeleteProgram(%d)", program)
	f.destroy(program, "program")
}

func (f *fakeBackend) ActiveAttributes(uint32) []Variable { return f.attributes }
func (f *fakeBackend) ActiveUniforms(uint32) []Variable   { return f.uniforms }

func (f *fakeBackend) AttribLocation(_ uint32, name string) int32 {
	if loc, ok := f.locations[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeBackend) UniformLocation(_ uint32, name string) int32 {
	for i, u := range f.uniforms {
		if u.Name == name {
			return int32(10 + i)
		}
	}
	return -1
}

func (f *fakeBackend) CreateVertexBuffer(data []float32) uint32 {
	h := f.create("buffer")
	f.record("CreateVertexBuffer(%v) = %d", data, h)
	return h
}

func (f *fakeBackend) CreateIndexBuffer(data []uint16) uint32 {
	h := f.create("buffer")
	f.record("CreateIndexBuffer(%v) = %d", data, h)
	return h
}

func (f *fakeBackend) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer(%d)", buffer)
	f.destroy(buffer, "buffer")
}

func (f *fakeBackend) EnableAttribute(location, buffer uint32, itemSize int) {
	f.enabled[location] = true
	f.record("EnableAttribute(%d, %d, %d)", location, buffer, itemSize)
}

func (f *fakeBackend) DisableAttribute(location uint32) {
	delete(f.enabled, location)
	f.record("DisableAttribute(%d)", location)
}

func (f *fakeBackend) Uniform1fv(loc int32, v []float32) { f.record("Uniform1fv(%d, %v)", loc, v) }
func (f *fakeBackend) Uniform2fv(loc int32, v []float32) { f.record("Uniform2fv(%d, %v)", loc, v) }
func (f *fakeBackend) Uniform3fv(loc int32, v []float32) { f.record("Uniform3fv(%d, %v)", loc, v) }
func (f *fakeBackend) Uniform4fv(loc int32, v []float32) { f.record("Uniform4fv(%d, %v)", loc, v) }
func (f *fakeBackend) UniformMatrix2fv(loc int32, v []float32) {
	f.record("UniformMatrix2fv(%d, %v)", loc, v)
}
func (f *fakeBackend) UniformMatrix3fv(loc int32, v []float32) {
	f.record("UniformMatrix3fv(%d, %v)", loc, v)
}
func (f *fakeBackend) UniformMatrix4fv(loc int32, v []float32) {
	f.record("UniformMatrix4fv(%d, %v)", loc, v)
}
func (f *fakeBackend) Uniform1iv(loc int32, v []int32) { f.record("Uniform1iv(%d, %v)", loc, v) }

func (f *fakeBackend) ClearColor(r, g, b, a float32) { f.record("ClearColor(%v, %v, %v, %v)", r, g, b, a) }
func (f *fakeBackend) EnableDepthTest()              { f.record("EnableDepthTest()") }
func (f *fakeBackend) Viewport(x, y, w, h int)       { f.record("Viewport(%d, %d, %d, %d)", x, y, w, h) }
func (f *fakeBackend) Clear()                        { f.record("Clear()") }

func (f *fakeBackend) DrawArrays(mode Primitive, first, count int) {
	f.record("DrawArrays(%s, %d, %d)", primitiveName(mode), first, count)
}

func (f *fakeBackend) DrawElements(mode Primitive, indices uint32, count int) {
	f.record("DrawElements(%s, %d, %d)", primitiveName(mode), indices, count)
}

func primitiveName(p Primitive) string {
	if p == Triangles {
		return "TRIANGLES"
	}
	return "TRIANGLE_STRIP"
}
