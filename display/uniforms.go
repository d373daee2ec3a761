package display

import "github.com/go-gl/gl/v4.1-core/gl"

// The scene only calls these with len(v) a positive multiple of the
// uniform's component count.

func (s *Screen) Uniform1fv(loc int32, v []float32) {
	gl.Uniform1fv(loc, int32(len(v)), &v[0])
}

func (s *Screen) Uniform2fv(loc int32, v []float32) {
	gl.Uniform2fv(loc, int32(len(v)/2), &v[0])
}

func (s *Screen) Uniform3fv(loc int32, v []float32) {
	gl.Uniform3fv(loc, int32(len(v)/3), &v[0])
}

func (s *Screen) Uniform4fv(loc int32, v []float32) {
	gl.Uniform4fv(loc, int32(len(v)/4), &v[0])
}

func (s *Screen) UniformMatrix2fv(loc int32, v []float32) {
	gl.UniformMatrix2fv(loc, int32(len(v)/4), false, &v[0])
}

func (s *Screen) UniformMatrix3fv(loc int32, v []float32) {
	gl.UniformMatrix3fv(loc, int32(len(v)/9), false, &v[0])
}

func (s *Screen) UniformMatrix4fv(loc int32, v []float32) {
	gl.UniformMatrix4fv(loc, int32(len(v)/16), false, &v[0])
}

func (s *Screen) Uniform1iv(loc int32, v []int32) {
	gl.Uniform1iv(loc, int32(len(v)), &v[0])
}
