package display

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/noisersup/sgl/scene"
)

var shaderTypes = map[scene.ShaderKind]uint32{
	scene.VertexShader:   gl.VERTEX_SHADER,
	scene.FragmentShader: gl.FRAGMENT_SHADER,
}

var varTypes = map[uint32]scene.VarType{
	gl.FLOAT:      scene.Float,
	gl.FLOAT_VEC2: scene.Vec2,
	gl.FLOAT_VEC3: scene.Vec3,
	gl.FLOAT_VEC4: scene.Vec4,
	gl.FLOAT_MAT2: scene.Mat2,
	gl.FLOAT_MAT3: scene.Mat3,
	gl.FLOAT_MAT4: scene.Mat4,
	gl.INT:        scene.Int,
	gl.SAMPLER_2D: scene.Sampler2D,
}

func (s *Screen) CreateShader(kind scene.ShaderKind) uint32 {
	return gl.CreateShader(shaderTypes[kind])
}

func (s *Screen) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
		return false, strings.TrimRight(msg, "\x00")
	}
	return true, ""
}

func (s *Screen) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (s *Screen) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (s *Screen) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (s *Screen) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (s *Screen) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
		return false, strings.TrimRight(msg, "\x00")
	}
	return true, ""
}

func (s *Screen) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (s *Screen) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

type activeFunc func(program, index uint32, bufSize int32, length, size *int32, xtype *uint32, name *uint8)

// activeVariables lists the variables reported by get, count and maxLen
// being the matching GetProgramiv parameters.
func activeVariables(program, count, maxLen uint32, get activeFunc) []scene.Variable {
	var n, bufSize int32
	gl.GetProgramiv(program, count, &n)
	gl.GetProgramiv(program, maxLen, &bufSize)
	if bufSize < 1 {
		bufSize = 1
	}

	vars := make([]scene.Variable, 0, n)
	name := make([]uint8, bufSize)
	for i := uint32(0); i < uint32(n); i++ {
		var length, size int32
		var xtype uint32
		get(program, i, bufSize, &length, &size, &xtype, &name[0])
		vars = append(vars, scene.Variable{
			Name: string(name[:length]),
			Type: varTypes[xtype],
			Size: int(size),
		})
	}
	return vars
}

func (s *Screen) ActiveAttributes(program uint32) []scene.Variable {
	return activeVariables(program, gl.ACTIVE_ATTRIBUTES, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, gl.GetActiveAttrib)
}

func (s *Screen) ActiveUniforms(program uint32) []scene.Variable {
	return activeVariables(program, gl.ACTIVE_UNIFORMS, gl.ACTIVE_UNIFORM_MAX_LENGTH, gl.GetActiveUniform)
}

func (s *Screen) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (s *Screen) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
