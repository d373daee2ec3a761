package scene

// ShaderKind is the stage a shader object is compiled for.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

// Primitive is the topology handed to draw calls.
type Primitive int

const (
	TriangleStrip Primitive = iota
	Triangles
)

// VarType is the GLSL type of an active attribute or uniform.
type VarType int

const (
	Unknown VarType = iota
	Float
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
	Int
	Sampler2D
)

var varTypeNames = [...]string{
	Unknown:   "unknown",
	Float:     "float",
	Vec2:      "vec2",
	Vec3:      "vec3",
	Vec4:      "vec4",
	Mat2:      "mat2",
	Mat3:      "mat3",
	Mat4:      "mat4",
	Int:       "int",
	Sampler2D: "sampler2D",
}

func (t VarType) String() string {
	if t < 0 || int(t) >= len(varTypeNames) {
		return varTypeNames[Unknown]
	}
	return varTypeNames[t]
}

// Components returns the number of floats one value of type t holds, or 0
// for types sgl cannot upload.
func (t VarType) Components() int {
	switch t {
	case Float, Int, Sampler2D:
		return 1
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4, Mat2:
		return 4
	case Mat3:
		return 9
	case Mat4:
		return 16
	}
	return 0
}

// maxItemSize is the largest itemSize an attribute of type t accepts in a
// vertexAttribPointer call.
func maxItemSize(t VarType) int {
	switch t {
	case Float, Vec2, Vec3, Vec4, Mat2, Mat3, Mat4:
		return t.Components()
	}
	return 0
}

// Variable describes an active attribute or uniform of a linked program.
// Size is the array length, 1 for non-array variables.
type Variable struct {
	Name string
	Type VarType
	Size int
}

// Backend is the graphics API a Scene drives. Handles are the API's object
// names; a negative location means "not found". All methods are called from
// the goroutine that owns the graphics context.
type Backend interface {
	FramebufferSize() (width, height int)

	CreateShader(kind ShaderKind) uint32
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	ActiveAttributes(program uint32) []Variable
	ActiveUniforms(program uint32) []Variable
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	CreateVertexBuffer(data []float32) uint32
	CreateIndexBuffer(data []uint16) uint32
	DeleteBuffer(buffer uint32)
	// EnableAttribute binds buffer to the attribute at location, itemSize
	// floats per vertex, tightly packed.
	EnableAttribute(location, buffer uint32, itemSize int)
	DisableAttribute(location uint32)

	Uniform1fv(location int32, v []float32)
	Uniform2fv(location int32, v []float32)
	Uniform3fv(location int32, v []float32)
	Uniform4fv(location int32, v []float32)
	UniformMatrix2fv(location int32, v []float32)
	UniformMatrix3fv(location int32, v []float32)
	UniformMatrix4fv(location int32, v []float32)
	Uniform1iv(location int32, v []int32)

	ClearColor(r, g, b, a float32)
	EnableDepthTest()
	Viewport(x, y, width, height int)
	// Clear clears the color and depth buffers.
	Clear()
	DrawArrays(mode Primitive, first, count int)
	// DrawElements draws count unsigned 16-bit indices from the index buffer.
	DrawElements(mode Primitive, indices uint32, count int)
}
