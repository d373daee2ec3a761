package scene

import "github.com/noisersup/sgl/sglerr"

// Uniforms maps uniform names to their values. Scalars are one element
// slices; matrices are column major, e.g. mgl32.Mat4[:]. Arrays hold all
// their elements back to back.
type Uniforms map[string][]float32

// Scalar returns a one element value.
func Scalar(f float32) []float32 { return []float32{f} }

type uniform struct {
	Variable
	location int32
}

type uniformFunc func(b Backend, loc int32, v []float32)

var uniformFuncs = map[VarType]uniformFunc{
	Float:     Backend.Uniform1fv,
	Vec2:      Backend.Uniform2fv,
	Vec3:      Backend.Uniform3fv,
	Vec4:      Backend.Uniform4fv,
	Mat2:      Backend.UniformMatrix2fv,
	Mat3:      Backend.UniformMatrix3fv,
	Mat4:      Backend.UniformMatrix4fv,
	Int:       uniformInts,
	Sampler2D: uniformInts,
}

func uniformInts(b Backend, loc int32, v []float32) {
	ints := make([]int32, len(v))
	for i, f := range v {
		ints[i] = int32(f)
	}
	b.Uniform1iv(loc, ints)
}

// setUniform writes value to u using the call that matches u's type.
func setUniform(b Backend, u uniform, value []float32) error {
	fn, ok := uniformFuncs[u.Type]
	if !ok {
		Logger().Warn("sgl: skipping uniform of unsupported type", "name", u.Name, "type", u.Type)
		return nil
	}
	n := u.Type.Components()
	if len(value) == 0 || len(value)%n != 0 {
		return sglerr.NewUniformSize(u.Name, len(value), n)
	}
	if u.Size > 0 && len(value) > n*u.Size {
		value = value[:n*u.Size]
	}
	fn(b, u.location, value)
	return nil
}

// setUniforms writes every active uniform that has a value in values.
// Uniforms without a value keep whatever they held before.
func (s *Scene) setUniforms(values Uniforms) error {
	for _, u := range s.uniforms {
		v, ok := values[u.Name]
		if !ok || v == nil {
			continue
		}
		if err := setUniform(s.backend, u, v); err != nil {
			return err
		}
	}
	return nil
}
