// Package sglerr holds the error values returned by sgl.
//
// Every error produced by the library is an *Error whose Kind says what went
// wrong. Kind itself implements error, so callers can test for a reason with
// errors.Is:
//
//	sc, err := scene.Init(screen, shaders, "shader-fs", "shader-vs", opts)
//	if errors.Is(err, sglerr.ShaderCompileFail) {
//		...
//	}
package sglerr

import "fmt"

// Kind identifies one failure reason.
type Kind int

const (
	NoInit Kind = iota + 1
	MissingCanvas
	MissingShader
	UnknownShaderType
	NoAttribute
	ShaderCompileFail
	ShaderLinkFail
	ItemSizeZero
	ItemSizeTooLarge
	ArrayNotMultipleOfItemSize
	UniformSize
	IndexOverflow
)

var kindNames = map[Kind]string{
	NoInit:                     "NoInit",
	MissingCanvas:              "MissingCanvas",
	MissingShader:              "MissingShader",
	UnknownShaderType:          "UnknownShaderType",
	NoAttribute:                "NoAttribute",
	ShaderCompileFail:          "ShaderCompileFail",
	ShaderLinkFail:             "ShaderLinkFail",
	ItemSizeZero:               "ItemSizeZero",
	ItemSizeTooLarge:           "ItemSizeTooLarge",
	ArrayNotMultipleOfItemSize: "ArrayNotMultipleOfItemSize",
	UniformSize:                "UniformSize",
	IndexOverflow:              "IndexOverflow",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Error() string { return "sgl: " + k.String() }

// Error is a failure with its reason and a human readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap exposes the Kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or 0 when err did not come from sgl.
func KindOf(err error) Kind {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Kind
		case Kind:
			return e
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

func NewNoInit(reason error) *Error {
	if reason == nil {
		return newError(NoInit, "Could not initialise OpenGL")
	}
	return newError(NoInit, "Could not initialise OpenGL: %v", reason)
}

func NewMissingCanvas(id string) *Error {
	return newError(MissingCanvas, "Could not find canvas with id %q", id)
}

func NewMissingShader(id string) *Error {
	return newError(MissingShader, "Could not find shader with id %q", id)
}

func NewUnknownShaderType(typ string) *Error {
	return newError(UnknownShaderType, "Unknown shader type %q", typ)
}

func NewNoAttribute(name string) *Error {
	return newError(NoAttribute, "No attribute in shader called %q", name)
}

// NewShaderCompileFail reports a compile error; sort is "vertex" or "fragment".
func NewShaderCompileFail(sort, log string) *Error {
	return newError(ShaderCompileFail, "Error in %s shader\n%s", sort, log)
}

func NewShaderLinkFail(log string) *Error {
	return newError(ShaderLinkFail, "%s", log)
}

func NewItemSizeZero() *Error {
	return newError(ItemSizeZero, "itemSize <= 0 is invalid")
}

func NewItemSizeTooLarge(itemSize int, name string) *Error {
	return newError(ItemSizeTooLarge, "itemSize = %d too large for attribute %q", itemSize, name)
}

func NewArrayNotMultipleOfItemSize(length, itemSize int) *Error {
	return newError(ArrayNotMultipleOfItemSize, "Array length = %d is not a multiple of itemSize = %d", length, itemSize)
}

func NewUniformSize(name string, got, want int) *Error {
	return newError(UniformSize, "uniform %q needs a multiple of %d values, got %d", name, want, got)
}

func NewIndexOverflow(vertices int) *Error {
	return newError(IndexOverflow, "%d vertices cannot be addressed by 16-bit indices", vertices)
}
