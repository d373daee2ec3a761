// Package display opens a GLFW window with an OpenGL 4.1 core context and
// implements scene.Backend on top of it.
//
// GLFW and OpenGL calls must all happen on the main thread; wrap them with
// mainthread.Call when the program runs under mainthread.Run.
package display

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"

	"github.com/noisersup/sgl/scene"
	"github.com/noisersup/sgl/sglerr"
)

type Screen struct {
	window *glfw.Window
	vao    uint32
	onChar func(rune)
}

var _ scene.Backend = (*Screen)(nil)

// InitScreen creates a window of the given size and makes its context
// current. It fails with sglerr.NoInit when GLFW or OpenGL cannot start and
// sglerr.MissingCanvas when the window cannot be created.
func InitScreen(width, height int, name string) (*Screen, error) {
	if err := glfw.Init(); err != nil {
		return nil, sglerr.NewNoInit(err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, name, nil, nil)
	if err != nil {
		glfw.Terminate()
		scene.Logger().Warn("sgl: window creation failed", "err", err)
		return nil, sglerr.NewMissingCanvas(name)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, sglerr.NewNoInit(err)
	}
	scene.Logger().Info("sgl: OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	s := &Screen{window: win}
	// The core profile draws nothing without a bound vertex array object.
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	win.SetCharCallback(func(_ *glfw.Window, char rune) {
		if s.onChar != nil {
			s.onChar(char)
		}
	})
	return s, nil
}

func (s *Screen) ShouldClose() bool {
	return s.window.ShouldClose()
}

// OnChar registers f to receive every character typed into the window.
func (s *Screen) OnChar(f func(rune)) {
	s.onChar = f
}

// Swap shows the frame drawn so far and processes pending window events.
func (s *Screen) Swap() {
	s.window.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and shuts GLFW down.
func (s *Screen) Close() {
	gl.DeleteVertexArrays(1, &s.vao)
	s.window.Destroy()
	glfw.Terminate()
}

func (s *Screen) FramebufferSize() (width, height int) {
	return s.window.GetFramebufferSize()
}

func (s *Screen) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (s *Screen) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (s *Screen) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (s *Screen) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

var primitives = map[scene.Primitive]uint32{
	scene.TriangleStrip: gl.TRIANGLE_STRIP,
	scene.Triangles:     gl.TRIANGLES,
}

func (s *Screen) DrawArrays(mode scene.Primitive, first, count int) {
	gl.DrawArrays(primitives[mode], int32(first), int32(count))
}

func (s *Screen) DrawElements(mode scene.Primitive, indices uint32, count int) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices)
	gl.DrawElements(primitives[mode], int32(count), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}
