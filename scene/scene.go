// Package scene sets up a shader program with its vertex attributes and
// draws it, on top of a Backend providing the graphics calls.
//
// A typical program:
//
//	sc, err := scene.Init(screen, shaders, "mesh.frag", "mesh.vert", scene.Options{
//		ClearColor: &[4]float32{0, 0, 0, 1},
//		Attributes: map[string]scene.Attribute{
//			"vertexPos": scene.Flat(mesh.Grid(16, 2), 2),
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sc.CleanUp()
//
//	for !screen.ShouldClose() {
//		if err := sc.Draw(scene.Uniforms{"zoom": scene.Scalar(1)}); err != nil {
//			log.Fatal(err)
//		}
//		screen.Swap()
//	}
package scene

import (
	"errors"
	"sort"

	"github.com/noisersup/sgl/sglerr"
)

// ErrClosed is returned by Draw after CleanUp.
var ErrClosed = errors.New("scene: draw after CleanUp")

// Options configures Init.
type Options struct {
	// ClearColor is the RGBA background, components in [0, 1]. Nil means
	// opaque white.
	ClearColor *[4]float32
	// Attributes maps attribute names of the vertex shader to their data.
	Attributes map[string]Attribute
	Mode       DrawMode
}

// Scene is a linked program with its attribute buffers.
type Scene struct {
	backend Backend
	mode    DrawMode

	program    uint32
	hasProgram bool
	shaders    []uint32

	attrs      map[string]*attributeData
	attributes []Variable
	uniforms   []uniform

	closed bool
}

// Init compiles the fragment and vertex shaders named by the ids, links
// them, uploads every attribute of opts and prepares the context for
// drawing. On failure every object created so far is released.
func Init(b Backend, shaders Shaders, fragmentShaderID, vertexShaderID string, opts Options) (_ *Scene, err error) {
	s := &Scene{
		backend: b,
		mode:    opts.Mode,
		attrs:   make(map[string]*attributeData, len(opts.Attributes)),
	}
	defer func() {
		if err != nil {
			s.CleanUp()
		}
	}()

	for _, id := range []string{fragmentShaderID, vertexShaderID} {
		sh, err := compileShader(b, shaders, id)
		if err != nil {
			return nil, err
		}
		s.shaders = append(s.shaders, sh)
	}

	if err := s.link(); err != nil {
		return nil, err
	}
	b.UseProgram(s.program)

	names := make([]string, 0, len(opts.Attributes))
	for name := range opts.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.setUpAttribute(name, opts.Attributes[name]); err != nil {
			return nil, err
		}
	}

	if c := opts.ClearColor; c != nil {
		b.ClearColor(c[0], c[1], c[2], c[3])
	} else {
		b.ClearColor(1, 1, 1, 1)
	}
	b.EnableDepthTest()

	return s, nil
}

func (s *Scene) link() error {
	b := s.backend
	s.program = b.CreateProgram()
	s.hasProgram = true
	// Vertex shader first, then fragment.
	for i := len(s.shaders) - 1; i >= 0; i-- {
		b.AttachShader(s.program, s.shaders[i])
	}
	if ok, log := b.LinkProgram(s.program); !ok {
		return sglerr.NewShaderLinkFail(log)
	}

	s.attributes = b.ActiveAttributes(s.program)
	for _, v := range b.ActiveUniforms(s.program) {
		s.uniforms = append(s.uniforms, uniform{
			Variable: v,
			location: b.UniformLocation(s.program, v.Name),
		})
	}
	Logger().Debug("sgl: program linked",
		"program", s.program, "attributes", len(s.attributes), "uniforms", len(s.uniforms))
	return nil
}

// Mode returns the draw mode the scene was set up with.
func (s *Scene) Mode() DrawMode { return s.mode }

// Draw writes the given uniforms and draws every attribute buffer to the
// current framebuffer. Uniforms missing from u are left untouched.
//
// Active attributes are checked against their declared types and bound;
// the draw calls follow the layout of the first active attribute that has
// data.
func (s *Scene) Draw(u Uniforms) error {
	if s.closed {
		return ErrClosed
	}
	b := s.backend
	w, h := b.FramebufferSize()
	b.Viewport(0, 0, w, h)
	b.Clear()
	b.UseProgram(s.program)

	if err := s.setUniforms(u); err != nil {
		return err
	}

	var primary *attributeData
	for _, v := range s.attributes {
		ad, ok := s.attrs[v.Name]
		if !ok {
			continue
		}
		if err := s.bindAttribute(v, ad); err != nil {
			return err
		}
		if primary == nil {
			primary = ad
		}
	}
	if primary != nil {
		s.drawAttribute(primary)
	}
	return nil
}

// Stats describes the uploaded attributes, sorted by name.
func (s *Scene) Stats() []AttributeStats {
	stats := make([]AttributeStats, 0, len(s.attrs))
	for _, ad := range s.attrs {
		stats = append(stats, ad.stats(s.mode))
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

// CleanUp detaches and deletes the shaders, deletes the buffers, disables
// the attribute arrays and deletes the program. Calling it more than once
// does nothing.
func (s *Scene) CleanUp() {
	if s.closed {
		return
	}
	s.closed = true
	b := s.backend

	for _, sh := range s.shaders {
		if s.hasProgram {
			b.DetachShader(s.program, sh)
		}
		b.DeleteShader(sh)
	}
	s.shaders = nil

	for _, name := range s.sortedAttrs() {
		ad := s.attrs[name]
		b.DeleteBuffer(ad.buffer)
		if ad.indexBuffer != 0 {
			b.DeleteBuffer(ad.indexBuffer)
		}
		b.DisableAttribute(ad.location)
	}

	if s.hasProgram {
		b.DeleteProgram(s.program)
	}
}

func (s *Scene) sortedAttrs() []string {
	names := make([]string, 0, len(s.attrs))
	for name := range s.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
