package models

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/noisersup/sgl/scene"
)

var (
	spinAxisY    = mgl32.Vec3{0, 1, 0}
	spinAxisSkew = mgl32.Vec3{-1, 0, 1}.Normalize()
)

// Spin is the camera of the cube scene: a fixed perspective projection and
// a model-view matrix that turns a little every frame.
type Spin struct {
	mu         sync.Mutex
	projection mgl32.Mat4
	modelView  mgl32.Mat4
	frames     int
}

// NewSpin sets up a 45 degree perspective for the given aspect ratio, backs
// the camera off 7 units and tilts the model a quarter turn about z and y.
func NewSpin(aspect float32) *Spin {
	mv := mgl32.Translate3D(0, 0, -7)
	mv = mv.Mul4(mgl32.HomogRotate3D(math.Pi/4, mgl32.Vec3{0, 0, 1}))
	mv = mv.Mul4(mgl32.HomogRotate3D(math.Pi/4, spinAxisY))
	return &Spin{
		projection: mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100),
		modelView:  mv,
	}
}

// Step advances the rotation by one frame, spinning on two axes at
// different rates.
func (s *Spin) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelView = s.modelView.Mul4(mgl32.HomogRotate3D(0.02, spinAxisY))
	s.modelView = s.modelView.Mul4(mgl32.HomogRotate3D(-0.03, spinAxisSkew))
	s.frames++
}

// Frames returns the number of Step calls so far.
func (s *Spin) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Matrices returns the projection and model-view matrices.
func (s *Spin) Matrices() (projection, modelView mgl32.Mat4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projection, s.modelView
}

// Uniforms returns the matrices as the pMatrix and mvMatrix uniforms.
func (s *Spin) Uniforms() scene.Uniforms {
	p, mv := s.Matrices()
	return scene.Uniforms{
		"pMatrix":  p[:],
		"mvMatrix": mv[:],
	}
}
