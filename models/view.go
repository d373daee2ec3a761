package models

import (
	"sync"

	"github.com/noisersup/sgl/scene"
)

// View is the pan and zoom state of the 2D mesh scene. It is updated from
// key presses and read once per frame, possibly from different goroutines.
type View struct {
	mu         sync.Mutex
	zoom       float32
	panX       float32
	panY       float32
	panStep    float32
	zoomFactor float32
}

// NewView returns an unzoomed, centred view.
func NewView(panStep, zoomFactor float32) *View {
	return &View{zoom: 1, panStep: panStep, zoomFactor: zoomFactor}
}

// HandleKey applies one key press and reports whether the view changed.
// '=' or '+' zooms in, '-' or '_' zooms out, w a s d pan.
func (v *View) HandleKey(key rune) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch key {
	case '=', '+':
		v.zoom /= v.zoomFactor
	case '-', '_':
		v.zoom *= v.zoomFactor
	case 'w':
		v.panY -= v.panStep
	case 'a':
		v.panX += v.panStep
	case 's':
		v.panY += v.panStep
	case 'd':
		v.panX -= v.panStep
	default:
		return false
	}
	return true
}

// State returns zoom, panX and panY.
func (v *View) State() (zoom, panX, panY float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom, v.panX, v.panY
}

// Uniforms returns the view as the zoom, panX and panY uniforms.
func (v *View) Uniforms() scene.Uniforms {
	zoom, panX, panY := v.State()
	return scene.Uniforms{
		"zoom": scene.Scalar(zoom),
		"panX": scene.Scalar(panX),
		"panY": scene.Scalar(panY),
	}
}
