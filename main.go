package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/faiface/mainthread"

	"github.com/noisersup/sgl/config"
	"github.com/noisersup/sgl/display"
	"github.com/noisersup/sgl/mesh"
	"github.com/noisersup/sgl/models"
	"github.com/noisersup/sgl/scene"
	"github.com/noisersup/sgl/shaders"
)

const cubeSize = 2

func main() {
	if len(os.Args) < 2 {
		os.Args = append(os.Args, config.SceneMesh)
	}
	if os.Getenv("SGL_DEBUG") != "" {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	switch os.Args[1] {
	case config.SceneMesh, config.SceneCube: // Draw without debugger
		cfg := config.Default()
		cfg.Scene = os.Args[1]
		mainthread.Run(func() {
			d, err := newDemo(cfg)
			if err != nil {
				log.Fatal(err)
			}
			defer d.close()
			if err := d.loop(); err != nil {
				log.Fatal(err)
			}
		})

	default: // Draw with debugger
		cfg, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		mainthread.Run(func() { debug(cfg) })
	}
}

func debug(cfg config.Config) {
	d, err := newDemo(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer d.close()

	a := newApp(d)
	done := make(chan error, 1)
	go func() {
		done <- d.loop()
		close(a.refreshChan)
	}()

	if err := tea.NewProgram(a).Start(); err != nil {
		log.Fatal(err)
	}
	d.quit.Store(true)
	if err := <-done; err != nil {
		log.Fatal(err)
	}
}

// demo is one running scene. Screen and scene are only touched on the main
// thread.
type demo struct {
	cfg    config.Config
	screen *display.Screen
	scene  *scene.Scene
	stats  []scene.AttributeStats

	view *models.View
	spin *models.Spin

	frames atomic.Int64
	paused atomic.Bool
	quit   atomic.Bool
	update models.UpdateDebugger
}

func newDemo(cfg config.Config) (*demo, error) {
	mode, err := cfg.DrawMode()
	if err != nil {
		return nil, err
	}
	sources, err := scene.LoadShaders(shaders.FS, ".")
	if err != nil {
		return nil, err
	}

	d := &demo{cfg: cfg}
	err = mainthread.CallErr(func() error {
		screen, err := display.InitScreen(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
		if err != nil {
			return err
		}

		opts := scene.Options{ClearColor: &d.cfg.ClearColor, Mode: mode}
		var frag, vert string
		switch cfg.Scene {
		case config.SceneCube:
			d.spin = models.NewSpin(aspect(screen.FramebufferSize()))
			opts.Attributes = map[string]scene.Attribute{
				"vertexPos": {Strips: mesh.Cube(cubeSize), ItemSize: 3},
			}
			frag, vert = "cube.frag", "cube.vert"
		default:
			d.view = models.NewView(cfg.Controls.PanStep, cfg.Controls.ZoomFactor)
			screen.OnChar(d.handleKey)
			opts.Attributes = map[string]scene.Attribute{
				"vertexPos": scene.Flat(mesh.Grid(cfg.Mesh.Cells, cfg.Mesh.Width), 2),
			}
			frag, vert = "mesh.frag", "mesh.vert"
		}

		sc, err := scene.Init(screen, sources, frag, vert, opts)
		if err != nil {
			screen.Close()
			return fmt.Errorf("%s scene: %w", cfg.Scene, err)
		}
		d.screen, d.scene, d.stats = screen, sc, sc.Stats()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func aspect(width, height int) float32 {
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (d *demo) handleKey(key rune) {
	if d.view != nil && d.view.HandleKey(key) {
		d.refresh()
	}
}

func (d *demo) refresh() {
	if d.update != nil {
		d.update()
	}
}

func (d *demo) uniforms() scene.Uniforms {
	switch {
	case d.spin != nil:
		return d.spin.Uniforms()
	case d.view != nil:
		return d.view.Uniforms()
	}
	return nil
}

// loop draws frames until the window is closed or quit is set.
func (d *demo) loop() error {
	for !d.quit.Load() {
		var closed bool
		err := mainthread.CallErr(func() error {
			if closed = d.screen.ShouldClose(); closed {
				return nil
			}
			if err := d.scene.Draw(d.uniforms()); err != nil {
				return err
			}
			d.screen.Swap()
			return nil
		})
		if err != nil {
			return err
		}
		if closed {
			return nil
		}

		if d.spin != nil && !d.paused.Load() {
			d.spin.Step()
		}
		d.frames.Add(1)
		d.refresh()
	}
	return nil
}

func (d *demo) close() {
	mainthread.Call(func() {
		d.scene.CleanUp()
		d.screen.Close()
	})
}
