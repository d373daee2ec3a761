// Package config loads the settings of the sgl demo from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noisersup/sgl/scene"
)

const (
	SceneMesh = "mesh"
	SceneCube = "cube"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Mesh struct {
	Cells int     `yaml:"cells"`
	Width float64 `yaml:"width"`
}

type Controls struct {
	PanStep    float32 `yaml:"pan_step"`
	ZoomFactor float32 `yaml:"zoom_factor"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	Scene      string     `yaml:"scene"`
	Mode       string     `yaml:"mode"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Mesh       Mesh       `yaml:"mesh"`
	Controls   Controls   `yaml:"controls"`
}

// Default returns the settings of the pan/zoom mesh demo.
func Default() Config {
	return Config{
		Window:     Window{Width: 800, Height: 800, Title: "sgl"},
		Scene:      SceneMesh,
		Mode:       scene.DrawStrips.String(),
		ClearColor: [4]float32{1, 1, 1, 1},
		Mesh:       Mesh{Cells: 64, Width: 2},
		Controls:   Controls{PanStep: 0.05, ZoomFactor: 1.1},
	}
}

// Load reads path and overlays it on Default. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var modes = map[string]scene.DrawMode{
	scene.DrawStrips.String():   scene.DrawStrips,
	scene.DrawIndexed.String():  scene.DrawIndexed,
	scene.DrawStitched.String(): scene.DrawStitched,
}

// DrawMode returns the scene draw mode named by Mode.
func (c Config) DrawMode() (scene.DrawMode, error) {
	m, ok := modes[c.Mode]
	if !ok {
		return 0, fmt.Errorf("unknown draw mode %q", c.Mode)
	}
	return m, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Scene != SceneMesh && c.Scene != SceneCube {
		errs = append(errs, fmt.Errorf("unknown scene %q", c.Scene))
	}
	if _, err := c.DrawMode(); err != nil {
		errs = append(errs, err)
	}
	for _, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear color %v out of [0,1]", c.ClearColor))
			break
		}
	}
	if c.Mesh.Cells < 1 {
		errs = append(errs, fmt.Errorf("mesh cells = %d must be at least 1", c.Mesh.Cells))
	}
	if !(c.Mesh.Width > 0) {
		errs = append(errs, fmt.Errorf("mesh width = %v must be positive", c.Mesh.Width))
	}
	if c.Controls.PanStep <= 0 {
		errs = append(errs, fmt.Errorf("pan step = %v must be positive", c.Controls.PanStep))
	}
	if c.Controls.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("zoom factor = %v must be greater than 1", c.Controls.ZoomFactor))
	}
	return errors.Join(errs...)
}
