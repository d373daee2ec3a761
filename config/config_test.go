package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noisersup/sgl/scene"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sgl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.DrawMode()
	require.NoError(t, err)
	assert.Equal(t, scene.DrawStrips, mode)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, cfg.ClearColor)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
scene: cube
mode: indexed
window:
  title: spinning
clear_color: [0, 0, 0, 1]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SceneCube, cfg.Scene)
	assert.Equal(t, "spinning", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width, "unset keys keep their default")
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, 64, cfg.Mesh.Cells)

	mode, err := cfg.DrawMode()
	require.NoError(t, err)
	assert.Equal(t, scene.DrawIndexed, mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "mesh: [1, 2\n"))
	assert.ErrorContains(t, err, "parsing")
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "mode: wireframe\n"))
	assert.ErrorContains(t, err, `unknown draw mode "wireframe"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.Window.Height = 0 }, "window size 800x0"},
		{"scene", func(c *Config) { c.Scene = "teapot" }, `unknown scene "teapot"`},
		{"mode", func(c *Config) { c.Mode = "" }, `unknown draw mode ""`},
		{"clear color", func(c *Config) { c.ClearColor[2] = 2 }, "clear color"},
		{"cells", func(c *Config) { c.Mesh.Cells = 0 }, "mesh cells = 0"},
		{"width", func(c *Config) { c.Mesh.Width = -1 }, "mesh width = -1"},
		{"pan step", func(c *Config) { c.Controls.PanStep = 0 }, "pan step = 0"},
		{"zoom factor", func(c *Config) { c.Controls.ZoomFactor = 1 }, "zoom factor = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Scene = "teapot"
	cfg.Mesh.Cells = -3
	err := cfg.Validate()
	assert.ErrorContains(t, err, "unknown scene")
	assert.ErrorContains(t, err, "mesh cells = -3")
}
