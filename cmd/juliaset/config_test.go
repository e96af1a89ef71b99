package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hubastard/juliaset/engine/colors"
	"github.com/hubastard/juliaset/engine/gfx/fractal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultConfigMatchesOptions(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, fractal.DefaultOptions(), cfg.options())
	assert.Equal(t, "julia", cfg.Shaders.Fractal)
	assert.Empty(t, cfg.shaderFiles())
}

func TestLoadConfigFile(t *testing.T) {
	p := writeTemp(t, "view.toml", `
[window]
title = "m"
width = 640
clear_color = "#ff000080"

[view]
zoom = 2.0
center = [-0.5, 0.25]
click_zoom = 1.0
continuous = false

[shaders]
fractal = "mandelbrot"
`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, "m", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep defaults")
	assert.InDelta(t, 0.5, cfg.Window.ClearColor[3], 0.01)
	assert.Equal(t, float32(1), cfg.Window.ClearColor[0])

	opts := cfg.options()
	assert.Equal(t, 2.0, opts.InitialZoom)
	assert.Equal(t, mgl64.Vec2{-0.5, 0.25}, opts.InitialCenter)
	assert.Equal(t, 1.0, opts.ClickZoomFactor)
	assert.False(t, opts.Continuous)
	assert.Equal(t, cfg.Window.ClearColor, opts.ClearColor)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	p := writeTemp(t, "bad.toml", "[view]\nzom = 2.0\n")
	_, err := loadConfig(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zom")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadConfig(writeTemp(t, "bad.toml", "[window]\nclear_color = \"#zz\"\n"))
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	set := flag.NewFlagSet("test", 0)
	set.String(fragmentFlag.Name, "", "")
	set.String(fractalFlag.Name, "", "")
	set.Float64(zoomFlag.Name, 0, "")
	set.Float64(clickZoomFlag.Name, 0, "")
	set.Bool(continuousFlag.Name, true, "")
	set.Bool(watchFlag.Name, false, "")
	set.Int(widthFlag.Name, 0, "")
	require.NoError(t, set.Parse([]string{
		"--fragment=my.frag", "--zoom=3", "--continuous=false", "--watch",
	}))
	ctx := cli.NewContext(nil, set, nil)

	cfg := defaultConfig()
	applyFlags(ctx, &cfg)

	assert.Equal(t, "my.frag", cfg.Shaders.Fragment)
	assert.Equal(t, "julia", cfg.Shaders.Fractal, "unset flag keeps the file value")
	assert.Equal(t, 3.0, cfg.View.Zoom)
	assert.Equal(t, 1.5, cfg.View.ClickZoom)
	assert.False(t, cfg.View.Continuous)
	assert.True(t, cfg.Shaders.Watch)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, []string{"my.frag"}, cfg.shaderFiles())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero zoom", func(c *Config) { c.View.Zoom = 0 }},
		{"negative click zoom", func(c *Config) { c.View.ClickZoom = -1 }},
		{"negative threshold", func(c *Config) { c.View.ClickThreshold = -1 }},
		{"unknown fractal", func(c *Config) { c.Shaders.Fractal = "newton" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.validate())
		})
	}

	cfg := defaultConfig()
	cfg.Shaders.Fractal = "newton"
	cfg.Shaders.Fragment = "newton.frag"
	assert.NoError(t, cfg.validate(), "a fragment file makes the fractal name irrelevant")
}

func TestSources(t *testing.T) {
	cfg := defaultConfig()
	src, err := cfg.sources()
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "backdrop_pos")
	assert.Contains(t, src.Fragment, "u_palette")
	require.NotNil(t, src.Palette)
	assert.Equal(t, 256, src.Palette.Bounds().Dx())

	cfg.Shaders.Fragment = writeTemp(t, "f.frag", "custom")
	src, err = cfg.sources()
	require.NoError(t, err)
	assert.Equal(t, "custom", src.Fragment)

	cfg.Shaders.Palette = filepath.Join(t.TempDir(), "missing.png")
	_, err = cfg.sources()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Window.ClearColor = colors.White
	ec := cfg.engine()
	assert.Equal(t, "Julia Set", ec.Title)
	assert.Equal(t, 1280, ec.Width)
	assert.True(t, ec.VSync)
	assert.Equal(t, colors.White, ec.ClearColor)
}
