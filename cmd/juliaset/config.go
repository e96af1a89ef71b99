package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hubastard/juliaset/engine/assets"
	"github.com/hubastard/juliaset/engine/colors"
	"github.com/hubastard/juliaset/engine/core"
	"github.com/hubastard/juliaset/engine/gfx/fractal"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
)

// Config is the viewer configuration as read from a TOML file.
type Config struct {
	Window  WindowConfig `toml:"window"`
	View    ViewConfig   `toml:"view"`
	Shaders ShaderConfig `toml:"shaders"`
}

type WindowConfig struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`
}

type ViewConfig struct {
	Zoom           float64    `toml:"zoom"`
	Center         [2]float64 `toml:"center"`
	ClickZoom      float64    `toml:"click_zoom"`
	ClickThreshold float64    `toml:"click_threshold"`
	Continuous     bool       `toml:"continuous"`
	TextureUnits   int        `toml:"texture_units"`
}

// ShaderConfig selects the shader sources. Vertex and Fragment are file paths
// overriding the builtin shaders; Fractal names a builtin fragment shader.
type ShaderConfig struct {
	Fractal  string `toml:"fractal"`
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Palette  string `toml:"palette"`
	Watch    bool   `toml:"watch"`
}

func defaultConfig() Config {
	opts := fractal.DefaultOptions()
	return Config{
		Window: WindowConfig{
			Title:      "Julia Set",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: opts.ClearColor,
		},
		View: ViewConfig{
			Zoom:           opts.InitialZoom,
			ClickZoom:      opts.ClickZoomFactor,
			ClickThreshold: opts.ClickThreshold,
			Continuous:     opts.Continuous,
			TextureUnits:   opts.TextureUnits,
		},
		Shaders: ShaderConfig{Fractal: "julia"},
	}
}

// loadConfig decodes path over the defaults. An empty path yields the
// defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(fractalFlag.Name) {
		cfg.Shaders.Fractal = ctx.String(fractalFlag.Name)
	}
	if ctx.IsSet(vertexFlag.Name) {
		cfg.Shaders.Vertex = ctx.String(vertexFlag.Name)
	}
	if ctx.IsSet(fragmentFlag.Name) {
		cfg.Shaders.Fragment = ctx.String(fragmentFlag.Name)
	}
	if ctx.IsSet(paletteFlag.Name) {
		cfg.Shaders.Palette = ctx.String(paletteFlag.Name)
	}
	if ctx.IsSet(watchFlag.Name) {
		cfg.Shaders.Watch = ctx.Bool(watchFlag.Name)
	}
	if ctx.IsSet(zoomFlag.Name) {
		cfg.View.Zoom = ctx.Float64(zoomFlag.Name)
	}
	if ctx.IsSet(clickZoomFlag.Name) {
		cfg.View.ClickZoom = ctx.Float64(clickZoomFlag.Name)
	}
	if ctx.IsSet(continuousFlag.Name) {
		cfg.View.Continuous = ctx.Bool(continuousFlag.Name)
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Window.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Window.Height = ctx.Int(heightFlag.Name)
	}
}

func (c Config) validate() error {
	switch {
	case c.Window.Width < 1 || c.Window.Height < 1:
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	case c.View.Zoom <= 0:
		return fmt.Errorf("config: zoom must be positive, got %v", c.View.Zoom)
	case c.View.ClickZoom < 0:
		return fmt.Errorf("config: click_zoom must not be negative, got %v", c.View.ClickZoom)
	case c.View.ClickThreshold < 0:
		return fmt.Errorf("config: click_threshold must not be negative, got %v", c.View.ClickThreshold)
	}
	if c.Shaders.Fragment == "" && !slices.Contains(assets.BuiltinFractals(), c.Shaders.Fractal) {
		return fmt.Errorf("config: unknown fractal %q (have %v)", c.Shaders.Fractal, assets.BuiltinFractals())
	}
	return nil
}

func (c Config) engine() core.Config {
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		ClearColor: c.Window.ClearColor,
	}
}

func (c Config) options() fractal.Options {
	opts := fractal.DefaultOptions()
	opts.InitialZoom = c.View.Zoom
	opts.InitialCenter = mgl64.Vec2{c.View.Center[0], c.View.Center[1]}
	opts.ClickZoomFactor = c.View.ClickZoom
	opts.ClickThreshold = c.View.ClickThreshold
	opts.Continuous = c.View.Continuous
	opts.TextureUnits = c.View.TextureUnits
	opts.ClearColor = c.Window.ClearColor
	return opts
}

// shaderFiles are the on-disk shader paths, the ones worth watching.
func (c Config) shaderFiles() []string {
	var files []string
	for _, p := range []string{c.Shaders.Vertex, c.Shaders.Fragment} {
		if p != "" {
			files = append(files, p)
		}
	}
	return files
}

// shaderSources reads the vertex and fragment text, falling back to the
// builtin shaders.
func (c Config) shaderSources() (vertex, fragment string, err error) {
	if c.Shaders.Vertex != "" {
		vertex, err = assets.LoadShader(c.Shaders.Vertex)
	} else {
		vertex, err = assets.BuiltinShader(assets.BuiltinVertex)
	}
	if err != nil {
		return "", "", err
	}
	if c.Shaders.Fragment != "" {
		fragment, err = assets.LoadShader(c.Shaders.Fragment)
	} else {
		fragment, err = assets.BuiltinShader(c.Shaders.Fractal + ".frag")
	}
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func (c Config) sources() (fractal.Sources, error) {
	vs, fs, err := c.shaderSources()
	if err != nil {
		return fractal.Sources{}, err
	}
	var pal image.Image = assets.DefaultPalette()
	if c.Shaders.Palette != "" {
		if pal, err = assets.LoadImage(c.Shaders.Palette); err != nil {
			return fractal.Sources{}, err
		}
	}
	return fractal.Sources{Vertex: vs, Fragment: fs, Palette: pal}, nil
}
