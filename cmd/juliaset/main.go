// Command juliaset opens a window rendering a fractal with a fragment shader.
// Drag to pan, click to recenter (and zoom), Shift-click to zoom out, Space to
// reset, R to reload the shaders, Escape to quit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/juliaset/engine/core"
	"github.com/hubastard/juliaset/engine/logx"
	"github.com/hubastard/juliaset/engine/platform"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML configuration file",
		EnvVars: []string{"JULIASET_CONFIG"},
	}
	fractalFlag = &cli.StringFlag{
		Name:  "fractal",
		Usage: "builtin fragment shader (julia, mandelbrot)",
	}
	vertexFlag = &cli.StringFlag{
		Name:  "vertex",
		Usage: "vertex shader file",
	}
	fragmentFlag = &cli.StringFlag{
		Name:  "fragment",
		Usage: "fragment shader file, overrides --fractal",
	}
	paletteFlag = &cli.StringFlag{
		Name:  "palette",
		Usage: "palette image (PNG, BMP or WebP)",
	}
	watchFlag = &cli.BoolFlag{
		Name:  "watch",
		Usage: "reload shader files when they change",
	}
	zoomFlag = &cli.Float64Flag{
		Name:  "zoom",
		Usage: "initial zoom",
	}
	clickZoomFlag = &cli.Float64Flag{
		Name:  "click-zoom",
		Usage: "zoom factor applied on click, 1 only recenters",
	}
	continuousFlag = &cli.BoolFlag{
		Name:  "continuous",
		Usage: "redraw every frame instead of on change",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log info messages",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "vv",
		Usage: "log debug messages",
	}
	quietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "log errors only",
	}
)

var app = &cli.App{
	Name:  "juliaset",
	Usage: "GPU fractal viewer with pan and zoom",
	Flags: []cli.Flag{
		configFlag,
		fractalFlag,
		vertexFlag,
		fragmentFlag,
		paletteFlag,
		watchFlag,
		zoomFlag,
		clickZoomFlag,
		continuousFlag,
		widthFlag,
		heightFlag,
		verboseFlag,
		debugFlag,
		quietFlag,
	},
	Action: run,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	logx.Setup(os.Stderr, logx.LevelFromFlags(ctx.Bool(debugFlag.Name), ctx.Bool(verboseFlag.Name), ctx.Bool(quietFlag.Name)))

	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}
	applyFlags(ctx, &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}
	slog.Debug("config", "fractal", cfg.Shaders.Fractal, "zoom", cfg.View.Zoom, "continuous", cfg.View.Continuous)

	v := &viewer{cfg: cfg}
	newWindow := func(c core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(c, nil)
		if err != nil {
			return nil, err
		}
		v.win = w
		return w, nil
	}
	defer func() {
		if v.win != nil {
			v.win.Destroy()
		}
	}()
	return core.Run(v, cfg.engine(), newWindow)
}
