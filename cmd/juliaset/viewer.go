package main

import (
	"log/slog"

	"github.com/hubastard/juliaset/engine/core"
	"github.com/hubastard/juliaset/engine/gfx/fractal"
	glbackend "github.com/hubastard/juliaset/engine/gfx/gl"
	"github.com/hubastard/juliaset/engine/platform"
)

// viewer is the core.App: it owns the GL context and pushes the fractal
// session as the only layer.
type viewer struct {
	cfg     Config
	win     *platform.GLFWWindow
	ctx     *glbackend.Context
	session *fractal.Session
	watcher *shaderWatcher
}

func (v *viewer) OnStart(e *core.Engine) error {
	src, err := v.cfg.sources()
	if err != nil {
		return err
	}
	if v.ctx, err = glbackend.NewContext(v.win.Device()); err != nil {
		return err
	}
	vendor, renderer, version := v.ctx.Info()
	slog.Info("gpu", "vendor", vendor, "renderer", renderer, "version", version)

	v.session, err = fractal.New(v.ctx, e.Frames, e.Window, src, v.cfg.options())
	if err != nil {
		return err
	}
	if err := e.PushLayer(v.session); err != nil {
		return err
	}

	if files := v.cfg.shaderFiles(); v.cfg.Shaders.Watch && len(files) > 0 {
		v.watcher, err = watchShaders(files, e.Frames, v.reload)
		if err != nil {
			return err
		}
		slog.Info("watching shaders", "files", files)
	}
	return nil
}

func (v *viewer) OnEvent(e *core.Engine, ev core.Event) {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return
	}
	switch k.Key {
	case core.KeyEscape:
		e.Window.RequestClose()
	case core.KeyR:
		v.reload()
	}
}

func (v *viewer) OnShutdown(*core.Engine) {
	if v.watcher != nil {
		v.watcher.Close()
	}
	if v.ctx != nil {
		v.ctx.Shutdown()
	}
}

// reload rereads the shader sources and relinks. It must run on the render
// thread. Failures keep the current program.
func (v *viewer) reload() {
	vs, fs, err := v.cfg.shaderSources()
	if err == nil {
		err = v.session.Reload(vs, fs)
	}
	if err != nil {
		slog.Error("shader reload failed", "err", err)
		return
	}
	slog.Info("shaders reloaded")
}
