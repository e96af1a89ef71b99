// Package fractal renders a shader-defined fractal over the whole viewport and
// lets the pointer pan and zoom it.
package fractal

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hubastard/juliaset/engine/core"
	glbackend "github.com/hubastard/juliaset/engine/gfx/gl"
	"github.com/hubastard/juliaset/engine/scene"
)

// fullQuad covers clip space as a triangle strip.
var fullQuad = []float32{
	1, 1,
	-1, 1,
	1, -1,
	-1, -1,
}

// Surface reports the drawable size in pixels. It is read once per frame.
type Surface interface {
	FramebufferSize() (int, int)
}

// Sources are the caller-supplied assets. Palette is optional.
type Sources struct {
	Vertex   string
	Fragment string
	Palette  image.Image
}

// pipeline is everything tied to one linked program.
type pipeline struct {
	prog           *glbackend.Program
	quad           *glbackend.VertexAttrib
	setZoom        func(float32) error
	setScale       func(x, y float32) error
	setTranslation func(x, y float32) error
}

func (p *pipeline) release() {
	p.quad.Release()
	p.prog.Release()
}

// Session owns the GPU resources and view state for one surface. All methods
// must run on the render thread.
type Session struct {
	ctx     *glbackend.Context
	sched   core.Scheduler
	surface Surface
	opts    Options

	pipe     *pipeline
	textures *glbackend.TextureAllocator
	palette  glbackend.TextureUnit
	hasPal   bool

	view *scene.Viewport
	ctrl *scene.Controller

	requested bool
	stopped   bool
	frames    int
	err       error
}

// New builds the program, quad binding, uniform setters and palette texture.
// Any failure is returned before anything is drawn.
func New(ctx *glbackend.Context, sched core.Scheduler, surface Surface, src Sources, opts Options) (*Session, error) {
	if ctx == nil || surface == nil {
		return nil, glbackend.ErrNoContext
	}
	if sched == nil {
		return nil, core.ErrNoScheduler
	}
	w, h := surface.FramebufferSize()
	view, err := scene.NewViewport(opts.InitialZoom, opts.InitialCenter, w, h)
	if err != nil {
		return nil, err
	}

	s := &Session{ctx: ctx, sched: sched, surface: surface, opts: opts, view: view}
	s.pipe, err = s.buildPipeline(src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	s.textures = ctx.NewTextureAllocator(opts.TextureUnits)
	if src.Palette != nil {
		if err := s.bindPalette(src.Palette); err != nil {
			s.pipe.release()
			return nil, err
		}
	}

	s.ctrl = scene.NewController(view, s.Invalidate)
	s.ctrl.ClickThreshold = opts.ClickThreshold
	s.ctrl.ClickZoom = opts.clickZoom()
	s.ctrl.ShiftClickZoom = opts.shiftClickZoom()
	return s, nil
}

func (s *Session) buildPipeline(vertex, fragment string) (*pipeline, error) {
	prog, err := s.ctx.NewProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}
	p := &pipeline{prog: prog}
	fail := func(err error) (*pipeline, error) {
		if p.quad != nil {
			p.quad.Release()
		}
		prog.Release()
		return nil, err
	}

	p.quad, err = prog.BindAttrib(glbackend.AttribDesc{
		Name:     s.opts.PositionAttrib,
		Size:     2,
		Topology: glbackend.TriangleStrip,
		Vertices: fullQuad,
	})
	if err != nil {
		return fail(err)
	}
	if p.setZoom, err = prog.Float1(s.opts.ZoomUniform); err != nil {
		return fail(err)
	}
	if p.setScale, err = prog.Float2(s.opts.ScaleUniform); err != nil {
		return fail(err)
	}
	if s.opts.TranslationUniform != "" {
		if p.setTranslation, err = prog.Float2(s.opts.TranslationUniform); err != nil {
			return fail(err)
		}
	}
	if s.hasPal {
		s.ctx.Use(prog)
		if err := prog.SetSampler(s.opts.PaletteSampler, s.palette); err != nil {
			return fail(err)
		}
	}
	return p, nil
}

func (s *Session) bindPalette(img image.Image) error {
	unit, err := s.textures.Allocate(img)
	if err != nil {
		return err
	}
	b := img.Bounds()
	slog.Debug("palette allocated", "unit", unit, "width", b.Dx(), "height", b.Dy())
	s.palette, s.hasPal = unit, true
	s.ctx.Use(s.pipe.prog)
	return s.pipe.prog.SetSampler(s.opts.PaletteSampler, unit)
}

// View exposes the viewport for inspection; mutate it through the controller.
func (s *Session) View() *scene.Viewport { return s.view }

// Controller is the pointer handler driving the view.
func (s *Session) Controller() *scene.Controller { return s.ctrl }

// Frames is the number of frames drawn.
func (s *Session) Frames() int { return s.frames }

// Err is the error that stopped the frame loop, if any.
func (s *Session) Err() error { return s.err }

// Start schedules the first frame.
func (s *Session) Start() {
	s.stopped = false
	s.request()
}

// Stop prevents further frames from being scheduled.
func (s *Session) Stop() { s.stopped = true }

// Invalidate asks for a redraw, coalescing with an already pending request.
func (s *Session) Invalidate() { s.request() }

func (s *Session) request() {
	if s.requested || s.stopped || s.err != nil {
		return
	}
	s.requested = true
	s.sched.RequestFrame(s.Frame)
}

// Frame draws one frame: re-read the surface size, push zoom, scale and
// translation, draw the quad. In continuous mode it schedules the next frame.
// A GPU usage error stops the loop; it is kept in Err. Frame reports whether
// the back buffer holds a finished frame.
func (s *Session) Frame() bool {
	s.requested = false
	if s.stopped || s.err != nil {
		return false
	}
	if err := s.draw(); err != nil {
		s.err = err
		slog.Error("frame failed; rendering stopped", "frame", s.frames, "err", err)
		return false
	}
	s.frames++
	if s.opts.Continuous {
		s.request()
	}
	return true
}

func (s *Session) draw() error {
	w, h := s.surface.FramebufferSize()
	s.view.Resize(w, h)

	s.ctx.Viewport(int(s.view.Width), int(s.view.Height))
	s.ctx.Clear(s.opts.ClearColor)
	s.ctx.Use(s.pipe.prog)

	p := s.pipe
	if err := p.setZoom(float32(s.view.Zoom)); err != nil {
		return err
	}
	if err := p.setScale(s.view.Scale()); err != nil {
		return err
	}
	if p.setTranslation != nil {
		if err := p.setTranslation(s.view.Translation()); err != nil {
			return err
		}
	}
	return p.quad.Draw(nil)
}

// Reload rebuilds the program from new sources. On failure the current
// program keeps rendering and the error is returned. A successful reload
// clears a previous frame error and resumes the frame loop.
func (s *Session) Reload(vertex, fragment string) error {
	next, err := s.buildPipeline(vertex, fragment)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	s.pipe.release()
	s.pipe = next
	if s.err != nil {
		slog.Info("frame loop resumed after reload", "err", s.err)
		s.err = nil
	}
	s.Invalidate()
	return nil
}

// HandleEvent routes pointer and key events to the controller and redraws on
// resize. It reports whether the event was consumed.
func (s *Session) HandleEvent(ev core.Event) bool {
	if _, ok := ev.(core.EventResize); ok {
		s.Invalidate()
		return false
	}
	wasDragging := s.ctrl.Dragging()
	consumed := s.ctrl.HandleEvent(ev)
	if b, ok := ev.(core.EventMouseButton); ok && wasDragging && !b.Down && consumed {
		slog.Debug("gesture", "zoom", s.view.Zoom, "center", s.view.Center)
	}
	return consumed
}

// Release frees the session's GPU objects. The context itself stays alive.
func (s *Session) Release() {
	s.Stop()
	if s.pipe != nil {
		s.pipe.release()
		s.pipe = nil
	}
	if s.textures != nil {
		s.textures.Release()
	}
}
