package core

import (
	"time"

	"github.com/hubastard/juliaset/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error     // called once after the window exists; push layers here
	OnEvent(e *Engine, ev Event) // input/window events not consumed by a layer
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window Window
	Frames *FrameQueue
	Input  *Input
	Layers LayerStack
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer attaches l and places it on top of the event stack.
func (e *Engine) PushLayer(l Layer) error {
	if err := l.OnAttach(e); err != nil {
		return err
	}
	e.Layers.Push(l)
	return nil
}

// Window abstraction.
type Window interface {
	PollEvents()
	// WaitEvents blocks until at least one event arrived or Wake was called.
	WaitEvents()
	// Wake unblocks WaitEvents. Safe to call from any goroutine.
	Wake()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventMouseMove carries the cursor position in framebuffer pixels from the
// top-left corner.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventMouseButton is a press or release at the cursor position.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyR
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
}
