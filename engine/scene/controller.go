package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hubastard/juliaset/engine/core"
)

// DefaultClickThreshold is the pointer travel, in pixels per axis, below which
// a press/release pair counts as a click rather than a drag.
const DefaultClickThreshold = 5

// Gesture is what a completed press/release pair turned out to be.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureClick
	GestureDrag
)

func (g Gesture) String() string {
	switch g {
	case GestureClick:
		return "click"
	case GestureDrag:
		return "drag"
	default:
		return "none"
	}
}

// ClickZoom maps the zoom before a click to the zoom after it.
type ClickZoom func(zoom float64) float64

// KeepZoom recenters on click without zooming.
func KeepZoom(zoom float64) float64 { return zoom }

// ScaleZoom multiplies the zoom by f on every click.
func ScaleZoom(f float64) ClickZoom {
	return func(zoom float64) float64 { return zoom * f }
}

type dragGesture struct {
	screenStart   mgl64.Vec2
	centerAtStart mgl64.Vec2
}

// Controller turns pointer input into viewport changes: drag pans, click
// recenters on the clicked point and applies ClickZoom. At most one gesture is
// tracked at a time.
type Controller struct {
	View           *Viewport
	ClickThreshold float64
	ClickZoom      ClickZoom
	// ShiftClickZoom replaces ClickZoom for clicks released with Shift held.
	// Nil means Shift makes no difference.
	ShiftClickZoom ClickZoom
	// Mods reports the modifier keys held at release time. Nil means none.
	Mods func() core.Mod
	// OnChange runs after every center or zoom mutation.
	OnChange func()

	drag *dragGesture
}

func NewController(v *Viewport, onChange func()) *Controller {
	return &Controller{
		View:           v,
		ClickThreshold: DefaultClickThreshold,
		ClickZoom:      KeepZoom,
		OnChange:       onChange,
	}
}

func (c *Controller) Dragging() bool { return c.drag != nil }

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// PointerDown starts a gesture at (x, y), surface-relative. It is ignored
// while a gesture is already in progress.
func (c *Controller) PointerDown(x, y float64) bool {
	if c.drag != nil {
		return false
	}
	c.drag = &dragGesture{
		screenStart:   mgl64.Vec2{x, y},
		centerAtStart: c.View.Center,
	}
	return true
}

func (c *Controller) delta(x, y float64) (dx, dy float64) {
	return c.drag.screenStart[0] - x, c.drag.screenStart[1] - y
}

// PointerMove pans the view while dragging. The center is always derived from
// the gesture start, so returning to the start point restores it exactly.
func (c *Controller) PointerMove(x, y float64) bool {
	if c.drag == nil {
		return false
	}
	dx, dy := c.delta(x, y)
	next := c.View.DragCenter(c.drag.centerAtStart, dx, dy)
	if next == c.View.Center {
		return false
	}
	c.View.Center = next
	c.changed()
	return true
}

// PointerUp ends the gesture. A release within ClickThreshold of the press is
// a click; anything else keeps the drag result. A release without a press
// returns GestureNone.
func (c *Controller) PointerUp(x, y float64) Gesture {
	if c.drag == nil {
		return GestureNone
	}
	g := c.drag
	c.drag = nil

	dx, dy := g.screenStart[0]-x, g.screenStart[1]-y
	if math.Abs(dx) < c.ClickThreshold && math.Abs(dy) < c.ClickThreshold {
		c.View.Center = c.View.ScreenToPlane(x, y, g.centerAtStart)
		if zoom := c.clickZoom(); zoom != nil {
			c.View.SetZoom(zoom(c.View.Zoom))
		}
		c.changed()
		return GestureClick
	}

	if next := c.View.DragCenter(g.centerAtStart, dx, dy); next != c.View.Center {
		c.View.Center = next
		c.changed()
	}
	return GestureDrag
}

func (c *Controller) clickZoom() ClickZoom {
	if c.ShiftClickZoom != nil && c.Mods != nil && c.Mods()&core.ModShift != 0 {
		return c.ShiftClickZoom
	}
	return c.ClickZoom
}

// HandleEvent feeds window events to the controller. Left button drives
// gestures, the space key resets the view. It reports whether the event was
// consumed.
func (c *Controller) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseButton:
		if e.Button != core.MouseLeft {
			return false
		}
		if e.Down {
			return c.PointerDown(e.X, e.Y)
		}
		return c.PointerUp(e.X, e.Y) != GestureNone
	case core.EventMouseMove:
		return c.PointerMove(e.X, e.Y)
	case core.EventKey:
		if e.Down && e.Key == core.KeySpace {
			c.drag = nil
			c.View.Reset()
			c.changed()
			return true
		}
	}
	return false
}
