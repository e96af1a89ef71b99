package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport maps surface pixels to plane coordinates. Screen y grows downward,
// plane y grows upward. A surface of W×H pixels shows a plane region 1/Zoom
// wide and Aspect/Zoom tall, centered on Center.
type Viewport struct {
	Zoom   float64
	Center mgl64.Vec2
	Aspect float64
	Width  float64
	Height float64

	initZoom   float64
	initCenter mgl64.Vec2
}

// NewViewport returns a viewport for a w×h surface. zoom must be positive.
func NewViewport(zoom float64, center mgl64.Vec2, w, h int) (*Viewport, error) {
	if zoom <= 0 {
		return nil, errors.New("scene: zoom must be positive")
	}
	v := &Viewport{Zoom: zoom, Center: center, initZoom: zoom, initCenter: center, Aspect: 1}
	v.Resize(w, h)
	return v, nil
}

// Resize records the surface size and recomputes Aspect. Degenerate sizes
// (minimized windows) are ignored so the last good aspect ratio survives.
func (v *Viewport) Resize(w, h int) bool {
	if w < 1 || h < 1 {
		return false
	}
	fw, fh := float64(w), float64(h)
	if fw == v.Width && fh == v.Height {
		return false
	}
	v.Width, v.Height = fw, fh
	v.Aspect = fw / fh
	return true
}

// Reset restores the zoom and center given at construction.
func (v *Viewport) Reset() {
	v.Zoom = v.initZoom
	v.Center = v.initCenter
}

// SetZoom updates the zoom factor; non-positive values are rejected.
func (v *Viewport) SetZoom(z float64) bool {
	if z <= 0 || z == v.Zoom {
		return false
	}
	v.Zoom = z
	return true
}

// ScreenToPlane converts a surface position to plane coordinates relative to
// center.
func (v *Viewport) ScreenToPlane(sx, sy float64, center mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(sx/v.Width-0.5)/v.Zoom + center[0],
		((v.Height-sy)/v.Height-0.5)*v.Aspect/v.Zoom + center[1],
	}
}

// PlaneToScreen is the inverse of ScreenToPlane.
func (v *Viewport) PlaneToScreen(p, center mgl64.Vec2) (sx, sy float64) {
	sx = ((p[0]-center[0])*v.Zoom + 0.5) * v.Width
	sy = v.Height - ((p[1]-center[1])*v.Zoom/v.Aspect+0.5)*v.Height
	return sx, sy
}

// DragCenter is the center after the pointer moved (dx, dy) pixels against
// the drag direction, starting from start.
func (v *Viewport) DragCenter(start mgl64.Vec2, dx, dy float64) mgl64.Vec2 {
	return mgl64.Vec2{
		start[0] + dx/(v.Zoom*v.Width),
		start[1] - dy/(v.Zoom*v.Height)*v.Aspect,
	}
}

// Scale is the per-axis extent pushed as u_scale.
func (v *Viewport) Scale() (x, y float32) { return 1, float32(v.Aspect) }

// Translation is the center pushed as u_translation.
func (v *Viewport) Translation() (x, y float32) {
	return float32(v.Center[0]), float32(v.Center[1])
}
