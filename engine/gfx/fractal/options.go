package fractal

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hubastard/juliaset/engine/colors"
	glbackend "github.com/hubastard/juliaset/engine/gfx/gl"
	"github.com/hubastard/juliaset/engine/scene"
)

// Options configures a Session. Start from DefaultOptions and override fields.
type Options struct {
	// PositionAttrib is the vec2 vertex input fed the full-viewport quad.
	PositionAttrib string
	// ZoomUniform (float) and ScaleUniform (vec2) are required.
	ZoomUniform  string
	ScaleUniform string
	// TranslationUniform (vec2) receives the view center. Empty disables it
	// for shaders that do not pan.
	TranslationUniform string
	// PaletteSampler names the sampler2D bound to the palette image, if any.
	PaletteSampler string

	InitialZoom   float64
	InitialCenter mgl64.Vec2

	// ClickThreshold is the per-axis pixel travel separating click from drag.
	ClickThreshold float64
	// ClickZoomFactor multiplies the zoom on every click; 1 only recenters.
	// Shift-click divides by it instead.
	ClickZoomFactor float64

	TextureUnits int
	ClearColor   colors.Color
	// Continuous re-requests a frame after every frame. When false, frames
	// are only drawn after a view change or resize.
	Continuous bool
}

// DefaultOptions returns the shader contract used by the bundled shaders.
func DefaultOptions() Options {
	return Options{
		PositionAttrib:     "backdrop_pos",
		ZoomUniform:        "u_zoom",
		ScaleUniform:       "u_scale",
		TranslationUniform: "u_translation",
		PaletteSampler:     "u_palette",
		InitialZoom:        0.5,
		ClickThreshold:     scene.DefaultClickThreshold,
		ClickZoomFactor:    1.5,
		TextureUnits:       glbackend.DefaultTextureUnits,
		ClearColor:         colors.Black,
		Continuous:         true,
	}
}

func (o Options) clickZoom() scene.ClickZoom {
	if o.ClickZoomFactor <= 0 || o.ClickZoomFactor == 1 {
		return scene.KeepZoom
	}
	return scene.ScaleZoom(o.ClickZoomFactor)
}

// shiftClickZoom undoes one regular click, so Shift-click zooms back out.
func (o Options) shiftClickZoom() scene.ClickZoom {
	if o.ClickZoomFactor <= 0 || o.ClickZoomFactor == 1 {
		return nil
	}
	return scene.ScaleZoom(1 / o.ClickZoomFactor)
}
