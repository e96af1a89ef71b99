package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewportRejectsZoom(t *testing.T) {
	for _, z := range []float64{0, -1} {
		_, err := NewViewport(z, mgl64.Vec2{}, 800, 400)
		assert.Error(t, err)
	}
}

func TestResize(t *testing.T) {
	v, err := NewViewport(1, mgl64.Vec2{}, 800, 400)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Aspect)

	assert.True(t, v.Resize(300, 600))
	assert.Equal(t, 0.5, v.Aspect)
	assert.False(t, v.Resize(300, 600))
	assert.False(t, v.Resize(0, 600))
	assert.Equal(t, 0.5, v.Aspect)
}

func TestScreenCenterMapsToPlaneCenter(t *testing.T) {
	v, err := NewViewport(0.5, mgl64.Vec2{}, 800, 400)
	require.NoError(t, err)

	p := v.ScreenToPlane(400, 200, v.Center)
	assert.Equal(t, mgl64.Vec2{0, 0}, p)
}

func TestScreenToPlaneCorners(t *testing.T) {
	v, err := NewViewport(0.5, mgl64.Vec2{1, -1}, 800, 400)
	require.NoError(t, err)

	// top-left pixel is the plane's left edge and top edge
	p := v.ScreenToPlane(0, 0, v.Center)
	assert.InDelta(t, 1-1.0, p[0], 1e-12)
	assert.InDelta(t, -1+2.0, p[1], 1e-12)

	// bottom-right
	p = v.ScreenToPlane(800, 400, v.Center)
	assert.InDelta(t, 1+1.0, p[0], 1e-12)
	assert.InDelta(t, -1-2.0, p[1], 1e-12)
}

func TestScreenPlaneRoundTrip(t *testing.T) {
	cases := []struct {
		zoom   float64
		center mgl64.Vec2
		w, h   int
	}{
		{0.5, mgl64.Vec2{0, 0}, 800, 400},
		{1.5, mgl64.Vec2{-0.75, 0.1}, 640, 480},
		{1e6, mgl64.Vec2{-0.743643887, 0.131825904}, 1920, 1080},
		{0.01, mgl64.Vec2{3, -7}, 300, 900},
	}
	points := [][2]float64{{0, 0}, {12.5, 99}, {400, 200}, {799, 1}, {3, 377}}

	for _, c := range cases {
		v, err := NewViewport(c.zoom, c.center, c.w, c.h)
		require.NoError(t, err)
		for _, pt := range points {
			p := v.ScreenToPlane(pt[0], pt[1], v.Center)
			sx, sy := v.PlaneToScreen(p, v.Center)
			assert.InDelta(t, pt[0], sx, 1e-6)
			assert.InDelta(t, pt[1], sy, 1e-6)
		}
	}
}

func TestDragCenter(t *testing.T) {
	v, err := NewViewport(2, mgl64.Vec2{0.25, 0.5}, 800, 400)
	require.NoError(t, err)

	got := v.DragCenter(v.Center, 80, -40)
	assert.InDelta(t, 0.25+80/(2*800.0), got[0], 1e-15)
	assert.InDelta(t, 0.5+40/(2*400.0)*2, got[1], 1e-15)

	assert.Equal(t, v.Center, v.DragCenter(v.Center, 0, 0))
}

func TestScaleAndTranslation(t *testing.T) {
	v, err := NewViewport(1, mgl64.Vec2{0.5, -0.25}, 800, 400)
	require.NoError(t, err)

	sx, sy := v.Scale()
	assert.Equal(t, float32(1), sx)
	assert.Equal(t, float32(2), sy)

	tx, ty := v.Translation()
	assert.Equal(t, float32(0.5), tx)
	assert.Equal(t, float32(-0.25), ty)
}

func TestReset(t *testing.T) {
	v, err := NewViewport(0.5, mgl64.Vec2{1, 2}, 10, 10)
	require.NoError(t, err)
	v.Center = mgl64.Vec2{5, 5}
	assert.True(t, v.SetZoom(7))
	assert.False(t, v.SetZoom(-1))

	v.Reset()
	assert.Equal(t, 0.5, v.Zoom)
	assert.Equal(t, mgl64.Vec2{1, 2}, v.Center)
}
