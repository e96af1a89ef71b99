package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hubastard/juliaset/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, zoom float64) (*Controller, *int) {
	t.Helper()
	v, err := NewViewport(zoom, mgl64.Vec2{}, 800, 400)
	require.NoError(t, err)
	redraws := 0
	return NewController(v, func() { redraws++ }), &redraws
}

func TestDragReturnToStartRestoresCenter(t *testing.T) {
	c, _ := newTestController(t, 0.5)
	c.View.Center = mgl64.Vec2{-0.7, 0.27}
	center0 := c.View.Center

	require.True(t, c.PointerDown(100, 100))
	assert.True(t, c.PointerMove(173, 41))
	assert.NotEqual(t, center0, c.View.Center)
	assert.True(t, c.PointerMove(100, 100))
	assert.Equal(t, center0, c.View.Center)
}

func TestDragMovesAgainstPointer(t *testing.T) {
	c, redraws := newTestController(t, 1)

	c.PointerDown(400, 200)
	c.PointerMove(480, 240)
	// pointer right and down: the plane follows, so the center moves left and up
	assert.InDelta(t, -80/800.0, c.View.Center[0], 1e-15)
	assert.InDelta(t, 40/400.0*2, c.View.Center[1], 1e-15)
	assert.Equal(t, 1, *redraws)

	assert.Equal(t, GestureDrag, c.PointerUp(480, 240))
	assert.False(t, c.Dragging())
	assert.Equal(t, 1.0, c.View.Zoom)
	// the final position was already applied by the move
	assert.Equal(t, 1, *redraws)
}

func TestClickDragThreshold(t *testing.T) {
	c, _ := newTestController(t, 1)

	c.PointerDown(100, 100)
	assert.Equal(t, GestureClick, c.PointerUp(104, 104))

	c.View.Reset()
	c.PointerDown(100, 100)
	assert.Equal(t, GestureDrag, c.PointerUp(106, 100))

	c.View.Reset()
	c.PointerDown(100, 100)
	assert.Equal(t, GestureDrag, c.PointerUp(100, 95))
}

func TestClickAtCenterKeepsCenter(t *testing.T) {
	c, redraws := newTestController(t, 0.5)

	c.PointerDown(400, 200)
	assert.Equal(t, GestureClick, c.PointerUp(400, 200))
	assert.Equal(t, mgl64.Vec2{0, 0}, c.View.Center)
	assert.Equal(t, 0.5, c.View.Zoom)
	assert.Equal(t, 1, *redraws)
}

func TestClickRecentersAndZooms(t *testing.T) {
	c, _ := newTestController(t, 0.5)
	c.ClickZoom = ScaleZoom(1.5)

	c.PointerDown(600, 100)
	// jitter inside the threshold must not leak into the click target
	c.PointerMove(602, 98)
	assert.Equal(t, GestureClick, c.PointerUp(600, 100))

	assert.InDelta(t, (600/800.0-0.5)/0.5, c.View.Center[0], 1e-12)
	assert.InDelta(t, ((400-100)/400.0-0.5)*2/0.5, c.View.Center[1], 1e-12)
	assert.InDelta(t, 0.75, c.View.Zoom, 1e-15)
}

func TestShiftClickUsesShiftZoom(t *testing.T) {
	c, _ := newTestController(t, 0.5)
	c.ClickZoom = ScaleZoom(2)
	c.ShiftClickZoom = ScaleZoom(0.5)
	mods := core.ModNone
	c.Mods = func() core.Mod { return mods }

	c.PointerDown(400, 200)
	c.PointerUp(400, 200)
	assert.Equal(t, 1.0, c.View.Zoom)

	mods = core.ModShift | core.ModAlt
	c.PointerDown(400, 200)
	c.PointerUp(400, 200)
	assert.Equal(t, 0.5, c.View.Zoom)

	// without a shift strategy Shift clicks behave like plain clicks
	c.ShiftClickZoom = nil
	c.PointerDown(400, 200)
	c.PointerUp(400, 200)
	assert.Equal(t, 1.0, c.View.Zoom)
}

func TestClickZoomMustStayPositive(t *testing.T) {
	c, _ := newTestController(t, 2)
	c.ClickZoom = func(float64) float64 { return 0 }

	c.PointerDown(10, 10)
	c.PointerUp(10, 10)
	assert.Equal(t, 2.0, c.View.Zoom)
}

func TestPointerDownWhileDraggingIgnored(t *testing.T) {
	c, _ := newTestController(t, 1)

	require.True(t, c.PointerDown(10, 10))
	assert.False(t, c.PointerDown(300, 300))
	// the original start point still anchors the gesture
	assert.Equal(t, GestureClick, c.PointerUp(12, 12))
}

func TestPointerUpWithoutDown(t *testing.T) {
	c, redraws := newTestController(t, 1)
	assert.Equal(t, GestureNone, c.PointerUp(5, 5))
	assert.False(t, c.PointerMove(50, 50))
	assert.Zero(t, *redraws)
}

func TestHandleEvent(t *testing.T) {
	c, redraws := newTestController(t, 1)

	assert.True(t, c.HandleEvent(core.EventMouseButton{Button: core.MouseLeft, Down: true, X: 10, Y: 10}))
	assert.True(t, c.HandleEvent(core.EventMouseMove{X: 50, Y: 10}))
	assert.True(t, c.HandleEvent(core.EventMouseButton{Button: core.MouseLeft, X: 50, Y: 10}))
	assert.False(t, c.HandleEvent(core.EventMouseButton{Button: core.MouseRight, Down: true}))
	assert.NotEqual(t, mgl64.Vec2{}, c.View.Center)

	assert.True(t, c.HandleEvent(core.EventKey{Key: core.KeySpace, Down: true}))
	assert.Equal(t, mgl64.Vec2{}, c.View.Center)
	assert.Equal(t, 2, *redraws)
}
