package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/juliaset/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestTranslateButton(t *testing.T) {
	b, ok := translateButton(glfw.MouseButtonLeft)
	assert.True(t, ok)
	assert.Equal(t, core.MouseLeft, b)

	_, ok = translateButton(glfw.MouseButton5)
	assert.False(t, ok)
}

func TestTranslateKeyAndMods(t *testing.T) {
	assert.Equal(t, core.KeySpace, translateKey(glfw.KeySpace))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyF12))
	assert.Equal(t, core.ModShift|core.ModSuper, translateMods(glfw.ModShift|glfw.ModSuper))
}
