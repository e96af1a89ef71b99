package glbackend_test

import (
	"errors"
	"testing"

	glbackend "github.com/hubastard/juliaset/engine/gfx/gl"
	"github.com/hubastard/juliaset/engine/gfx/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*glbackend.Context, *gltest.Device) {
	t.Helper()
	dev := gltest.NewDevice()
	ctx, err := glbackend.NewContext(dev)
	require.NoError(t, err)
	return ctx, dev
}

func TestNewContextWithoutDevice(t *testing.T) {
	ctx, err := glbackend.NewContext(nil)
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, glbackend.ErrNoContext)
}

func TestCompileAndLink(t *testing.T) {
	ctx, dev := newTestContext(t)

	vs, err := ctx.CompileShader(glbackend.VertexShader, gltest.VertexSource)
	require.NoError(t, err)
	fs, err := ctx.CompileShader(glbackend.FragmentShader, gltest.FragmentSource)
	require.NoError(t, err)

	prog, err := ctx.LinkProgram(vs, fs)
	require.NoError(t, err)
	assert.True(t, prog.Valid())
	// both shader objects are released once linked
	assert.Len(t, dev.Deleted["shader"], 2)
}

func TestCompileErrorKeepsLog(t *testing.T) {
	ctx, dev := newTestContext(t)

	for _, kind := range []glbackend.ShaderKind{glbackend.VertexShader, glbackend.FragmentShader} {
		sh, err := ctx.CompileShader(kind, "void main() { "+gltest.CompileFailMarker+" }")
		assert.Nil(t, sh)

		var cerr *glbackend.CompileError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, kind, cerr.Kind)
		assert.NotEmpty(t, cerr.Log)
		assert.Contains(t, err.Error(), cerr.Log)
	}
	assert.Len(t, dev.Deleted["shader"], 2)
}

func TestLinkErrorKeepsLog(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.LinkLog = "error: varying v_pos not written by vertex shader"

	_, err := ctx.NewProgram(gltest.VertexSource, gltest.FragmentSource)
	var lerr *glbackend.LinkError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, dev.LinkLog, lerr.Log)
	assert.Len(t, dev.Deleted["program"], 1)
	assert.Len(t, dev.Deleted["shader"], 2)
}

func TestLinkRejectsBadShaders(t *testing.T) {
	ctx, dev := newTestContext(t)
	compile := func(kind glbackend.ShaderKind) *glbackend.Shader {
		src := gltest.VertexSource
		if kind == glbackend.FragmentShader {
			src = gltest.FragmentSource
		}
		sh, err := ctx.CompileShader(kind, src)
		require.NoError(t, err)
		return sh
	}

	fs := compile(glbackend.FragmentShader)
	_, err := ctx.LinkProgram(nil, fs)
	assert.ErrorIs(t, err, glbackend.ErrNilShader)
	// the valid shader is still consumed
	assert.Len(t, dev.Deleted["shader"], 1)

	vs, fs := compile(glbackend.VertexShader), compile(glbackend.FragmentShader)
	_, err = ctx.LinkProgram(fs, vs)
	assert.ErrorIs(t, err, glbackend.ErrShaderKind)
	assert.Len(t, dev.Deleted["shader"], 3)

	vs, fs = compile(glbackend.VertexShader), compile(glbackend.FragmentShader)
	vs.Release()
	_, err = ctx.LinkProgram(vs, fs)
	assert.ErrorIs(t, err, glbackend.ErrNilShader)
	assert.Len(t, dev.Deleted["shader"], 5)

	assert.Empty(t, dev.Deleted["program"])
	ctx.Shutdown()
	assert.Len(t, dev.Deleted["shader"], 5)
}

func TestProgramReleaseUnbinds(t *testing.T) {
	ctx, dev := newTestContext(t)
	prog, err := ctx.NewProgram(gltest.VertexSource, gltest.FragmentSource)
	require.NoError(t, err)

	ctx.Use(prog)
	assert.Same(t, prog, ctx.Bound())

	prog.Release()
	assert.Nil(t, ctx.Bound())
	assert.Zero(t, dev.Used)
	assert.False(t, prog.Valid())

	// second release is a no-op
	prog.Release()
	assert.Len(t, dev.Deleted["program"], 1)
}

func TestShutdownReleasesEverything(t *testing.T) {
	ctx, dev := newTestContext(t)
	prog, err := ctx.NewProgram(gltest.VertexSource, gltest.FragmentSource)
	require.NoError(t, err)
	_, err = prog.BindAttrib(glbackend.AttribDesc{Name: "backdrop_pos", Size: 2, Vertices: []float32{0, 0}})
	require.NoError(t, err)
	_, err = ctx.NewTextureAllocator(0).Allocate(solidImage(1, 1))
	require.NoError(t, err)

	ctx.Shutdown()
	assert.Len(t, dev.Deleted["program"], 1)
	assert.Len(t, dev.Deleted["buffer"], 1)
	assert.Len(t, dev.Deleted["texture"], 1)
	assert.Len(t, dev.Deleted["vao"], 1)
}

func TestClearResetsColorAndDepth(t *testing.T) {
	ctx, dev := newTestContext(t)
	ctx.Clear([4]float32{0, 0, 0, 1})
	require.Len(t, dev.Clears, 1)
	assert.Equal(t, glbackend.ColorBufferBit|glbackend.DepthBufferBit, dev.Clears[0])

	ctx.Viewport(800, 400)
	assert.Equal(t, [4]int{0, 0, 800, 400}, dev.ViewportRect)
}
