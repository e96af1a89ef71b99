package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// glDevice forwards Device calls to the OpenGL 3.3 core bindings. It must be
// used from the thread that owns the current context.
type glDevice struct{}

// Init loads the GL function pointers for the context current on this thread
// and returns a Device bound to it.
func Init() (Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoContext, err)
	}
	return glDevice{}, nil
}

func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func shaderType(k ShaderKind) uint32 {
	if k == FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func topology(t Topology) uint32 {
	switch t {
	case Points:
		return gl.POINTS
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func (glDevice) CreateShader(kind ShaderKind) uint32 { return gl.CreateShader(shaderType(kind)) }

func (glDevice) ShaderSource(sh uint32, src string) {
	csrc, free := gl.Strs(cstr(src))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
}

func (glDevice) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (glDevice) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (glDevice) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glDevice) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (glDevice) CreateProgram() uint32             { return gl.CreateProgram() }
func (glDevice) AttachShader(prog, sh uint32)      { gl.AttachShader(prog, sh) }
func (glDevice) LinkProgram(prog uint32)           { gl.LinkProgram(prog) }
func (glDevice) DeleteProgram(prog uint32)         { gl.DeleteProgram(prog) }
func (glDevice) UseProgram(prog uint32)            { gl.UseProgram(prog) }
func (glDevice) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (glDevice) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }
func (glDevice) Uniform1i(loc int32, v int32)      { gl.Uniform1i(loc, v) }

func (glDevice) ProgramLinked(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (glDevice) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glDevice) GetAttribLocation(prog uint32, name string) int32 {
	return gl.GetAttribLocation(prog, gl.Str(cstr(name)))
}

func (glDevice) GetUniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(cstr(name)))
}

func (glDevice) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (glDevice) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }
func (glDevice) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (glDevice) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (glDevice) BindArrayBuffer(buf uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, buf) }

func (glDevice) BufferData(data []float32, usage Usage) {
	hint := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), hint)
}

func (glDevice) DeleteBuffer(buf uint32)            { gl.DeleteBuffers(1, &buf) }
func (glDevice) EnableVertexAttribArray(loc uint32) { gl.EnableVertexAttribArray(loc) }

func (glDevice) VertexAttribPointer(loc uint32, size int32) {
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, nil)
}

func (glDevice) DrawArrays(mode Topology, first, count int32) {
	gl.DrawArrays(topology(mode), first, count)
}

func (glDevice) MaxTextureUnits() int {
	var n int32
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &n)
	return int(n)
}

func (glDevice) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (glDevice) ActiveTexture(unit int) { gl.ActiveTexture(gl.TEXTURE0 + uint32(unit)) }
func (glDevice) BindTexture(tex uint32) { gl.BindTexture(gl.TEXTURE_2D, tex) }

func (glDevice) TexImageRGBA(w, h int, pixels []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// TexNearestClamp sets the sampling state for lookup tables: no filtering
// across texels and no wrapping at the edges.
func (glDevice) TexNearestClamp() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (glDevice) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (glDevice) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (glDevice) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (glDevice) Clear(mask ClearMask) {
	var bits uint32
	if mask&ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (glDevice) Vendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (glDevice) Renderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (glDevice) Version() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }
