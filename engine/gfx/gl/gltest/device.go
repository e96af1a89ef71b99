// Package gltest provides a recording glbackend.Device for tests that run
// without a GPU.
package gltest

import (
	"fmt"
	"strings"

	glbackend "github.com/hubastard/juliaset/engine/gfx/gl"
)

// CompileFailMarker makes any shader whose source contains it fail to compile.
const CompileFailMarker = "!error"

// Sample shaders that satisfy the default attribute and uniform names.
const (
	VertexSource   = "#version 330 core\nin vec2 backdrop_pos;\nvoid main() { gl_Position = vec4(backdrop_pos, 0.0, 1.0); }\n"
	FragmentSource = "#version 330 core\nuniform float u_zoom;\nout vec4 c;\nvoid main() { c = vec4(u_zoom); }\n"
)

// DrawCall is one recorded DrawArrays with the buffer contents at the time.
type DrawCall struct {
	Mode  glbackend.Topology
	First int32
	Count int32
	Buf   uint32
	Data  []float32
}

// Device records GL traffic. Attribs and Uniforms list the active names of
// every linked program; a non-empty LinkLog makes every link fail.
type Device struct {
	next uint32

	Kinds   map[uint32]glbackend.ShaderKind
	Sources map[uint32]string
	LinkLog string

	Attribs  map[string]int32
	Uniforms map[string]int32
	MaxUnits int

	Used     uint32
	BoundBuf uint32
	BufData  map[uint32][]float32
	BufUsage map[uint32]glbackend.Usage
	Pointers map[uint32]int32
	Enabled  map[uint32]bool
	Draws    []DrawCall

	F1 map[int32]float32
	F2 map[int32][2]float32
	I1 map[int32]int32

	ActiveUnit int
	BoundTex   map[int]uint32
	TexImages  map[uint32][2]int
	Nearest    map[uint32]bool

	Clears       []glbackend.ClearMask
	ViewportRect [4]int

	// Deleted holds released handles keyed by object kind:
	// "shader", "program", "buffer", "texture", "vao".
	Deleted map[string][]uint32
}

// NewDevice returns a device exposing backdrop_pos and the u_zoom, u_scale,
// u_translation and u_palette uniforms at locations 0..4.
func NewDevice() *Device {
	return &Device{
		Kinds:     map[uint32]glbackend.ShaderKind{},
		Sources:   map[uint32]string{},
		Attribs:   map[string]int32{"backdrop_pos": 0},
		Uniforms:  map[string]int32{"u_zoom": 1, "u_scale": 2, "u_translation": 3, "u_palette": 4},
		BufData:   map[uint32][]float32{},
		BufUsage:  map[uint32]glbackend.Usage{},
		Pointers:  map[uint32]int32{},
		Enabled:   map[uint32]bool{},
		F1:        map[int32]float32{},
		F2:        map[int32][2]float32{},
		I1:        map[int32]int32{},
		BoundTex:  map[int]uint32{},
		TexImages: map[uint32][2]int{},
		Nearest:   map[uint32]bool{},
		Deleted:   map[string][]uint32{},
	}
}

// LastDraw returns the most recent draw call. It panics if there was none.
func (d *Device) LastDraw() DrawCall { return d.Draws[len(d.Draws)-1] }

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) release(kind string, h uint32) {
	d.Deleted[kind] = append(d.Deleted[kind], h)
}

func (d *Device) CreateShader(kind glbackend.ShaderKind) uint32 {
	id := d.id()
	d.Kinds[id] = kind
	return id
}

func (d *Device) ShaderSource(sh uint32, src string) { d.Sources[sh] = src }
func (d *Device) CompileShader(uint32)               {}

func (d *Device) ShaderCompiled(sh uint32) bool {
	return !strings.Contains(d.Sources[sh], CompileFailMarker)
}

func (d *Device) ShaderInfoLog(sh uint32) string {
	if d.ShaderCompiled(sh) {
		return ""
	}
	return fmt.Sprintf("0:1(1): error: syntax error in %s shader", d.Kinds[sh])
}

func (d *Device) DeleteShader(sh uint32)                  { d.release("shader", sh) }
func (d *Device) CreateProgram() uint32                   { return d.id() }
func (d *Device) AttachShader(uint32, uint32)             {}
func (d *Device) LinkProgram(uint32)                      {}
func (d *Device) ProgramLinked(uint32) bool               { return d.LinkLog == "" }
func (d *Device) ProgramInfoLog(uint32) string            { return d.LinkLog }
func (d *Device) DeleteProgram(prog uint32)               { d.release("program", prog) }
func (d *Device) UseProgram(prog uint32)                  { d.Used = prog }
func (d *Device) Uniform1f(loc int32, v float32)          { d.F1[loc] = v }
func (d *Device) Uniform2f(loc int32, x, y float32)       { d.F2[loc] = [2]float32{x, y} }
func (d *Device) Uniform1i(loc int32, v int32)            { d.I1[loc] = v }
func (d *Device) EnableVertexAttribArray(loc uint32)      { d.Enabled[loc] = true }
func (d *Device) VertexAttribPointer(loc uint32, n int32) { d.Pointers[loc] = n }

func (d *Device) GetAttribLocation(_ uint32, name string) int32 {
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) GetUniformLocation(_ uint32, name string) int32 {
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) CreateVertexArray() uint32    { return d.id() }
func (d *Device) BindVertexArray(uint32)       {}
func (d *Device) DeleteVertexArray(vao uint32) { d.release("vao", vao) }
func (d *Device) CreateBuffer() uint32         { return d.id() }
func (d *Device) BindArrayBuffer(buf uint32)   { d.BoundBuf = buf }
func (d *Device) DeleteBuffer(buf uint32)      { d.release("buffer", buf) }

func (d *Device) BufferData(data []float32, usage glbackend.Usage) {
	d.BufData[d.BoundBuf] = append([]float32(nil), data...)
	d.BufUsage[d.BoundBuf] = usage
}

func (d *Device) DrawArrays(mode glbackend.Topology, first, count int32) {
	d.Draws = append(d.Draws, DrawCall{Mode: mode, First: first, Count: count, Buf: d.BoundBuf, Data: d.BufData[d.BoundBuf]})
}

func (d *Device) MaxTextureUnits() int     { return d.MaxUnits }
func (d *Device) CreateTexture() uint32    { return d.id() }
func (d *Device) ActiveTexture(unit int)   { d.ActiveUnit = unit }
func (d *Device) BindTexture(tex uint32)   { d.BoundTex[d.ActiveUnit] = tex }
func (d *Device) TexNearestClamp()         { d.Nearest[d.BoundTex[d.ActiveUnit]] = true }
func (d *Device) DeleteTexture(tex uint32) { d.release("texture", tex) }

func (d *Device) TexImageRGBA(w, h int, pixels []byte) {
	if len(pixels) != w*h*4 {
		panic("gltest: pixel buffer not tightly packed")
	}
	d.TexImages[d.BoundTex[d.ActiveUnit]] = [2]int{w, h}
}

func (d *Device) Viewport(x, y, w, h int)       { d.ViewportRect = [4]int{x, y, w, h} }
func (d *Device) ClearColor(_, _, _, _ float32) {}
func (d *Device) Clear(mask glbackend.ClearMask) {
	d.Clears = append(d.Clears, mask)
}

func (d *Device) Vendor() string   { return "gltest" }
func (d *Device) Renderer() string { return "recorder" }
func (d *Device) Version() string  { return "3.3 (gltest)" }

var _ glbackend.Device = (*Device)(nil)
