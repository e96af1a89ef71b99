package glbackend

// ShaderKind selects the pipeline stage a shader object is compiled for.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Topology is how DrawArrays assembles vertices into primitives.
type Topology int

const (
	Points Topology = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// Usage is the buffer update frequency hint.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// ClearMask selects the framebuffer planes Clear resets.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// Device is the slice of the GL API the backend relies on. Handles are the raw
// GL object names; 0 means "none" and negative locations mean "not found".
type Device interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform1i(loc int32, v int32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	CreateBuffer() uint32
	BindArrayBuffer(buf uint32)
	BufferData(data []float32, usage Usage)
	DeleteBuffer(buf uint32)
	EnableVertexAttribArray(loc uint32)
	VertexAttribPointer(loc uint32, size int32)
	DrawArrays(mode Topology, first, count int32)

	MaxTextureUnits() int
	CreateTexture() uint32
	ActiveTexture(unit int)
	BindTexture(tex uint32)
	TexImageRGBA(width, height int, pixels []byte)
	TexNearestClamp()
	DeleteTexture(tex uint32)

	Viewport(x, y, w, h int)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)

	Vendor() string
	Renderer() string
	Version() string
}
