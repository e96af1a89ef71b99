package glbackend

import "fmt"

// Shader is a compiled shader object. LinkProgram consumes it.
type Shader struct {
	ctx    *Context
	handle uint32
	kind   ShaderKind
}

func (s *Shader) Kind() ShaderKind { return s.kind }

// Release deletes the shader object. It is safe to call more than once.
func (s *Shader) Release() {
	if s == nil || s.handle == 0 {
		return
	}
	s.ctx.dev.DeleteShader(s.handle)
	s.handle = 0
}

// CompileShader compiles src for the given stage. On failure the returned
// error is a *CompileError holding the compiler log.
func (c *Context) CompileShader(kind ShaderKind, src string) (*Shader, error) {
	sh := c.dev.CreateShader(kind)
	if sh == 0 {
		return nil, fmt.Errorf("gl: create %s shader failed", kind)
	}
	c.dev.ShaderSource(sh, src)
	c.dev.CompileShader(sh)
	if !c.dev.ShaderCompiled(sh) {
		log := c.dev.ShaderInfoLog(sh)
		c.dev.DeleteShader(sh)
		return nil, &CompileError{Kind: kind, Log: log}
	}
	return &Shader{ctx: c, handle: sh, kind: kind}, nil
}

// Program is a linked vertex+fragment pair.
type Program struct {
	ctx    *Context
	handle uint32
}

// Valid reports whether the program still holds a GL object.
func (p *Program) Valid() bool { return p != nil && p.handle != 0 }

// Release deletes the program, unbinding it first if it is current.
func (p *Program) Release() {
	if !p.Valid() {
		return
	}
	if p.ctx.bound == p {
		p.ctx.Use(nil)
	}
	p.ctx.dev.DeleteProgram(p.handle)
	p.ctx.untrack(p)
	p.handle = 0
}

func checkShader(s *Shader, want ShaderKind) error {
	if s == nil || s.handle == 0 {
		return fmt.Errorf("%s shader: %w", want, ErrNilShader)
	}
	if s.kind != want {
		return fmt.Errorf("%s shader given where %s expected: %w", s.kind, want, ErrShaderKind)
	}
	return nil
}

// LinkProgram links vs and fs. Both shaders are released afterwards whatever
// the outcome; on link failure the error is a *LinkError holding the log.
func (c *Context) LinkProgram(vs, fs *Shader) (*Program, error) {
	defer vs.Release()
	defer fs.Release()
	if err := checkShader(vs, VertexShader); err != nil {
		return nil, err
	}
	if err := checkShader(fs, FragmentShader); err != nil {
		return nil, err
	}

	prog := c.dev.CreateProgram()
	if prog == 0 {
		return nil, fmt.Errorf("gl: create program failed")
	}
	c.dev.AttachShader(prog, vs.handle)
	c.dev.AttachShader(prog, fs.handle)
	c.dev.LinkProgram(prog)

	if !c.dev.ProgramLinked(prog) {
		log := c.dev.ProgramInfoLog(prog)
		c.dev.DeleteProgram(prog)
		return nil, &LinkError{Log: log}
	}
	p := &Program{ctx: c, handle: prog}
	c.track(p)
	return p, nil
}

// NewProgram compiles both stages and links them.
func (c *Context) NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := c.CompileShader(VertexShader, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := c.CompileShader(FragmentShader, fragmentSrc)
	if err != nil {
		vs.Release()
		return nil, err
	}
	return c.LinkProgram(vs, fs)
}
