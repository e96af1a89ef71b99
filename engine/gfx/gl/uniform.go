package glbackend

import "fmt"

// Uniform is a float uniform whose location was resolved once, up front.
type Uniform struct {
	prog  *Program
	name  string
	loc   int32
	arity int
}

// Uniform resolves name on p. Only scalar (1) and vec2 (2) float uniforms are
// supported.
func (p *Program) Uniform(name string, arity int) (*Uniform, error) {
	if arity != 1 && arity != 2 {
		return nil, fmt.Errorf("uniform %q arity %d: %w", name, arity, ErrUnsupportedArity)
	}
	if !p.Valid() {
		return nil, fmt.Errorf("uniform %q: %w", name, ErrNilShader)
	}
	loc := p.ctx.dev.GetUniformLocation(p.handle, name)
	if loc < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	return &Uniform{prog: p, name: name, loc: loc, arity: arity}, nil
}

func (u *Uniform) Name() string { return u.name }
func (u *Uniform) Arity() int   { return u.arity }

// Set writes v to the uniform. The owning program must be bound on the
// context and len(v) must match the arity.
func (u *Uniform) Set(v ...float32) error {
	if len(v) != u.arity {
		return fmt.Errorf("uniform %q: got %d values, want %d: %w", u.name, len(v), u.arity, ErrArityMismatch)
	}
	ctx := u.prog.ctx
	if ctx.bound != u.prog {
		return fmt.Errorf("uniform %q: %w", u.name, ErrProgramNotBound)
	}
	switch u.arity {
	case 1:
		ctx.dev.Uniform1f(u.loc, v[0])
	case 2:
		ctx.dev.Uniform2f(u.loc, v[0], v[1])
	}
	return nil
}

// Float1 returns a scalar setter for name.
func (p *Program) Float1(name string) (func(v float32) error, error) {
	u, err := p.Uniform(name, 1)
	if err != nil {
		return nil, err
	}
	return func(v float32) error { return u.Set(v) }, nil
}

// Float2 returns a vec2 setter for name.
func (p *Program) Float2(name string) (func(x, y float32) error, error) {
	u, err := p.Uniform(name, 2)
	if err != nil {
		return nil, err
	}
	return func(x, y float32) error { return u.Set(x, y) }, nil
}

// SetSampler points the sampler uniform name at a texture unit.
func (p *Program) SetSampler(name string, unit TextureUnit) error {
	if p.ctx.bound != p {
		return fmt.Errorf("sampler %q: %w", name, ErrProgramNotBound)
	}
	loc := p.ctx.dev.GetUniformLocation(p.handle, name)
	if loc < 0 {
		return fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	p.ctx.dev.Uniform1i(loc, int32(unit))
	return nil
}
