package glbackend

import "fmt"

// AttribDesc describes a float vertex attribute and how to draw it.
type AttribDesc struct {
	Name     string
	Size     int // components per vertex, 1..4
	Topology Topology
	// Vertices, when non-nil, is uploaded once with a static usage hint.
	Vertices []float32
}

// VertexAttrib binds one program attribute to a buffer it owns.
type VertexAttrib struct {
	prog     *Program
	name     string
	loc      uint32
	size     int
	mode     Topology
	buf      uint32
	count    int
	uploaded bool
}

// BindAttrib resolves desc.Name against p and allocates its buffer. The
// attribute must be active in the linked program; names the compiler dropped
// are reported as ErrAttributeNotFound.
func (p *Program) BindAttrib(desc AttribDesc) (*VertexAttrib, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("attribute %q: %w", desc.Name, ErrNilShader)
	}
	if desc.Size < 1 || desc.Size > 4 {
		return nil, fmt.Errorf("attribute %q: item size %d: %w", desc.Name, desc.Size, ErrUnsupportedArity)
	}
	dev := p.ctx.dev
	loc := dev.GetAttribLocation(p.handle, desc.Name)
	if loc < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, desc.Name)
	}
	dev.EnableVertexAttribArray(uint32(loc))

	a := &VertexAttrib{
		prog: p,
		name: desc.Name,
		loc:  uint32(loc),
		size: desc.Size,
		mode: desc.Topology,
		buf:  dev.CreateBuffer(),
	}
	if desc.Vertices != nil {
		if err := a.upload(desc.Vertices, StaticDraw); err != nil {
			dev.DeleteBuffer(a.buf)
			return nil, err
		}
	}
	p.ctx.track(a)
	return a, nil
}

func (a *VertexAttrib) upload(vs []float32, usage Usage) error {
	if len(vs)%a.size != 0 {
		return fmt.Errorf("attribute %q: %d floats, item size %d: %w", a.name, len(vs), a.size, ErrInvalidBufferLength)
	}
	dev := a.prog.ctx.dev
	dev.BindArrayBuffer(a.buf)
	dev.BufferData(vs, usage)
	a.count = len(vs) / a.size
	a.uploaded = true
	return nil
}

// Upload replaces the vertex data with a dynamic usage hint.
func (a *VertexAttrib) Upload(vs []float32) error {
	return a.upload(vs, DynamicDraw)
}

// Count is the number of vertices the next draw covers.
func (a *VertexAttrib) Count() int { return a.count }

// Draw issues one draw call. A non-nil vs is uploaded first; a nil vs reuses
// whatever was uploaded last. The owning program must be bound.
func (a *VertexAttrib) Draw(vs []float32) error {
	if vs != nil {
		if err := a.Upload(vs); err != nil {
			return err
		}
	}
	if !a.uploaded {
		return fmt.Errorf("attribute %q: %w", a.name, ErrNoVertexData)
	}
	ctx := a.prog.ctx
	if ctx.bound != a.prog {
		return fmt.Errorf("draw %q: %w", a.name, ErrProgramNotBound)
	}
	ctx.dev.BindArrayBuffer(a.buf)
	ctx.dev.VertexAttribPointer(a.loc, int32(a.size))
	ctx.dev.DrawArrays(a.mode, 0, int32(a.count))
	return nil
}

// Release deletes the buffer.
func (a *VertexAttrib) Release() {
	if a.buf == 0 {
		return
	}
	a.prog.ctx.dev.DeleteBuffer(a.buf)
	a.prog.ctx.untrack(a)
	a.buf = 0
	a.uploaded = false
}
