package glbackend

import "github.com/hubastard/juliaset/engine/colors"

type releaser interface{ Release() }

// Context owns every GPU object created through it. It is not safe for
// concurrent use; all calls belong on the thread holding the GL context.
type Context struct {
	dev   Device
	vao   uint32
	bound *Program
	owned []releaser
}

// NewContext wraps a device. A core profile refuses to draw without a vertex
// array object, so one is created and kept bound for the context lifetime.
func NewContext(dev Device) (*Context, error) {
	if dev == nil {
		return nil, ErrNoContext
	}
	c := &Context{dev: dev}
	c.vao = dev.CreateVertexArray()
	dev.BindVertexArray(c.vao)
	return c, nil
}

// Info reports the driver strings, mostly for logging.
func (c *Context) Info() (vendor, renderer, version string) {
	return c.dev.Vendor(), c.dev.Renderer(), c.dev.Version()
}

func (c *Context) Viewport(w, h int) {
	c.dev.Viewport(0, 0, w, h)
}

// Clear resets both the color and depth planes.
func (c *Context) Clear(col colors.Color) {
	c.dev.ClearColor(col[0], col[1], col[2], col[3])
	c.dev.Clear(ColorBufferBit | DepthBufferBit)
}

// Use binds p for subsequent uniform writes and draws. A nil p unbinds.
func (c *Context) Use(p *Program) {
	if p == nil {
		c.dev.UseProgram(0)
		c.bound = nil
		return
	}
	c.dev.UseProgram(p.handle)
	c.bound = p
}

// Bound returns the program last passed to Use.
func (c *Context) Bound() *Program { return c.bound }

func (c *Context) track(r releaser) { c.owned = append(c.owned, r) }

// Shutdown releases owned objects in reverse creation order.
func (c *Context) Shutdown() {
	c.Use(nil)
	for i := len(c.owned) - 1; i >= 0; i-- {
		c.owned[i].Release()
	}
	c.owned = nil
	if c.vao != 0 {
		c.dev.BindVertexArray(0)
		c.dev.DeleteVertexArray(c.vao)
		c.vao = 0
	}
}

func (c *Context) untrack(r releaser) {
	for i, o := range c.owned {
		if o == r {
			c.owned = append(c.owned[:i], c.owned[i+1:]...)
			return
		}
	}
}
