package glbackend

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// DefaultTextureUnits is the unit budget assumed when none is configured.
const DefaultTextureUnits = 32

// TextureUnit is the sampler slot an image was bound to.
type TextureUnit int

// TextureAllocator hands out texture units in increasing order. Units are
// never reused.
type TextureAllocator struct {
	ctx      *Context
	limit    int
	next     int
	textures []uint32
}

// NewTextureAllocator creates an allocator with the given unit budget. A
// non-positive limit selects DefaultTextureUnits; the budget is clamped to what
// the device reports when the device reports less.
func (c *Context) NewTextureAllocator(limit int) *TextureAllocator {
	if limit <= 0 {
		limit = DefaultTextureUnits
	}
	if n := c.dev.MaxTextureUnits(); n > 0 && n < limit {
		limit = n
	}
	t := &TextureAllocator{ctx: c, limit: limit}
	c.track(t)
	return t
}

func (t *TextureAllocator) Limit() int     { return t.limit }
func (t *TextureAllocator) Allocated() int { return t.next }

// Allocate uploads img to the next free unit with nearest filtering and edge
// clamping, leaving the texture bound to that unit.
func (t *TextureAllocator) Allocate(img image.Image) (TextureUnit, error) {
	if img == nil {
		return 0, errors.New("gl: allocate texture: nil image")
	}
	if t.next >= t.limit {
		return 0, fmt.Errorf("%w: limit %d", ErrOutOfTextureUnits, t.limit)
	}
	rgba := tightRGBA(img)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	dev := t.ctx.dev
	unit := t.next
	tex := dev.CreateTexture()
	dev.ActiveTexture(unit)
	dev.BindTexture(tex)
	dev.TexNearestClamp()
	dev.TexImageRGBA(w, h, rgba.Pix)

	t.textures = append(t.textures, tex)
	t.next++
	return TextureUnit(unit), nil
}

// Release deletes all textures. Units stay consumed.
func (t *TextureAllocator) Release() {
	for _, tex := range t.textures {
		t.ctx.dev.DeleteTexture(tex)
	}
	t.textures = nil
}

// tightRGBA returns img as RGBA8 with stride == 4*width and origin (0,0).
func tightRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
