package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hubastard/juliaset/engine/colors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, BMP or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode %q: empty %s image", path, format)
	}
	return img, nil
}

// GradientPalette builds an n×1 lookup table blending linearly through stops.
func GradientPalette(n int, stops ...colors.Color) *image.RGBA {
	if n < 1 {
		n = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, n, 1))
	if len(stops) == 0 {
		stops = []colors.Color{colors.Black, colors.White}
	}
	for x := 0; x < n; x++ {
		var c colors.Color
		if len(stops) == 1 || n == 1 {
			c = stops[0]
		} else {
			t := float32(x) / float32(n-1) * float32(len(stops)-1)
			i := int(t)
			if i >= len(stops)-1 {
				i = len(stops) - 2
			}
			f := t - float32(i)
			for k := range c {
				c[k] = stops[i][k]*(1-f) + stops[i+1][k]*f
			}
		}
		img.SetRGBA(x, 0, toRGBA8(c))
	}
	return img
}

func toRGBA8(c colors.Color) color.RGBA {
	b := func(f float32) uint8 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	// image.RGBA stores premultiplied alpha
	a := c[3]
	return color.RGBA{b(c[0] * a), b(c[1] * a), b(c[2] * a), b(a)}
}

// DefaultPalette is the palette used when none is configured.
func DefaultPalette() *image.RGBA {
	return GradientPalette(256,
		colors.Color{0.0, 0.03, 0.1, 1},
		colors.Color{0.1, 0.3, 0.7, 1},
		colors.Color{0.95, 0.95, 1.0, 1},
		colors.Color{1.0, 0.65, 0.0, 1},
		colors.Color{0.2, 0.0, 0.0, 1},
	)
}
