package debugdraw

import (
	"image/color"

	"github.com/solarlune/meshtree/math32"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// WithAlpha returns a copy of the Color with its alpha component set to the value given.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Mix mixes the Color with the other Color provided, by the percentage given (0 returns the original Color, 1 returns the other).
func (c Color) Mix(other Color, percentage float32) Color {
	p := math32.Clamp(percentage, 0, 1)
	return Color{
		R: c.R + (other.R-c.R)*p,
		G: c.G + (other.G-c.G)*p,
		B: c.B + (other.B-c.B)*p,
		A: c.A + (other.A-c.A)*p,
	}
}

// ToNRGBA64 converts the Color to a color.NRGBA64, suitable for passing to ebiten's drawing functions.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(math32.Clamp(c.R, 0, 1) * 65535),
		G: uint16(math32.Clamp(c.G, 0, 1) * 65535),
		B: uint16(math32.Clamp(c.B, 0, 1) * 65535),
		A: uint16(math32.Clamp(c.A, 0, 1) * 65535),
	}
}

var depthPalette = []Color{
	{1, 0.2, 0.2, 1},
	{1, 0.6, 0, 1},
	{1, 1, 0.2, 1},
	{0.2, 1, 0.4, 1},
	{0.2, 0.8, 1, 1},
	{0.4, 0.4, 1, 1},
	{0.8, 0.4, 1, 1},
}

// DepthColor returns a color for the given depth of a Tree, cycling through a small palette so neighboring levels are easy to tell apart.
func DepthColor(depth int) Color {
	if depth < 0 {
		depth = -depth
	}
	return depthPalette[depth%len(depthPalette)]
}
