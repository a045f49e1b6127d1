package texture

import (
	"math"

	"github.com/Carmen-Shannon/oxy-planet/common"
)

// GradientStop is a colour at a normalised distance from the centre of a radial gradient.
type GradientStop struct {
	// Offset is the distance from the centre as a fraction of the radius, in [0, 1].
	Offset float64
	// R, G, B are 0-255 channel values.
	R, G, B uint8
	// A is opacity in [0, 1].
	A float64
}

// DefaultGlowSize is the side length of the generated glow bitmap.
const DefaultGlowSize = 256

// DefaultGlowStops runs from an opaque white core through warm-white, orange and red
// to full transparency at the rim.
var DefaultGlowStops = []GradientStop{
	{Offset: 0.0, R: 255, G: 255, B: 255, A: 1.0},
	{Offset: 0.1, R: 255, G: 244, B: 214, A: 1.0},
	{Offset: 0.3, R: 255, G: 170, B: 64, A: 0.8},
	{Offset: 0.6, R: 204, G: 51, B: 17, A: 0.35},
	{Offset: 1.0, R: 0, G: 0, B: 0, A: 0.0},
}

type glowConfig struct {
	size  int
	stops []GradientStop
}

// Glow rasterises a square radial-gradient bitmap for the sun sprite.
// The gradient is centred on the bitmap with a radius of half the side length; texels past
// the radius take the last stop, so the corners are fully transparent.
//
// When the configuration cannot be rasterised the result is SolidFallback instead.
//
// Parameters:
//   - options: functional options overriding size or stops
//
// Returns:
//   - common.TextureStagingData: RGBA8 pixels with straight alpha
func Glow(options ...GlowBuilderOption) common.TextureStagingData {
	cfg := &glowConfig{
		size:  DefaultGlowSize,
		stops: DefaultGlowStops,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if !cfg.valid() {
		return SolidFallback()
	}

	size := cfg.size
	pixels := make([]byte, size*size*4)
	centre := float64(size) / 2
	radius := centre

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// sample at the texel centre so the middle texels read as offset ~0
			dx := float64(x) + 0.5 - centre
			dy := float64(y) + 0.5 - centre
			t := math.Hypot(dx, dy) / radius
			r, g, b, a := cfg.sample(t)

			i := (y*size + x) * 4
			pixels[i] = r
			pixels[i+1] = g
			pixels[i+2] = b
			pixels[i+3] = a
		}
	}

	return common.TextureStagingData{
		Pixels: pixels,
		Width:  uint32(size),
		Height: uint32(size),
	}
}

// SolidFallback is a single warm-white opaque texel used when the gradient cannot be drawn.
func SolidFallback() common.TextureStagingData {
	return common.TextureStagingData{
		Pixels: []byte{255, 244, 214, 255},
		Width:  1,
		Height: 1,
	}
}

func (c *glowConfig) valid() bool {
	if c.size <= 0 || len(c.stops) == 0 {
		return false
	}
	for i, s := range c.stops {
		if s.Offset < 0 || s.Offset > 1 || s.A < 0 || s.A > 1 {
			return false
		}
		if i > 0 && s.Offset < c.stops[i-1].Offset {
			return false
		}
	}
	return true
}

// sample evaluates the gradient at normalised distance t.
func (c *glowConfig) sample(t float64) (r, g, b, a uint8) {
	first, last := c.stops[0], c.stops[len(c.stops)-1]
	switch {
	case t <= first.Offset:
		return first.R, first.G, first.B, alphaByte(first.A)
	case t >= last.Offset:
		return last.R, last.G, last.B, alphaByte(last.A)
	}

	for i := 1; i < len(c.stops); i++ {
		hi := c.stops[i]
		if t > hi.Offset {
			continue
		}
		lo := c.stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.R, hi.G, hi.B, alphaByte(hi.A)
		}
		f := (t - lo.Offset) / span
		return lerpByte(lo.R, hi.R, f), lerpByte(lo.G, hi.G, f), lerpByte(lo.B, hi.B, f), alphaByte(lo.A + (hi.A-lo.A)*f)
	}
	return last.R, last.G, last.B, alphaByte(last.A)
}

func lerpByte(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(a * 255))
}
