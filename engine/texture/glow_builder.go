package texture

// GlowBuilderOption is a functional option for configuring the glow rasteriser.
type GlowBuilderOption func(*glowConfig)

// WithGlowSize sets the side length of the generated bitmap in pixels.
//
// Parameters:
//   - size: side length; non-positive values select the solid fallback
//
// Returns:
//   - GlowBuilderOption: option function to apply
func WithGlowSize(size int) GlowBuilderOption {
	return func(c *glowConfig) {
		c.size = size
	}
}

// WithGlowStops replaces the gradient stops. Stops must be sorted by offset.
//
// Parameters:
//   - stops: gradient stops ordered from centre to rim
//
// Returns:
//   - GlowBuilderOption: option function to apply
func WithGlowStops(stops []GradientStop) GlowBuilderOption {
	return func(c *glowConfig) {
		c.stops = stops
	}
}
