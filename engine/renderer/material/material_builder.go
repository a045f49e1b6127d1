package material

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor sets the diffuse colour.
//
// Parameters:
//   - r, g, b: colour components in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the colour option to a material
func WithColor(r, g, b float32) MaterialBuilderOption {
	return func(m *material) {
		m.color = [3]float32{r, g, b}
	}
}

// WithEmissive sets the self-illumination colour.
//
// Parameters:
//   - r, g, b: colour components in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(r, g, b float32) MaterialBuilderOption {
	return func(m *material) {
		m.emissive = [3]float32{r, g, b}
	}
}

// WithSpecular sets the specular highlight colour.
//
// Parameters:
//   - r, g, b: colour components in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular option to a material
func WithSpecular(r, g, b float32) MaterialBuilderOption {
	return func(m *material) {
		m.specular = [3]float32{r, g, b}
	}
}

// WithShininess sets the Phong specular exponent.
//
// Parameters:
//   - shininess: the exponent, larger is tighter
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}

// WithOpacity sets the alpha multiplier, clamped to [0, 1].
//
// Parameters:
//   - opacity: overall opacity
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = max(0, min(1, opacity))
	}
}

// WithTexture sets the diffuse texture.
//
// Parameters:
//   - tex: RGBA staging data
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(tex common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.texture = &tex
	}
}

// WithBlend sets the blend mode.
//
// Parameters:
//   - blend: opaque or additive
//
// Returns:
//   - MaterialBuilderOption: a function that applies the blend option to a material
func WithBlend(blend BlendMode) MaterialBuilderOption {
	return func(m *material) {
		m.blend = blend
	}
}

// WithPipelineKey sets the key of the render pipeline used to draw the material.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}
