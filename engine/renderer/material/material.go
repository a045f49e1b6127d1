package material

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/bind_group_provider"
)

// BlendMode selects how a material's fragments combine with what is already drawn.
type BlendMode int

const (
	// BlendOpaque writes fragments over the destination with depth writes enabled.
	BlendOpaque BlendMode = iota

	// BlendAdditive adds source colour (scaled by source alpha) onto the destination and
	// leaves the depth buffer untouched, for glows and other light-emitting sprites.
	BlendAdditive
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	color             [3]float32
	emissive          [3]float32
	specular          [3]float32
	shininess         float32
	opacity           float32
	texture           *common.TextureStagingData
	blend             BlendMode
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material describes the surface of a drawable: Phong-style colour terms, an optional
// texture, and the blend mode used to composite it.
//
// Surface properties are fixed at construction. Replacing how something looks means
// building a new Material and swapping it in, so a draw never sees half-updated values.
// The bind group provider is mutable so the renderer can attach GPU resources lazily.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Color retrieves the diffuse colour. When a texture is present the texture is
	// multiplied by this colour.
	//
	// Returns:
	//   - [3]float32: RGB colour
	Color() [3]float32

	// Emissive retrieves the self-illumination colour added regardless of lighting.
	//
	// Returns:
	//   - [3]float32: RGB colour
	Emissive() [3]float32

	// Specular retrieves the colour of specular highlights.
	//
	// Returns:
	//   - [3]float32: RGB colour
	Specular() [3]float32

	// Shininess retrieves the Phong specular exponent.
	//
	// Returns:
	//   - float32: the exponent
	Shininess() float32

	// Opacity retrieves the overall alpha multiplier.
	//
	// Returns:
	//   - float32: opacity in [0, 1]
	Opacity() float32

	// Texture retrieves the diffuse texture, or nil for a flat-coloured material.
	//
	// Returns:
	//   - *common.TextureStagingData: the texture or nil
	Texture() *common.TextureStagingData

	// Blend retrieves the blend mode.
	//
	// Returns:
	//   - BlendMode: opaque or additive
	Blend() BlendMode

	// PipelineKey retrieves the key of the render pipeline that draws this material.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the GPU resources for this material, nil until the
	// renderer has initialised them.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetBindGroupProvider attaches GPU resources created by the renderer.
	//
	// Parameters:
	//   - provider: the bind group provider
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)

	// Uniform packs the surface terms for the GPU.
	//
	// Returns:
	//   - GPUMaterialUniform: the uniform block contents
	Uniform() GPUMaterialUniform
}

var _ Material = &material{}

// NewMaterial creates a Material with a white, fully opaque, untextured surface and
// applies the options.
//
// Parameters:
//   - opts: variadic list of MaterialBuilderOption functions
//
// Returns:
//   - Material: the new material
func NewMaterial(opts ...MaterialBuilderOption) Material {
	m := &material{
		name:      "material",
		color:     [3]float32{1, 1, 1},
		specular:  [3]float32{0, 0, 0},
		shininess: 30,
		opacity:   1,
		blend:     BlendOpaque,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTextureFrom builds a new material that copies every surface term from base and
// adds tex as its diffuse texture. base is not modified.
//
// Parameters:
//   - base: the material to copy
//   - tex: the texture to apply
//   - opts: further options applied after copying
//
// Returns:
//   - Material: the textured material
func WithTextureFrom(base Material, tex common.TextureStagingData, opts ...MaterialBuilderOption) Material {
	m := &material{
		name:        base.Name() + "_textured",
		color:       [3]float32{1, 1, 1},
		emissive:    base.Emissive(),
		specular:    base.Specular(),
		shininess:   base.Shininess(),
		opacity:     base.Opacity(),
		texture:     &tex,
		blend:       base.Blend(),
		pipelineKey: base.PipelineKey(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Color() [3]float32 {
	return m.color
}

func (m *material) Emissive() [3]float32 {
	return m.emissive
}

func (m *material) Specular() [3]float32 {
	return m.specular
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) Opacity() float32 {
	return m.opacity
}

func (m *material) Texture() *common.TextureStagingData {
	return m.texture
}

func (m *material) Blend() BlendMode {
	return m.blend
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}

func (m *material) Uniform() GPUMaterialUniform {
	u := GPUMaterialUniform{
		Color:     m.color,
		Opacity:   m.opacity,
		Emissive:  m.emissive,
		Shininess: m.shininess,
		Specular:  m.specular,
	}
	if m.texture != nil && !m.texture.Empty() {
		u.HasTexture = 1
	}
	return u
}
