package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, [3]float32{1, 1, 1}, m.Color())
	assert.Equal(t, float32(1), m.Opacity())
	assert.Equal(t, BlendOpaque, m.Blend())
	assert.Nil(t, m.Texture())
	assert.Nil(t, m.BindGroupProvider())
	assert.Zero(t, m.Uniform().HasTexture)
}

func TestWithTextureFromCopiesLighting(t *testing.T) {
	base := NewMaterial(
		WithName("planet"),
		WithColor(0.2, 0.4, 0.7),
		WithEmissive(0.05, 0.1, 0.2),
		WithSpecular(0.2, 0.2, 0.2),
		WithShininess(25),
		WithPipelineKey("planet"),
	)
	tex := common.TextureStagingData{Pixels: make([]byte, 16), Width: 2, Height: 2}

	textured := WithTextureFrom(base, tex)

	assert.Equal(t, "planet_textured", textured.Name())
	assert.Equal(t, [3]float32{1, 1, 1}, textured.Color())
	assert.Equal(t, base.Emissive(), textured.Emissive())
	assert.Equal(t, base.Specular(), textured.Specular())
	assert.Equal(t, base.Shininess(), textured.Shininess())
	assert.Equal(t, "planet", textured.PipelineKey())
	require.NotNil(t, textured.Texture())
	assert.Equal(t, uint32(1), textured.Uniform().HasTexture)

	// base is untouched
	assert.Nil(t, base.Texture())
	assert.Equal(t, [3]float32{0.2, 0.4, 0.7}, base.Color())
}

func TestWithOpacityClamps(t *testing.T) {
	assert.Equal(t, float32(1), NewMaterial(WithOpacity(3)).Opacity())
	assert.Equal(t, float32(0), NewMaterial(WithOpacity(-1)).Opacity())
}

func TestUniformMarshalLayout(t *testing.T) {
	m := NewMaterial(WithColor(0.1, 0.2, 0.3), WithShininess(25), WithSpecular(0.5, 0.5, 0.5),
		WithTexture(common.TextureStagingData{Pixels: []byte{1, 2, 3, 4}, Width: 1, Height: 1}))
	u := m.Uniform()
	buf := u.Marshal()

	require.Len(t, buf, u.Size())
	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(0.2), f(4))
	assert.Equal(t, float32(1), f(12))
	assert.Equal(t, float32(25), f(28))
	assert.Equal(t, float32(0.5), f(32))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[44:]))
}
