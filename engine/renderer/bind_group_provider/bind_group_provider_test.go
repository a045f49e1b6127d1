package bind_group_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBindGroupProviderIsEmpty(t *testing.T) {
	p := NewBindGroupProvider("planet")

	assert.Equal(t, "planet", p.Label())
	assert.Nil(t, p.BindGroup())
	assert.Nil(t, p.Buffer(0))
	assert.Nil(t, p.TextureView(1))
	assert.Nil(t, p.Sampler(2))
	assert.Nil(t, p.VertexBuffer())
	assert.Zero(t, p.IndexCount())
}

func TestReleaseOnEmptyProviderIsSafe(t *testing.T) {
	p := NewBindGroupProvider("empty")
	assert.NotPanics(t, func() {
		p.Release()
		p.Release()
	})
}

func TestSetGeometryCounts(t *testing.T) {
	p := NewBindGroupProvider("stars")
	p.SetGeometry(nil, 6000, nil, 0)
	assert.Equal(t, 6000, p.VertexCount())
	assert.Zero(t, p.IndexCount())

	p.Release()
	assert.Zero(t, p.VertexCount())
}
