package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("planet")
	assert.Equal(t, "planet", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.BindGroupLayout(0))
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
}

func TestWithAdditiveBlend(t *testing.T) {
	p := NewPipeline("sprite", WithAdditiveBlend(), WithDepthWriteEnabled(false))
	require.True(t, p.BlendEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, p.BlendState().Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOne, p.BlendState().Color.DstFactor)
}

func TestBindGroupLayoutDescriptorsMergeVisibility(t *testing.T) {
	vs, err := shader.NewShaderFromAsset("planet_vs", shader.ShaderTypeVertex, "planet.wgsl")
	require.NoError(t, err)
	fs, err := shader.NewShaderFromAsset("planet_fs", shader.ShaderTypeFragment, "planet.wgsl")
	require.NoError(t, err)

	p := NewPipeline("planet", WithVertexShader(vs), WithFragmentShader(fs))
	merged := p.BindGroupLayoutDescriptors()
	require.Len(t, merged, 3)
	for _, e := range merged[0].Entries {
		assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, e.Visibility)
	}
	assert.Len(t, merged[2].Entries, 3)
}

func TestMergeKeepsStageOnlyGroups(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{{Binding: 0, Visibility: wgpu.ShaderStageVertex}}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 2, Visibility: wgpu.ShaderStageFragment},
			{Binding: 1, Visibility: wgpu.ShaderStageFragment},
		}},
	}
	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged, 2)
	assert.Equal(t, wgpu.ShaderStageVertex, merged[0].Entries[0].Visibility)
	assert.Equal(t, uint32(1), merged[1].Entries[0].Binding)
}

func TestReleaseUnregisteredIsSafe(t *testing.T) {
	p := NewPipeline("stars", WithTopology(wgpu.PrimitiveTopologyPointList))
	p.Release()
	p.Release()
	assert.Equal(t, wgpu.PrimitiveTopologyPointList, p.Topology())
}
