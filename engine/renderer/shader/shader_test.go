package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanetAssetReflection(t *testing.T) {
	vs, err := NewShaderFromAsset("planet_vs", ShaderTypeVertex, "planet.wgsl")
	require.NoError(t, err)

	assert.Equal(t, "vs_main", vs.EntryPoint())
	require.Len(t, vs.VertexLayouts(), 1)
	layout := vs.VertexLayouts()[0]
	assert.Equal(t, uint64(32), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint64(24), layout.Attributes[2].Offset)

	frame := vs.BindGroupLayoutDescriptor(0)
	require.Len(t, frame.Entries, 2)
	assert.Equal(t, uint64(144), frame.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, uint64(208), frame.Entries[1].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex, frame.Entries[0].Visibility)

	obj := vs.BindGroupLayoutDescriptor(1)
	require.Len(t, obj.Entries, 1)
	assert.Equal(t, uint64(80), obj.Entries[0].Buffer.MinBindingSize)

	mat := vs.BindGroupLayoutDescriptor(2)
	require.Len(t, mat.Entries, 3)
	assert.Equal(t, uint64(48), mat.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, mat.Entries[1].Texture.SampleType)
	assert.Equal(t, wgpu.TextureViewDimension2D, mat.Entries[1].Texture.ViewDimension)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, mat.Entries[2].Sampler.Type)

	binding, ok := vs.BindingFromVarName(2, "diffuse_sampler")
	assert.True(t, ok)
	assert.Equal(t, 2, binding)
	assert.Equal(t, "lights", vs.BindGroupVarName(0, 1))
}

func TestFragmentShaderHasNoVertexLayouts(t *testing.T) {
	fs, err := NewShaderFromAsset("planet_fs", ShaderTypeFragment, "planet.wgsl")
	require.NoError(t, err)
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Empty(t, fs.VertexLayouts())
	assert.Equal(t, wgpu.ShaderStageFragment, fs.BindGroupLayoutDescriptor(0).Entries[0].Visibility)
	require.NotNil(t, fs.Module())
	assert.Equal(t, "planet_fs", fs.Module().Label)
}

func TestStarsAssetUsesPositionOnlyLayout(t *testing.T) {
	vs, err := NewShaderFromAsset("stars_vs", ShaderTypeVertex, "stars.wgsl")
	require.NoError(t, err)
	require.Len(t, vs.VertexLayouts(), 1)
	assert.Equal(t, uint64(12), vs.VertexLayouts()[0].ArrayStride)
	assert.Len(t, vs.BindGroupLayoutDescriptor(2).Entries, 1)
}

func TestSpriteAssetParses(t *testing.T) {
	for _, st := range []ShaderType{ShaderTypeVertex, ShaderTypeFragment} {
		s, err := NewShaderFromAsset("sprite", st, "sprite.wgsl")
		require.NoError(t, err)
		assert.NotEmpty(t, s.EntryPoint())
	}
}

func TestNewShaderRequiresEntryPoint(t *testing.T) {
	_, err := NewShader("broken", ShaderTypeFragment, "@vertex fn vs() -> @builtin(position) vec4f { return vec4f(0.0); }")
	assert.Error(t, err)
}

func TestMissingAsset(t *testing.T) {
	_, err := Asset("nope.wgsl")
	assert.Error(t, err)
}

func TestEntryPointIgnoresComments(t *testing.T) {
	src := `
// @vertex fn commented() {}
/* @vertex
   fn also_commented() {} */
@vertex
fn real_main() -> @builtin(position) vec4f { return vec4f(0.0); }
`
	assert.Equal(t, "real_main", parseEntryPoint(src, ShaderTypeVertex))
}

func TestStructLayoutsResolveOutOfOrder(t *testing.T) {
	src := `
struct Outer { inner: array<Inner, 3>, flag: u32, }
struct Inner { a: vec3f, b: f32, }
`
	sizes := structLayouts(parseStructs(stripComments(src)))
	assert.Equal(t, typeLayout{16, 16}, sizes["Inner"])
	assert.Equal(t, typeLayout{64, 16}, sizes["Outer"])
}

func TestSplitTopLevelKeepsGenericCommas(t *testing.T) {
	parts := splitTopLevel("a: array<f32, 4>, b: u32")
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "array<f32, 4>")
}

func TestShaderTypeString(t *testing.T) {
	assert.Equal(t, "vertex", ShaderTypeVertex.String())
	assert.Equal(t, "fragment", ShaderTypeFragment.String())
	assert.Equal(t, "unknown", ShaderType(9).String())
}
