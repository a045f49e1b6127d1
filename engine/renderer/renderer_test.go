package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records what the renderer asks of the GPU without creating anything.
type fakeBackend struct {
	configured    [][2]int
	registered    []string
	meshInits     int
	bindGroups    int
	textures      []common.TextureStagingData
	samplers      []common.SamplerStagingData
	writes        int
	frames        int
	draws         []string
	presents      int
	released      bool
	beginFrameErr error
}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured = append(f.configured, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(PresentMode) {}

func (f *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	f.registered = append(f.registered, p.PipelineKey())
	return nil
}

func (f *fakeBackend) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, _ []byte, vertexCount int, _ []byte, indexCount int) error {
	f.meshInits++
	provider.SetGeometry(nil, vertexCount, nil, indexCount)
	return nil
}

func (f *fakeBackend) InitBindGroup(bind_group_provider.BindGroupProvider, *wgpu.BindGroupLayout, wgpu.BindGroupLayoutDescriptor) error {
	f.bindGroups++
	return nil
}

func (f *fakeBackend) InitTextureView(_ bind_group_provider.BindGroupProvider, _ int, data common.TextureStagingData) error {
	f.textures = append(f.textures, data)
	return nil
}

func (f *fakeBackend) InitSampler(_ bind_group_provider.BindGroupProvider, _ int, data common.SamplerStagingData) error {
	f.samplers = append(f.samplers, data)
	return nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes += len(writes)
}

func (f *fakeBackend) BeginFrame() error {
	if f.beginFrameErr != nil {
		return f.beginFrameErr
	}
	f.frames++
	return nil
}

func (f *fakeBackend) DrawCall(p pipeline.Pipeline, _ bind_group_provider.BindGroupProvider, groups []bind_group_provider.BindGroupProvider) {
	f.draws = append(f.draws, p.PipelineKey())
}

func (f *fakeBackend) EndFrame() {}

func (f *fakeBackend) Present() {
	f.presents++
}

func (f *fakeBackend) Release() {
	f.released = true
}

func newTestRenderer(t *testing.T, options ...RendererBuilderOption) (*renderer, *fakeBackend) {
	t.Helper()
	r := newRenderer(BackendTypeWGPU, options...)
	fb := &fakeBackend{}
	r.backend = fb
	require.NoError(t, r.setup(1024, 768))
	return r, fb
}

func TestSetupRegistersDefaultPipelines(t *testing.T) {
	r, fb := newTestRenderer(t)
	assert.ElementsMatch(t, []string{scene.PipelinePlanet, scene.PipelineSprite, scene.PipelineStars}, fb.registered)
	assert.Equal(t, [][2]int{{1024, 768}}, fb.configured)
	w, h := r.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestRenderDrawsInSceneOrder(t *testing.T) {
	r, fb := newTestRenderer(t)
	s := scene.NewScene()

	require.NoError(t, r.Render(s))
	assert.Equal(t, []string{scene.PipelineStars, scene.PipelinePlanet, scene.PipelineSprite}, fb.draws)
	assert.Equal(t, 1, fb.frames)
	assert.Equal(t, 1, fb.presents)
}

func TestRenderInitialisesResourcesOnce(t *testing.T) {
	r, fb := newTestRenderer(t)
	s := scene.NewScene()

	require.NoError(t, r.Render(s))
	// 3 frame + 3 object + 3 material bind groups
	assert.Equal(t, 9, fb.bindGroups)
	assert.Equal(t, 3, fb.meshInits)
	// planet fallback + glow
	require.Len(t, fb.textures, 2)

	require.NoError(t, r.Render(s))
	assert.Equal(t, 9, fb.bindGroups)
	assert.Equal(t, 3, fb.meshInits)
	assert.Len(t, fb.textures, 2)
	assert.Equal(t, 2, fb.frames)
}

func TestRenderPicksUpMaterialSwap(t *testing.T) {
	r, fb := newTestRenderer(t)
	s := scene.NewScene()
	require.NoError(t, r.Render(s))

	placeholder := s.Planet().Material()
	require.NotNil(t, placeholder.BindGroupProvider())

	tex := common.TextureStagingData{Pixels: make([]byte, 8*4*4), Width: 8, Height: 4}
	textured := material.WithTextureFrom(placeholder, tex)
	s.SetPlanetMaterial(textured)
	require.NoError(t, r.Render(s))

	assert.Nil(t, placeholder.BindGroupProvider())
	assert.NotNil(t, textured.BindGroupProvider())
	require.Len(t, fb.textures, 3)
	assert.Equal(t, uint32(8), fb.textures[2].Width)
	assert.Equal(t, 10, fb.bindGroups)
}

func TestRenderSkipsWhileSurfaceIsEmpty(t *testing.T) {
	r, fb := newTestRenderer(t)
	r.Resize(0, 0)
	require.NoError(t, r.Render(scene.NewScene()))
	assert.Zero(t, fb.frames)
}

func TestRenderSkipsDisabledObjects(t *testing.T) {
	r, fb := newTestRenderer(t)
	s := scene.NewScene()
	s.Sprite().SetEnabled(false)

	require.NoError(t, r.Render(s))
	assert.Equal(t, []string{scene.PipelineStars, scene.PipelinePlanet}, fb.draws)
}

func TestRenderMissingPipeline(t *testing.T) {
	r := newRenderer(BackendTypeWGPU)
	r.backend = &fakeBackend{}
	r.Resize(640, 480)

	err := r.Render(scene.NewScene())
	assert.ErrorContains(t, err, "not registered")
}

func TestRenderBeginFrameError(t *testing.T) {
	r, fb := newTestRenderer(t)
	fb.beginFrameErr = errors.New("surface lost")

	err := r.Render(scene.NewScene())
	require.Error(t, err)
	assert.ErrorIs(t, err, fb.beginFrameErr)
	assert.Empty(t, fb.draws)
}

func TestWithPipelineReplacesDefault(t *testing.T) {
	custom := pipeline.NewPipeline(scene.PipelineStars, pipeline.WithTopology(wgpu.PrimitiveTopologyLineList))
	r, fb := newTestRenderer(t, WithPipeline(custom))

	assert.Same(t, custom, r.Pipeline(scene.PipelineStars))
	assert.Len(t, fb.registered, 3)
}

func TestSamplerForBlendMode(t *testing.T) {
	glow := samplerFor(material.NewMaterial(material.WithBlend(material.BlendAdditive)))
	assert.Equal(t, wgpu.AddressModeClampToEdge, glow.AddressModeU)

	surface := samplerFor(material.NewMaterial())
	assert.Equal(t, wgpu.AddressModeRepeat, surface.AddressModeU)
	assert.Equal(t, wgpu.AddressModeClampToEdge, surface.AddressModeV)
}

func TestReleaseFreesBackend(t *testing.T) {
	r, fb := newTestRenderer(t)
	s := scene.NewScene()
	require.NoError(t, r.Render(s))

	r.Release()
	assert.True(t, fb.released)
	assert.Nil(t, r.Pipeline(scene.PipelinePlanet))
}

func TestParseMSAA(t *testing.T) {
	assert.Equal(t, MSAAOff, ParseMSAA(1))
	assert.Equal(t, MSAA4x, ParseMSAA(4))
	assert.Equal(t, MSAA4x, ParseMSAA(0))
}
