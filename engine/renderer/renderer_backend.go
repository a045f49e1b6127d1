package renderer

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing.
// WebGPU guarantees support for 1 and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// ParseMSAA maps a configured sample count to a supported MSAASampleCount. Anything other
// than 1 selects MSAA4x.
//
// Parameters:
//   - samples: the configured sample count
//
// Returns:
//   - MSAASampleCount: MSAAOff or MSAA4x
func ParseMSAA(samples int) MSAASampleCount {
	if samples == 1 {
		return MSAAOff
	}
	return MSAA4x
}

// RendererBackend is the set of GPU operations the Renderer drives each frame. The wgpu
// implementation is the only production backend.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain, depth and MSAA targets for a surface size.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: VSync or Uncapped
	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline compiles both stages of p and stores the GPU pipeline and its
	// bind group layouts on p.
	//
	// Parameters:
	//   - p: the pipeline description
	//
	// Returns:
	//   - error: an error if a stage is missing or GPU creation fails
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers uploads vertex and optional index data and stores the buffers on provider.
	//
	// Parameters:
	//   - provider: the mesh provider
	//   - vertexData: packed vertex bytes
	//   - vertexCount: number of vertices
	//   - indexData: packed uint32 indices, nil for non-indexed draws
	//   - indexCount: number of indices
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData []byte, vertexCount int, indexData []byte, indexCount int) error

	// InitBindGroup creates any missing uniform buffers described by descriptor and builds the
	// bind group. Texture and sampler bindings must already be set on provider.
	//
	// Parameters:
	//   - provider: the provider to populate
	//   - layout: the GPU layout the bind group is created against
	//   - descriptor: the reflected layout entries
	//
	// Returns:
	//   - error: an error if a resource is missing or GPU creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, descriptor wgpu.BindGroupLayoutDescriptor) error

	// InitTextureView uploads RGBA pixels and stores the texture and its view at binding.
	//
	// Parameters:
	//   - provider: the provider to populate
	//   - binding: the texture binding index
	//   - data: the pixels
	//
	// Returns:
	//   - error: an error if texture creation fails
	InitTextureView(provider bind_group_provider.BindGroupProvider, binding int, data common.TextureStagingData) error

	// InitSampler creates a sampler and stores it at binding.
	//
	// Parameters:
	//   - provider: the provider to populate
	//   - binding: the sampler binding index
	//   - data: the sampler configuration
	//
	// Returns:
	//   - error: an error if sampler creation fails
	InitSampler(provider bind_group_provider.BindGroupProvider, binding int, data common.SamplerStagingData) error

	// WriteBuffers queues uniform uploads. Writes whose buffer does not exist are skipped.
	//
	// Parameters:
	//   - writes: the uploads
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next swapchain texture and begins the render pass.
	//
	// Returns:
	//   - error: an error if the previous frame is still held or acquisition fails
	BeginFrame() error

	// DrawCall records one draw in the current pass, binding bindGroups in order from group 0.
	//
	// Parameters:
	//   - p: the registered pipeline
	//   - mesh: the mesh provider
	//   - bindGroups: providers for groups 0..n
	DrawCall(p pipeline.Pipeline, mesh bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider)

	// EndFrame ends the pass and submits the recorded commands.
	EndFrame()

	// Present shows the frame and releases the swapchain texture.
	Present()

	// Release frees every GPU object owned by the backend.
	Release()
}
