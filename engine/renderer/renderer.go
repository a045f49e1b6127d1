package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/game_object"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rs/zerolog"
)

// Bind group indices shared by every pipeline.
const (
	groupFrame    = 0
	groupObject   = 1
	groupMaterial = 2
)

// fallbackTexture is bound where a material has no texture so every pipeline layout can be
// satisfied. Shaders ignore it unless the material flags a texture.
var fallbackTexture = common.TextureStagingData{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend
	logger      zerolog.Logger

	width, height int

	// per-pipeline camera and light bindings
	frameProviders map[string]bind_group_provider.BindGroupProvider
	// material currently holding GPU resources for each object, keyed by object ID
	boundMaterials map[uint64]material.Material
	// every provider created by the renderer, released together
	owned []bind_group_provider.BindGroupProvider

	// pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer draws a planet scene into a window surface.
//
// GPU resources for meshes, objects and materials are created lazily on the first frame
// that draws them. Replacing an object's material (the deferred planet texture) is picked
// up on the next Render without any call from the caller: the new material gets fresh
// resources and the old material's are released.
type Renderer interface {
	// Pipeline retrieves a registered pipeline by key, nil if not registered.
	//
	// Parameters:
	//   - key: the pipeline key
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline or nil
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines creates GPU pipelines for each description and caches them by key.
	// Keys that are already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the pipelines to register
	//
	// Returns:
	//   - error: an error if GPU creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize reconfigures the surface. Non-positive sizes are remembered but do not touch the
	// surface, and frames are skipped until a positive size arrives.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	Resize(width, height int)

	// Size returns the last size passed to Resize.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetPresentMode selects vsync or uncapped presentation. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// Render uploads the scene's uniforms and draws stars, planet and sprite in that order.
	//
	// Parameters:
	//   - s: the scene to draw
	//
	// Returns:
	//   - error: an error if a pipeline is missing or GPU work fails
	Render(s scene.Scene) error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the window surface, registers the planet, sprite and
// stars pipelines and configures the surface to the window size.
// Panics if the GPU cannot be initialised.
//
// Parameters:
//   - backendType: the rendering backend to use
//   - w: the window providing the surface
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the ready renderer
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	r := newRenderer(backendType, options...)

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if err := r.setup(w.Width(), w.Height()); err != nil {
		panic(err)
	}
	return r
}

// newRenderer applies options to an empty renderer without touching the GPU.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:             &sync.Mutex{},
		pipelineCache:  make(map[string]pipeline.Pipeline),
		backendType:    backendType,
		logger:         zerolog.Nop(),
		frameProviders: make(map[string]bind_group_provider.BindGroupProvider),
		boundMaterials: make(map[uint64]material.Material),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// setup registers the default pipelines plus any supplied through options, then sizes the
// surface.
func (r *renderer) setup(width, height int) error {
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	pending := make([]pipeline.Pipeline, 0, len(r.pipelineCache)+3)
	for _, p := range r.pipelineCache {
		pending = append(pending, p)
	}
	r.pipelineCache = make(map[string]pipeline.Pipeline)

	defaults, err := DefaultPipelines()
	if err != nil {
		return err
	}
	if err := r.RegisterPipelines(append(pending, defaults...)...); err != nil {
		return err
	}

	r.Resize(width, height)
	r.logger.Debug().
		Int("pipelines", len(r.pipelineCache)).
		Int("width", width).
		Int("height", height).
		Msg("renderer ready")
	return nil
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("register pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Render(s scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	items := drawList(s)
	calls := make([]drawCall, 0, len(items))
	writes := make([]bind_group_provider.BufferWrite, 0, len(items)*3+2)
	camera := s.Camera().Uniform()
	lights := s.LightBlock()
	framesWritten := make(map[string]bool, len(r.pipelineCache))

	for _, obj := range items {
		key := obj.Material().PipelineKey()
		p, ok := r.pipelineCache[key]
		if !ok {
			return fmt.Errorf("render pipeline %q not registered for %s", key, obj.Name())
		}

		frame, err := r.frameProvider(p)
		if err != nil {
			return err
		}
		if !framesWritten[key] {
			framesWritten[key] = true
			writes = append(writes,
				bind_group_provider.BufferWrite{Provider: frame, Binding: 0, Data: camera.Marshal()},
				bind_group_provider.BufferWrite{Provider: frame, Binding: 1, Data: lights.Marshal()},
			)
		}

		mesh, err := r.meshProvider(obj)
		if err != nil {
			return err
		}
		objProvider, err := r.objectProvider(p, obj)
		if err != nil {
			return err
		}
		matProvider, err := r.materialProvider(p, obj)
		if err != nil {
			return err
		}

		u := obj.Uniform()
		u.Model = s.WorldMatrix(obj)
		m := obj.Material().Uniform()
		writes = append(writes,
			bind_group_provider.BufferWrite{Provider: objProvider, Binding: 0, Data: u.Marshal()},
			bind_group_provider.BufferWrite{Provider: matProvider, Binding: 0, Data: m.Marshal()},
		)
		calls = append(calls, drawCall{
			pipeline: p,
			mesh:     mesh,
			groups:   []bind_group_provider.BindGroupProvider{frame, objProvider, matProvider},
		})
	}

	r.backend.WriteBuffers(writes)
	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	for _, c := range calls {
		r.backend.DrawCall(c.pipeline, c.mesh, c.groups)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.owned {
		p.Release()
	}
	r.owned = nil
	r.frameProviders = make(map[string]bind_group_provider.BindGroupProvider)
	r.boundMaterials = make(map[uint64]material.Material)
	for _, p := range r.pipelineCache {
		p.Release()
	}
	r.pipelineCache = make(map[string]pipeline.Pipeline)
	if r.backend != nil {
		r.backend.Release()
	}
}

// drawCall is one recorded draw for the current frame.
type drawCall struct {
	pipeline pipeline.Pipeline
	mesh     bind_group_provider.BindGroupProvider
	groups   []bind_group_provider.BindGroupProvider
}

// drawList returns the scene's drawable objects in draw order. Disabled objects and objects
// without a model or material are left out.
func drawList(s scene.Scene) []game_object.GameObject {
	objects := s.Objects()
	out := make([]game_object.GameObject, 0, len(objects))
	for _, obj := range objects {
		if obj == nil || !obj.Enabled() || obj.Model() == nil || obj.Material() == nil {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// samplerFor clamps additive sprites on both axes and wraps everything else horizontally.
func samplerFor(m material.Material) common.SamplerStagingData {
	if m.Blend() == material.BlendAdditive {
		return common.SamplerStagingData{
			AddressModeU: wgpu.AddressModeClampToEdge,
			AddressModeV: wgpu.AddressModeClampToEdge,
		}
	}
	return common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeRepeat,
		AddressModeV: wgpu.AddressModeClampToEdge,
	}
}

// track records a provider for release with the renderer. Caller must hold the mutex.
func (r *renderer) track(p bind_group_provider.BindGroupProvider) {
	r.owned = append(r.owned, p)
}

// untrack forgets and releases a provider. Caller must hold the mutex.
func (r *renderer) untrack(p bind_group_provider.BindGroupProvider) {
	for i, o := range r.owned {
		if o == p {
			r.owned = append(r.owned[:i], r.owned[i+1:]...)
			break
		}
	}
	p.Release()
}

func (r *renderer) frameProvider(p pipeline.Pipeline) (bind_group_provider.BindGroupProvider, error) {
	if fp, ok := r.frameProviders[p.PipelineKey()]; ok {
		return fp, nil
	}
	fp := bind_group_provider.NewBindGroupProvider(p.PipelineKey() + " frame")
	desc := p.BindGroupLayoutDescriptors()[groupFrame]
	if err := r.backend.InitBindGroup(fp, p.BindGroupLayout(groupFrame), desc); err != nil {
		fp.Release()
		return nil, fmt.Errorf("frame bind group for %q: %w", p.PipelineKey(), err)
	}
	r.track(fp)
	r.frameProviders[p.PipelineKey()] = fp
	return fp, nil
}

func (r *renderer) meshProvider(obj game_object.GameObject) (bind_group_provider.BindGroupProvider, error) {
	m := obj.Model()
	if mp := m.MeshProvider(); mp != nil {
		return mp, nil
	}
	mp := bind_group_provider.NewBindGroupProvider(m.Name() + " mesh")
	if err := r.backend.InitMeshBuffers(mp, m.VertexData(), m.VertexCount(), m.IndexData(), m.IndexCount()); err != nil {
		mp.Release()
		return nil, fmt.Errorf("mesh buffers for %s: %w", m.Name(), err)
	}
	r.track(mp)
	m.SetMeshProvider(mp)
	return mp, nil
}

func (r *renderer) objectProvider(p pipeline.Pipeline, obj game_object.GameObject) (bind_group_provider.BindGroupProvider, error) {
	if op := obj.ObjectProvider(); op != nil {
		return op, nil
	}
	op := bind_group_provider.NewBindGroupProvider(obj.Name() + " object")
	desc := p.BindGroupLayoutDescriptors()[groupObject]
	if err := r.backend.InitBindGroup(op, p.BindGroupLayout(groupObject), desc); err != nil {
		op.Release()
		return nil, fmt.Errorf("object bind group for %s: %w", obj.Name(), err)
	}
	r.track(op)
	obj.SetObjectProvider(op)
	return op, nil
}

// materialProvider returns the GPU resources of the object's current material, creating
// them if the material is new and releasing those of the material it replaced.
func (r *renderer) materialProvider(p pipeline.Pipeline, obj game_object.GameObject) (bind_group_provider.BindGroupProvider, error) {
	mat := obj.Material()
	if prev, ok := r.boundMaterials[obj.ID()]; ok && prev != mat {
		if old := prev.BindGroupProvider(); old != nil {
			r.untrack(old)
			prev.SetBindGroupProvider(nil)
		}
		delete(r.boundMaterials, obj.ID())
		r.logger.Debug().
			Str("object", obj.Name()).
			Str("from", prev.Name()).
			Str("to", mat.Name()).
			Msg("material replaced")
	}
	if mp := mat.BindGroupProvider(); mp != nil {
		r.boundMaterials[obj.ID()] = mat
		return mp, nil
	}

	mp := bind_group_provider.NewBindGroupProvider(mat.Name() + " material")
	desc := p.BindGroupLayoutDescriptors()[groupMaterial]
	for _, entry := range desc.Entries {
		binding := int(entry.Binding)
		switch {
		case entry.Texture.SampleType != wgpu.TextureSampleTypeUndefined:
			tex := fallbackTexture
			if t := mat.Texture(); t != nil && !t.Empty() {
				tex = *t
			}
			if err := r.backend.InitTextureView(mp, binding, tex); err != nil {
				mp.Release()
				return nil, fmt.Errorf("texture for %s: %w", mat.Name(), err)
			}
		case entry.Sampler.Type != wgpu.SamplerBindingTypeUndefined:
			if err := r.backend.InitSampler(mp, binding, samplerFor(mat)); err != nil {
				mp.Release()
				return nil, fmt.Errorf("sampler for %s: %w", mat.Name(), err)
			}
		}
	}
	if err := r.backend.InitBindGroup(mp, p.BindGroupLayout(groupMaterial), desc); err != nil {
		mp.Release()
		return nil, fmt.Errorf("material bind group for %s: %w", mat.Name(), err)
	}

	r.track(mp)
	mat.SetBindGroupProvider(mp)
	r.boundMaterials[obj.ID()] = mat
	return mp, nil
}
