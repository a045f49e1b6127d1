package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/model"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/material"
)

type gameObject struct {
	id        uint64
	name      string
	enabled   atomic.Bool
	billboard bool

	mu       sync.RWMutex
	mdl      model.Model
	mat      material.Material
	position [3]float32
	rotation [3]float32
	scale    [3]float32

	objectProvider bind_group_provider.BindGroupProvider
}

// GameObject is a drawable entity: a mesh, the material it is shaded with, and a transform.
// Transform and material accessors are safe for concurrent use, and a material swap is a
// single assignment so a draw sees either the old or the new material, never a mix.
type GameObject interface {
	// ID returns the object's identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's debug name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Billboard reports whether the object is drawn as a camera-facing sprite.
	//
	// Returns:
	//   - bool: true for sprites
	Billboard() bool

	// Model returns the mesh, or nil if not set.
	//
	// Returns:
	//   - model.Model: the mesh or nil
	Model() model.Model

	// Material returns the current material, or nil if not set.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Position returns the world position.
	//
	// Returns:
	//   - [3]float32: x, y, z
	Position() [3]float32

	// Rotation returns the Euler rotation in radians (pitch, yaw, roll).
	//
	// Returns:
	//   - [3]float32: rx, ry, rz
	Rotation() [3]float32

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - [3]float32: sx, sy, sz
	Scale() [3]float32

	// ModelMatrix computes translation * rotation * scale.
	//
	// Returns:
	//   - [16]float32: column-major model matrix
	ModelMatrix() [16]float32

	// Uniform packs the transform for the GPU.
	//
	// Returns:
	//   - GPUObjectUniform: the per-object uniform block
	Uniform() GPUObjectUniform

	// ObjectProvider returns the GPU resources for the per-object uniform, nil before upload.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	ObjectProvider() bind_group_provider.BindGroupProvider

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to draw
	SetEnabled(enabled bool)

	// SetMaterial replaces the material in one step.
	//
	// Parameters:
	//   - m: the new material
	SetMaterial(m material.Material)

	// SetPosition sets the world position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: pitch, yaw, roll
	SetRotation(rx, ry, rz float32)

	// AddRotation adds to the current Euler rotation.
	//
	// Parameters:
	//   - drx, dry, drz: deltas in radians
	AddRotation(drx, dry, drz float32)

	// SetUniformScale sets the same scale on every axis.
	//
	// Parameters:
	//   - s: the scale factor
	SetUniformScale(s float32)

	// SetObjectProvider attaches the GPU resources created by the renderer.
	//
	// Parameters:
	//   - provider: the per-object provider
	SetObjectProvider(provider bind_group_provider.BindGroupProvider)
}

var _ GameObject = &gameObject{}

var nextID atomic.Uint64

// NewGameObject creates an enabled GameObject at the origin with unit scale.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		id:    nextID.Add(1),
		name:  "object",
		scale: [3]float32{1, 1, 1},
	}
	g.enabled.Store(true)
	for _, opt := range options {
		opt(g)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Billboard() bool {
	return g.billboard
}

func (g *gameObject) Model() model.Model {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mdl
}

func (g *gameObject) Material() material.Material {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mat
}

func (g *gameObject) Position() [3]float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position
}

func (g *gameObject) Rotation() [3]float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rotation
}

func (g *gameObject) Scale() [3]float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scale
}

func (g *gameObject) ModelMatrix() [16]float32 {
	g.mu.RLock()
	pos, rot, scale := g.position, g.rotation, g.scale
	g.mu.RUnlock()

	var m [16]float32
	common.BuildModelMatrix(m[:], pos, rot, scale)
	return m
}

func (g *gameObject) Uniform() GPUObjectUniform {
	u := GPUObjectUniform{Model: g.ModelMatrix()}
	if g.billboard {
		u.Billboard = 1
	}
	return u
}

func (g *gameObject) ObjectProvider() bind_group_provider.BindGroupProvider {
	return g.objectProvider
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mu.Lock()
	g.mat = m
	g.mu.Unlock()
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	g.position = [3]float32{x, y, z}
	g.mu.Unlock()
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	g.rotation = [3]float32{rx, ry, rz}
	g.mu.Unlock()
}

func (g *gameObject) AddRotation(drx, dry, drz float32) {
	g.mu.Lock()
	g.rotation[0] += drx
	g.rotation[1] += dry
	g.rotation[2] += drz
	g.mu.Unlock()
}

func (g *gameObject) SetUniformScale(s float32) {
	g.mu.Lock()
	g.scale = [3]float32{s, s, s}
	g.mu.Unlock()
}

func (g *gameObject) SetObjectProvider(provider bind_group_provider.BindGroupProvider) {
	g.objectProvider = provider
}
