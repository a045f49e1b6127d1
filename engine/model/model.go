package model

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer/bind_group_provider"
)

// Topology selects how a mesh's vertices are assembled into primitives.
type Topology int

const (
	// TopologyTriangles draws indexed triangle lists.
	TopologyTriangles Topology = iota

	// TopologyPoints draws one point per vertex, without indices.
	TopologyPoints
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	topology       Topology
	vertexData     []byte
	vertexCount    int
	indices        []uint32
	boundingRadius float32
	meshProvider   bind_group_provider.BindGroupProvider
}

// Model is CPU-side geometry ready for GPU upload. The renderer uploads VertexData and
// IndexData once and stores the resulting buffers on MeshProvider.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Topology retrieves the primitive topology.
	//
	// Returns:
	//   - Topology: triangles or points
	Topology() Topology

	// VertexData returns the packed vertex bytes. The stride is GPUVertexStride for
	// triangle meshes and GPUPointStride for point meshes.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// Indices returns the triangle indices, empty for point meshes.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// IndexData returns Indices packed as little-endian bytes.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the radius of a sphere around the origin containing every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// MeshProvider retrieves the GPU buffers for this mesh, nil before upload.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider or nil
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider attaches the GPU buffers created by the renderer.
	//
	// Parameters:
	//   - provider: the mesh provider
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Model = &model{}

// NewModel creates a Model from the provided options. Without geometry options the model is empty.
//
// Parameters:
//   - opts: variadic list of ModelBuilderOption functions
//
// Returns:
//   - Model: the new model
func NewModel(opts ...ModelBuilderOption) Model {
	m := &model{name: "model"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Topology() Topology {
	return m.topology
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) VertexCount() int {
	return m.vertexCount
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) IndexData() []byte {
	if len(m.indices) == 0 {
		return nil
	}
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}
