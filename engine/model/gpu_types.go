package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexStride is the byte stride of GPUVertex in a vertex buffer.
const GPUVertexStride = 32

// GPUPointStride is the byte stride of a point cloud vertex (position only).
const GPUPointStride = 12

// GPUVertex is the GPU-aligned representation of a single lit, textured mesh vertex.
// Matches the VertexInput struct of the planet and sprite shaders.
// Size: 32 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: model space position
	Normal   [3]float32 // offset 12: unit normal for lighting
	TexCoord [2]float32 // offset 24: UV
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the vertex into a little-endian buffer.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexStride)
	g.marshalInto(buf)
	return buf
}

func (g *GPUVertex) marshalInto(buf []byte) {
	vals := [8]float32{
		g.Position[0], g.Position[1], g.Position[2],
		g.Normal[0], g.Normal[1], g.Normal[2],
		g.TexCoord[0], g.TexCoord[1],
	}
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

// MarshalVertices packs a vertex slice into one contiguous buffer.
//
// Parameters:
//   - vertices: the vertices to pack
//
// Returns:
//   - []byte: len(vertices)*GPUVertexStride bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*GPUVertexStride)
	for i := range vertices {
		vertices[i].marshalInto(buf[i*GPUVertexStride:])
	}
	return buf
}
