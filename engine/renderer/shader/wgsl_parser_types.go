package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexAttrFormat pairs a wgpu vertex format with the number of bytes it occupies.
type vertexAttrFormat struct {
	format wgpu.VertexFormat
	size   uint64
}

// typeLayout is the size and alignment of a WGSL host-shareable type.
type typeLayout struct {
	size  uint64
	align uint64
}

// structField is one member of a WGSL struct.
type structField struct {
	name     string
	typeName string
	location int // -1 when the member has no @location
	builtin  bool
}

// structDecl is a WGSL struct declaration.
type structDecl struct {
	name   string
	fields []structField
}
