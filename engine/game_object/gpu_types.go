package game_object

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUObjectUniform is the per-object block bound at group 1.
// Size: 80 bytes.
type GPUObjectUniform struct {
	Model     [16]float32 // offset  0: model matrix
	Billboard uint32      // offset 64: 1 for camera-facing sprites
	_         [3]uint32   // offset 68: pad to 16
}

// Size returns the size of the GPUObjectUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUObjectUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian buffer.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUObjectUniform) Marshal() []byte {
	buf := make([]byte, 80)
	for i, v := range g.Model {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	binary.LittleEndian.PutUint32(buf[64:], g.Billboard)
	return buf
}
