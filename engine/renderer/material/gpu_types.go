package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialUniform is the GPU-aligned surface block bound at group 2 of the planet and
// sprite pipelines.
// Size: 48 bytes.
type GPUMaterialUniform struct {
	Color      [3]float32 // offset  0: diffuse colour
	Opacity    float32    // offset 12: alpha multiplier
	Emissive   [3]float32 // offset 16: self-illumination
	Shininess  float32    // offset 28: Phong exponent
	Specular   [3]float32 // offset 32: highlight colour
	HasTexture uint32     // offset 44: 1 when the diffuse texture should be sampled
}

// Size returns the size of the GPUMaterialUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUMaterialUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian buffer.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUMaterialUniform) Marshal() []byte {
	buf := make([]byte, 48)
	put := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}
	for i := range 3 {
		put(i*4, g.Color[i])
		put(16+i*4, g.Emissive[i])
		put(32+i*4, g.Specular[i])
	}
	put(12, g.Opacity)
	put(28, g.Shininess)
	binary.LittleEndian.PutUint32(buf[44:], g.HasTexture)
	return buf
}
