package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGPULights is the number of directional and point lights the lit shader evaluates.
// Ambient lights are folded into the header and do not count against it.
const MaxGPULights = 4

// GPULight is the GPU-aligned representation of one directional or point light.
// Matches the WGSL Light struct in the planet shader.
// Size: 48 bytes.
type GPULight struct {
	Position   [3]float32 // offset  0: world-space position (point)
	LightType  uint32     // offset 12: matches LightType
	Color      [3]float32 // offset 16: RGB color
	Intensity  float32    // offset 28: scalar multiplier
	Direction  [3]float32 // offset 32: normalised travel direction (directional)
	LightRange float32    // offset 44: falloff radius (point)
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the light into a little-endian buffer.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 48)
	putVec3(buf[0:], g.Position)
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	putVec3(buf[16:], g.Color)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	putVec3(buf[32:], g.Direction)
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.LightRange))
	return buf
}

// GPULightBlock is the whole lighting uniform: ambient term, light count and a fixed array
// of lights. Unused slots are zero.
// Size: 16 + 48*MaxGPULights bytes.
type GPULightBlock struct {
	AmbientColor [3]float32 // offset 0: sum of enabled ambient lights, color * intensity
	LightCount   uint32     // offset 12: number of valid entries in Lights
	Lights       [MaxGPULights]GPULight
}

// Size returns the size of the block in bytes.
func (b *GPULightBlock) Size() int {
	return 16 + MaxGPULights*48
}

// Marshal serializes the block into a little-endian buffer.
func (b *GPULightBlock) Marshal() []byte {
	buf := make([]byte, b.Size())
	putVec3(buf[0:], b.AmbientColor)
	binary.LittleEndian.PutUint32(buf[12:16], b.LightCount)
	for i := range b.Lights {
		copy(buf[16+i*48:], b.Lights[i].Marshal())
	}
	return buf
}

// Pack folds a light rig into a GPULightBlock. Disabled lights are skipped, ambient lights
// are summed into the header, and directional and point lights fill the array in order
// until it is full.
//
// Parameters:
//   - lights: the scene's lights
//
// Returns:
//   - GPULightBlock: the packed block
func Pack(lights []Light) GPULightBlock {
	var block GPULightBlock
	for _, l := range lights {
		if l == nil || !l.Enabled() {
			continue
		}
		c := l.Color()
		if l.Type() == LightTypeAmbient {
			for i := range 3 {
				block.AmbientColor[i] += c[i] * l.Intensity()
			}
			continue
		}
		if block.LightCount >= MaxGPULights {
			continue
		}
		block.Lights[block.LightCount] = GPULight{
			Position:   l.Position(),
			LightType:  uint32(l.Type()),
			Color:      c,
			Intensity:  l.Intensity(),
			Direction:  l.Direction(),
			LightRange: l.Range(),
		}
		block.LightCount++
	}
	return block
}

func putVec3(buf []byte, v [3]float32) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v[i]))
	}
}
