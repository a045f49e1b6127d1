// Package starfield generates the static point cloud drawn behind the planet.
package starfield

import (
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultCount is the number of stars in the background field.
	DefaultCount = 6000
	// DefaultHalfExtent bounds every coordinate to [-DefaultHalfExtent, DefaultHalfExtent].
	DefaultHalfExtent = 200
)

// StarField is an immutable cloud of points. It is rotated as a whole by the scene but its
// positions never change after generation.
type StarField struct {
	positions  []mgl32.Vec3
	halfExtent float32
}

// Generate draws count points with each coordinate sampled independently and uniformly
// from [-halfExtent, halfExtent]. The resulting distribution fills a cube, not a sphere.
//
// Parameters:
//   - count: number of points; non-positive values produce an empty field
//   - halfExtent: half the side of the bounding cube; negative values use the magnitude
//   - rng: random source; nil seeds a new PCG source from the runtime
//
// Returns:
//   - StarField: the generated field
func Generate(count int, halfExtent float32, rng *rand.Rand) StarField {
	if halfExtent < 0 {
		halfExtent = -halfExtent
	}
	if count <= 0 {
		return StarField{halfExtent: halfExtent}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	positions := make([]mgl32.Vec3, count)
	for i := range positions {
		positions[i] = mgl32.Vec3{
			uniform(rng, halfExtent),
			uniform(rng, halfExtent),
			uniform(rng, halfExtent),
		}
	}
	return StarField{positions: positions, halfExtent: halfExtent}
}

// uniform returns a value in [-e, e].
func uniform(rng *rand.Rand, e float32) float32 {
	v := (rng.Float32()*2 - 1) * e
	return float32(math.Max(float64(-e), math.Min(float64(e), float64(v))))
}

// Len returns the number of stars.
func (s StarField) Len() int {
	return len(s.positions)
}

// HalfExtent returns the bound used at generation time.
func (s StarField) HalfExtent() float32 {
	return s.halfExtent
}

// At returns the position of star i.
func (s StarField) At(i int) mgl32.Vec3 {
	return s.positions[i]
}

// Positions returns a copy of all star positions.
func (s StarField) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(s.positions))
	copy(out, s.positions)
	return out
}

// Bytes returns the positions as tightly packed float32x3 vertex data.
// The slice aliases the field's storage and must be treated as read-only.
func (s StarField) Bytes() []byte {
	return common.SliceToBytes(s.positions)
}
