package model

import (
	"math"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ModelBuilderOption is a function that configures a model instance during construction.
type ModelBuilderOption func(*model)

// WithName sets the name of the model.
//
// Parameters:
//   - name: the identifier for the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithTriangles sets indexed triangle geometry and computes the bounding radius.
//
// Parameters:
//   - vertices: the mesh vertices
//   - indices: triangle indices with CCW winding
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry to a model
func WithTriangles(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.topology = TopologyTriangles
		m.vertexData = MarshalVertices(vertices)
		m.vertexCount = len(vertices)
		m.indices = indices
		var r float32
		for _, v := range vertices {
			r = max(r, mgl32.Vec3(v.Position).Len())
		}
		m.boundingRadius = r
	}
}

// WithPoints sets non-indexed point geometry, one point per position.
//
// Parameters:
//   - positions: point positions in model space
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry to a model
func WithPoints(positions []mgl32.Vec3) ModelBuilderOption {
	return func(m *model) {
		m.topology = TopologyPoints
		m.vertexData = append([]byte(nil), common.SliceToBytes(positions)...)
		m.vertexCount = len(positions)
		m.indices = nil
		var r float32
		for _, p := range positions {
			r = max(r, p.Len())
		}
		m.boundingRadius = r
	}
}

// NewSphere builds a UV sphere centred on the origin. Longitude runs along U with the
// seam on the -X side and V runs from the north pole (0) to the south pole (1), which is
// the layout of an equirectangular planet map.
//
// Parameters:
//   - name: the model name
//   - radius: sphere radius
//   - widthSegments: longitude subdivisions, at least 3
//   - heightSegments: latitude subdivisions, at least 2
//
// Returns:
//   - Model: the sphere mesh
func NewSphere(name string, radius float32, widthSegments, heightSegments int) Model {
	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)

	vertices := make([]GPUVertex, 0, (widthSegments+1)*(heightSegments+1))
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			n := [3]float32{
				float32(-math.Cos(phi) * math.Sin(theta)),
				float32(math.Cos(theta)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(u), float32(v)},
			})
		}
	}

	// The top and bottom rows collapse to a point, so their degenerate triangles are skipped.
	stride := widthSegments + 1
	indices := make([]uint32, 0, widthSegments*(heightSegments-1)*6)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy*stride + ix + 1)
			b := uint32(iy*stride + ix)
			c := uint32((iy+1)*stride + ix)
			d := uint32((iy+1)*stride + ix + 1)
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return NewModel(WithName(name), WithTriangles(vertices, indices))
}

// NewQuad builds a unit square in the XY plane facing +Z, used for camera-facing sprites.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - Model: the quad mesh
func NewQuad(name string) Model {
	n := [3]float32{0, 0, 1}
	vertices := []GPUVertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Normal: n, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{0.5, -0.5, 0}, Normal: n, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
	}
	return NewModel(WithName(name), WithTriangles(vertices, []uint32{0, 1, 2, 0, 2, 3}))
}
