package common

import (
	"math"
	"unsafe"
)

// Identity writes the 4x4 identity matrix into m (column-major, 16 elements).
func Identity(m []float32) {
	clear(m[:16])
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes returns a byte view over a slice of fixed-size values for GPU uploads.
// The returned slice aliases data and must not outlive it.
//
// Parameters:
//   - data: source slice
//
// Returns:
//   - []byte: byte view of data, or nil when data is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(unsafe.Sizeof(zero))*len(data))
}

// Mul4 computes out = a * b for column-major 4x4 matrices. out may alias a or b.
//
// Parameters:
//   - out: destination (16 elements)
//   - a: left operand
//   - b: right operand
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective writes a right-handed perspective projection mapping depth into the WebGPU
// clip range [0, 1].
//
// Parameters:
//   - out: destination (16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: width / height
//   - near: near plane distance, > 0
//   - far: far plane distance, > near
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = (near * far) / (near - far)
	out[15] = 0
}

// LookAt writes the view matrix for an eye looking at center with the given up vector.
//
// Parameters:
//   - out: destination (16 elements)
//   - eye: camera position
//   - center: point being looked at
//   - up: up direction, usually (0, 1, 0)
func LookAt(out []float32, eye, center, up [3]float32) {
	z := normalize([3]float32{eye[0] - center[0], eye[1] - center[1], eye[2] - center[2]})
	x := normalize(cross(up, z))
	y := cross(z, x)

	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -dot(x, eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -dot(y, eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -dot(z, eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// BuildModelMatrix writes translation * Ry * Rx * Rz * scale into out.
//
// Parameters:
//   - out: destination (16 elements)
//   - pos: translation
//   - rot: Euler angles in radians (x = pitch, y = yaw, z = roll)
//   - scale: per-axis scale
func BuildModelMatrix(out []float32, pos, rot, scale [3]float32) {
	cx, sx := float32(math.Cos(float64(rot[0]))), float32(math.Sin(float64(rot[0])))
	cy, sy := float32(math.Cos(float64(rot[1]))), float32(math.Sin(float64(rot[1])))
	cz, sz := float32(math.Cos(float64(rot[2]))), float32(math.Sin(float64(rot[2])))

	out[0] = (cy*cz + sy*sx*sz) * scale[0]
	out[1] = (cx * sz) * scale[0]
	out[2] = (-sy*cz + cy*sx*sz) * scale[0]
	out[3] = 0

	out[4] = (-cy*sz + sy*sx*cz) * scale[1]
	out[5] = (cx * cz) * scale[1]
	out[6] = (sy*sz + cy*sx*cz) * scale[1]
	out[7] = 0

	out[8] = (sy * cx) * scale[2]
	out[9] = -sx * scale[2]
	out[10] = (cy * cx) * scale[2]
	out[11] = 0

	out[12], out[13], out[14], out[15] = pos[0], pos[1], pos[2], 1
}

// Damp moves current toward target by factor of the remaining distance.
// For factor in (0, 1) repeated application converges monotonically without overshoot.
//
// Parameters:
//   - current: the current value
//   - target: the value being approached
//   - factor: fraction of the gap closed per call
//
// Returns:
//   - float32: the updated value
func Damp(current, target, factor float32) float32 {
	return current + (target-current)*factor
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// normalize returns v scaled to unit length; a zero vector is returned unchanged.
func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(dot(v, v))))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
