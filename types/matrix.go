package types

import (
	"bytes"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis identifies one of the three principal axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Parse an axis token ("x", "y" or "z").
func ParseAxis(token string) (Axis, bool) {
	switch token {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	}
	return AxisX, false
}

// Unit vector for this axis.
func (a Axis) Vec3() Vec3 {
	switch a {
	case AxisY:
		return Vec3{0, 1, 0}
	case AxisZ:
		return Vec3{0, 0, 1}
	}
	return Vec3{1, 0, 0}
}

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// A column-major 4x4 matrix.
type Mat4 mgl32.Mat4

// Create a 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Create a 4x4 translation matrix.
func Translate4(v Vec3) Mat4 {
	return Mat4(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Create a 4x4 scale matrix.
func Scale4(v Vec3) Mat4 {
	return Mat4(mgl32.Scale3D(v[0], v[1], v[2]))
}

// Create a 4x4 rotation matrix about a principal axis. The angle is
// specified in radians.
func Rotate4(axis Axis, angle float32) Mat4 {
	switch axis {
	case AxisY:
		return Mat4(mgl32.HomogRotate3DY(angle))
	case AxisZ:
		return Mat4(mgl32.HomogRotate3DZ(angle))
	}
	return Mat4(mgl32.HomogRotate3DX(angle))
}

// Create a 4x4 rotation matrix about an arbitrary axis. The angle is
// specified in radians.
func RotateAxis4(angle float32, axis Vec3) Mat4 {
	return Mat4(mgl32.HomogRotate3D(angle, mgl32.Vec3(axis).Normalize()))
}

// Multiply two 4x4 matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	return Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(m2)))
}

// Multiply the matrix with a column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4(mgl32.Mat4(m).Mul4x1(mgl32.Vec4(v)))
}

// Transform a point (w = 1).
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// Check whether two matrices are equal within eps.
func (m Mat4) ApproxEqual(m2 Mat4, eps float32) bool {
	return mgl32.Mat4(m).ApproxEqualThreshold(mgl32.Mat4(m2), eps)
}

// Convert degrees to radians.
func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// Print matrix in row-major order.
func (m Mat4) String() string {
	var buf bytes.Buffer
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&buf, "[%g %g %g %g]", m[row], m[row+4], m[row+8], m[row+12])
		if row != 3 {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
