package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored column-major, the order OpenGL uploads.
// Element (row r, column c) lives at index c*4+r.
type Mat4 [16]float32

// rows builds a Mat4 from its rows as they read on paper.
func rows(
	a00, a01, a02, a03,
	a10, a11, a12, a13,
	a20, a21, a22, a23,
	a30, a31, a32, a33 float32,
) Mat4 {
	return Mat4{
		a00, a10, a20, a30,
		a01, a11, a21, a31,
		a02, a12, a22, a32,
		a03, a13, a23, a33,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Scale(1, 1, 1)
}

// Perspective returns an OpenGL projection for a vertical field of view in
// radians and an aspect ratio of width over height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	depth := near - far
	return rows(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/depth, 2*far*near/depth,
		0, 0, -1, 0,
	)
}

// LookAt returns a view matrix for an eye looking at center.
func LookAt(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye).Normalize()
	side := fwd.Cross(up).Normalize()
	u := side.Cross(fwd)
	return rows(
		side.X, side.Y, side.Z, -side.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-fwd.X, -fwd.Y, -fwd.Z, fwd.Dot(eye),
		0, 0, 0, 1,
	)
}

// Translate returns a translation.
func Translate(x, y, z float32) Mat4 {
	return rows(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scale returns a per-axis scale.
func Scale(x, y, z float32) Mat4 {
	return rows(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotateX turns counter-clockwise about +X, in radians.
func RotateX(angle float32) Mat4 {
	c, s := sincos(angle)
	return rows(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY turns counter-clockwise about +Y, in radians.
func RotateY(angle float32) Mat4 {
	c, s := sincos(angle)
	return rows(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ turns counter-clockwise about +Z, in radians.
func RotateZ(angle float32) Mat4 {
	c, s := sincos(angle)
	return rows(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotateXYZ composes RotateX(x) * RotateY(y) * RotateZ(z), so a point is
// turned about Z first and about X last.
func RotateXYZ(x, y, z float32) Mat4 {
	return RotateX(x).Mul(RotateY(y)).Mul(RotateZ(z))
}

func sincos(angle float32) (c, s float32) {
	s, c = math32.Sincos(angle)
	return c, s
}

// Mul returns m * other, so other is applied to a point first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(r, k) * other.At(k, c)
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformVec3 transforms a point (w = 1), dividing by w when it is not 1.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	in := [4]float32{v.X, v.Y, v.Z, 1}
	var out [4]float32
	for r := range out {
		for k, x := range in {
			out[r] += m.At(r, k) * x
		}
	}
	if w := out[3]; w != 0 && w != 1 {
		return Vec3{out[0] / w, out[1] / w, out[2] / w}
	}
	return Vec3{out[0], out[1], out[2]}
}

// Ptr returns a pointer to the first element for uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
