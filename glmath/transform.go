package glmath

import "math"

func Mat4Scale(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// Mat4Translate stores the offset in the last column.
func Mat4Translate(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func sincos(rad Scalar) (s, c Scalar) {
	fs, fc := math.Sincos(float64(rad))
	return Scalar(fs), Scalar(fc)
}

// Mat4RotateX rotates counter-clockwise around +X (looking from +X toward the origin).
func Mat4RotateX(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotateY rotates counter-clockwise around +Y.
func Mat4RotateY(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotateZ rotates counter-clockwise around +Z.
func Mat4RotateZ(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4LookAt returns a view matrix for a camera at eye looking at center.
//
// The camera looks down its local -Z. up must not be parallel to eye-center;
// that case is not detected and yields non-finite entries.
func Mat4LookAt(eye, center, up Vec3) Mat4 {
	z := eye.Sub(center).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)

	return Mat4{
		{x[0], y[0], z[0], 0},
		{x[1], y[1], z[1], 0},
		{x[2], y[2], z[2], 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}
}

// Mat4Perspective returns a right-handed projection mapping the view frustum to
// OpenGL clip space. fovY is the vertical field of view in radians.
//
// It panics if aspect is zero or zNear equals zFar.
func Mat4Perspective(fovY, aspect, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		panic("glmath: perspective aspect must be non-zero")
	}
	if zNear == zFar {
		panic("glmath: perspective zNear and zFar must differ")
	}

	f := 1 / Scalar(math.Tan(float64(fovY)/2))
	nf := zNear - zFar

	var m Mat4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (zNear + zFar) / nf
	m[2][3] = -1
	m[3][2] = (2 * zNear * zFar) / nf
	return m
}

// Mat4Ortho returns a right-handed orthographic projection.
//
// It panics if the volume is empty along any axis.
func Mat4Ortho(left, right, bottom, top, zNear, zFar Scalar) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 || tb == 0 || fn == 0 {
		panic("glmath: ortho volume must be non-empty")
	}

	m := Mat4Identity()
	m[0][0] = 2 / rl
	m[1][1] = 2 / tb
	m[2][2] = -2 / fn
	m[3][0] = -(right + left) / rl
	m[3][1] = -(top + bottom) / tb
	m[3][2] = -(zFar + zNear) / fn
	return m
}
