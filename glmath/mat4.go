package glmath

// Mat4 is a column-major 4x4 matrix: m[col][row].
//
// Memory layout of the flattened form (offset = col*4+row):
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
type Mat4 [4][4]Scalar

func Mat4Zero() Mat4 { return Mat4{} }

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromFloats builds a matrix from its column-major flattening.
func Mat4FromFloats(f [16]Scalar) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] = f[c*4+r]
		}
	}
	return m
}

// Mul returns the product m·o, so (m.Mul(o)).MulVec(v) applies o first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] =
				m[0][r]*o[c][0] +
					m[1][r]*o[c][1] +
					m[2][r]*o[c][2] +
					m[3][r]*o[c][3]
		}
	}
	return out
}

// MulVec treats v as a column vector and returns m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2] + m[3][0]*v[3],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2] + m[3][1]*v[3],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2] + m[3][2]*v[3],
		m[0][3]*v[0] + m[1][3]*v[1] + m[2][3]*v[2] + m[3][3]*v[3],
	}
}

// TransformPoint applies m to the point p (w = 1) and divides by the resulting w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec(Point(p)).PerspectiveDivide()
}

// TransformDirection applies m to d (w = 0); translation is ignored.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec(Direction(d)).Vec3()
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

func (m Mat4) Col(c int) Vec4 { return Vec4(m[c]) }

func (m Mat4) Row(r int) Vec4 { return Vec4{m[0][r], m[1][r], m[2][r], m[3][r]} }

// Floats returns the column-major flattening of m.
func (m Mat4) Floats() [16]Scalar {
	var f [16]Scalar
	for c := 0; c < 4; c++ {
		copy(f[c*4:c*4+4], m[c][:])
	}
	return f
}

// AppendFloats appends the column-major flattening of m to dst.
func (m Mat4) AppendFloats(dst []Scalar) []Scalar {
	for c := 0; c < 4; c++ {
		dst = append(dst, m[c][:]...)
	}
	return dst
}

// ApproxEqual reports whether every entry of m and o differs by at most eps.
func (m Mat4) ApproxEqual(o Mat4, eps Scalar) bool {
	for c := 0; c < 4; c++ {
		if !ApproxEqual(Vec4(m[c]), Vec4(o[c]), eps) {
			return false
		}
	}
	return true
}

// Chain multiplies ms left to right. An empty chain is the identity.
func Chain(ms ...Mat4) Mat4 {
	out := Mat4Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}
