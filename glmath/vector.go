package glmath

import "math"

// Tau is a full turn in radians.
const Tau = float32(2 * math.Pi)

// Vector is the set of fixed-size vectors handled by the shared arithmetic below.
type Vector interface {
	~[3]float32 | ~[4]float32
}

// Vec3 is a 3-component column vector.
type Vec3 [3]float32

// Vec4 is a 4-component column vector in homogeneous coordinates.
type Vec4 [4]float32

func V3(x, y, z Scalar) Vec3    { return Vec3{x, y, z} }
func V4(x, y, z, w Scalar) Vec4 { return Vec4{x, y, z, w} }

func Vec3Zero() Vec3 { return Vec3{} }
func Vec4Zero() Vec4 { return Vec4{} }

// Scalar is the component type of every vector and matrix in this package.
type Scalar = float32

func sqrt(x Scalar) Scalar { return Scalar(math.Sqrt(float64(x))) }

func dot[V Vector](a, b V) Scalar {
	var sum Scalar
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func add[V Vector](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}
	return a
}

func sub[V Vector](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}
	return a
}

func scale[V Vector](a V, s Scalar) V {
	for i := 0; i < len(a); i++ {
		a[i] *= s
	}
	return a
}

// normalize divides in place. A zero vector turns into NaNs.
func normalize[V Vector](v *V) {
	l := sqrt(dot(*v, *v))
	for i := 0; i < len(*v); i++ {
		(*v)[i] /= l
	}
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual[V Vector](a, b V, eps Scalar) bool {
	for i := 0; i < len(a); i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d <= eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite[V Vector](v V) bool {
	for i := 0; i < len(v); i++ {
		f := float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// LengthSquared returns the squared norm, v·v.
func (v Vec3) LengthSquared() Scalar { return dot(v, v) }

// Length returns the Euclidean norm.
func (v Vec3) Length() Scalar { return sqrt(dot(v, v)) }

// Normalize scales v in place to unit length. v must not be the zero vector.
func (v *Vec3) Normalize() { normalize(v) }

// Normalized returns a unit-length copy of v. v must not be the zero vector.
func (v Vec3) Normalized() Vec3 {
	normalize(&v)
	return v
}

func (v Vec3) Dot(o Vec3) Scalar   { return dot(v, o) }
func (v Vec3) Add(o Vec3) Vec3     { return add(v, o) }
func (v Vec3) Sub(o Vec3) Vec3     { return sub(v, o) }
func (v Vec3) Scale(s Scalar) Vec3 { return scale(v, s) }
func (v Vec3) Neg() Vec3           { return scale(v, -1) }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Vec4 extends v with the homogeneous coordinate w.
func (v Vec3) Vec4(w Scalar) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// Point returns v as a homogeneous point (w = 1), affected by translation.
func Point(v Vec3) Vec4 { return v.Vec4(1) }

// Direction returns v as a homogeneous direction (w = 0), unaffected by translation.
func Direction(v Vec3) Vec4 { return v.Vec4(0) }

func (v Vec4) LengthSquared() Scalar { return dot(v, v) }
func (v Vec4) Length() Scalar        { return sqrt(dot(v, v)) }

// Normalize scales v in place to unit length. v must not be the zero vector.
func (v *Vec4) Normalize() { normalize(v) }

func (v Vec4) Normalized() Vec4 {
	normalize(&v)
	return v
}

func (v Vec4) Dot(o Vec4) Scalar   { return dot(v, o) }
func (v Vec4) Add(o Vec4) Vec4     { return add(v, o) }
func (v Vec4) Sub(o Vec4) Vec4     { return sub(v, o) }
func (v Vec4) Scale(s Scalar) Vec4 { return scale(v, s) }
func (v Vec4) Neg() Vec4           { return scale(v, -1) }

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// PerspectiveDivide maps a clip-space position to normalized device coordinates.
// w = 0 is not checked.
func (v Vec4) PerspectiveDivide() Vec3 {
	inv := 1 / v[3]
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}
