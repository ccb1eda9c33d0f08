package glmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVecNear[V Vector](t *testing.T, want, got V, tol Scalar) {
	t.Helper()
	require.True(t, ApproxEqual(want, got, tol), "want %v, got %v", want, got)
}

func TestRotationsAreOrthonormal(t *testing.T) {
	R := Chain(Mat4RotateX(Tau/7), Mat4RotateY(-Tau/5), Mat4RotateZ(0.3))
	require.True(t, R.Transpose().Mul(R).ApproxEqual(Mat4Identity(), 1e-6))
	require.Equal(t, [4]Scalar{0, 0, 0, 1}, R[3])
}

func TestAxisRotations(t *testing.T) {
	quarter := Tau / 4
	cases := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x turns y into z", Mat4RotateX(quarter), V3(0, 1, 0), V3(0, 0, 1)},
		{"x turns z into -y", Mat4RotateX(quarter), V3(0, 0, 1), V3(0, -1, 0)},
		{"y turns z into x", Mat4RotateY(quarter), V3(0, 0, 1), V3(1, 0, 0)},
		{"y turns x into -z", Mat4RotateY(quarter), V3(1, 0, 0), V3(0, 0, -1)},
		{"z turns x into y", Mat4RotateZ(quarter), V3(1, 0, 0), V3(0, 1, 0)},
		{"z turns y into -x", Mat4RotateZ(quarter), V3(0, 1, 0), V3(-1, 0, 0)},
		{"x leaves its axis", Mat4RotateX(1.1), V3(2, 0, 0), V3(2, 0, 0)},
		{"half turn about z", Mat4RotateZ(Tau / 2), V3(1, 2, 3), V3(-1, -2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.TransformDirection(tc.in)
			requireVecNear(t, tc.want, got, 1e-6)
			require.InDelta(t, tc.in.Length(), got.Length(), 1e-6)
		})
	}
}

func TestLookAt(t *testing.T) {
	eye := V3(0, 0, 5)
	view := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))

	p := view.MulVec(Point(eye))
	require.InDelta(t, 0, p[0], 1e-6)
	require.InDelta(t, 0, p[1], 1e-6)
	require.InDelta(t, 0, p[2], 1e-6)
	require.Equal(t, Scalar(1), p[3])

	// The target ends up straight ahead, on the camera's -Z axis.
	c := view.TransformPoint(V3(0, 0, 0))
	requireVecNear(t, V3(0, 0, -5), c, 1e-6)

	// Up stays up.
	requireVecNear(t, V3(0, 1, 0), view.TransformDirection(V3(0, 1, 0)), 1e-6)
}

func TestLookAtBasis(t *testing.T) {
	eye := V3(3, 4, -2)
	view := Mat4LookAt(eye, V3(-1, 0.5, 1), V3(0, 1, 0))

	x, y, z := view.Row(0).Vec3(), view.Row(1).Vec3(), view.Row(2).Vec3()
	require.InDelta(t, 1, x.Length(), 1e-6)
	require.InDelta(t, 1, y.Length(), 1e-6)
	require.InDelta(t, 1, z.Length(), 1e-6)
	require.InDelta(t, 0, x.Dot(y), 1e-6)
	require.InDelta(t, 0, y.Dot(z), 1e-6)
	require.InDelta(t, 0, z.Dot(x), 1e-6)
	requireVecNear(t, z, x.Cross(y), 1e-6)

	requireVecNear(t, V3(0, 0, 0), view.TransformPoint(eye), 1e-5)
}

func TestLookAtParallelUpIsNotFinite(t *testing.T) {
	view := Mat4LookAt(V3(0, 5, 0), V3(0, 0, 0), V3(0, 1, 0))
	require.False(t, IsFinite(view.Col(0)))
}

func TestPerspective(t *testing.T) {
	m := Mat4Perspective(Tau/4, 1, 1, 100)

	require.Equal(t, Scalar(-1), m[2][3])
	require.Equal(t, m[0][0], m[1][1])
	require.InDelta(t, 1, m[1][1], 1e-6)
	require.Less(t, m[3][2], Scalar(0))
	require.InDelta(t, -101.0/99, m[2][2], 1e-6)
	require.InDelta(t, -200.0/99, m[3][2], 1e-5)
	require.Zero(t, m[3][3])

	near := m.TransformPoint(V3(0, 0, -1))
	far := m.TransformPoint(V3(0, 0, -100))
	require.InDelta(t, -1, near[2], 1e-5)
	require.InDelta(t, 1, far[2], 1e-5)

	wide := Mat4Perspective(Tau/4, 2, 1, 100)
	require.InDelta(t, m[0][0]/2, wide[0][0], 1e-6)
}

func TestPerspectivePreconditions(t *testing.T) {
	require.PanicsWithValue(t, "glmath: perspective aspect must be non-zero", func() {
		Mat4Perspective(1, 0, 0.1, 10)
	})
	require.PanicsWithValue(t, "glmath: perspective zNear and zFar must differ", func() {
		Mat4Perspective(1, 1, 3, 3)
	})
}

func TestOrtho(t *testing.T) {
	m := Mat4Ortho(-2, 2, -1, 1, 0.5, 10)
	requireVecNear(t, V3(-1, -1, -1), m.TransformPoint(V3(-2, -1, -0.5)), 1e-6)
	requireVecNear(t, V3(1, 1, 1), m.TransformPoint(V3(2, 1, -10)), 1e-6)

	require.Panics(t, func() { Mat4Ortho(1, 1, -1, 1, 0.1, 10) })
	require.Panics(t, func() { Mat4Ortho(-1, 1, -1, 1, 2, 2) })
}

func TestModelViewProjection(t *testing.T) {
	model := Chain(Mat4Translate(0, 0, -2), Mat4RotateY(Tau/8), Mat4Scale(0.5, 0.5, 0.5))
	view := Mat4LookAt(V3(0, 0, 3), V3(0, 0, -2), V3(0, 1, 0))
	proj := Mat4Perspective(float32(math.Pi/3), 4.0/3, 0.1, 50)

	mvp := proj.Mul(view).Mul(model)
	origin := mvp.MulVec(Point(V3(0, 0, 0)))
	require.InDelta(t, 5, origin[3], 1e-5, "w carries the view depth")
	ndc := origin.PerspectiveDivide()
	require.InDelta(t, 0, ndc[0], 1e-6)
	require.InDelta(t, 0, ndc[1], 1e-6)
	require.True(t, ndc[2] > -1 && ndc[2] < 1)
}
