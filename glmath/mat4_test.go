package glmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleMat(seed Scalar) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] = (seed*Scalar(c*4+r+1) - Scalar(r*r) + 0.25*Scalar(c)) * 0.125
		}
	}
	return m
}

func TestMat4Identity(t *testing.T) {
	I := Mat4Identity()
	for _, m := range []Mat4{sampleMat(1), sampleMat(-0.5), Mat4Translate(1, 2, 3), Mat4Zero()} {
		require.Equal(t, m, I.Mul(m))
		require.Equal(t, m, m.Mul(I))
	}
	v := V4(1, 2, 3, 4)
	require.Equal(t, v, I.MulVec(v))
}

func TestMat4MulAssociative(t *testing.T) {
	a := sampleMat(0.5)
	b := Mat4RotateY(0.7).Mul(Mat4Translate(-1, 4, 2))
	c := sampleMat(-1.25)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	require.True(t, left.ApproxEqual(right, 1e-3), "(AB)C=%v A(BC)=%v", left, right)
}

func TestMat4MulNotCommutative(t *testing.T) {
	tr := Mat4Translate(1, 0, 0)
	rot := Mat4RotateZ(Tau / 4)
	require.False(t, tr.Mul(rot).ApproxEqual(rot.Mul(tr), eps))
}

func TestMat4MulColumnMajor(t *testing.T) {
	a := sampleMat(1)
	b := sampleMat(2)
	got := a.Mul(b)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var want Scalar
			for i := 0; i < 4; i++ {
				want += a[i][r] * b[c][i]
			}
			require.InDelta(t, want, got[c][r], 1e-3, "entry col=%d row=%d", c, r)
		}
	}

	// Each column of a·b is a applied to the matching column of b.
	for c := 0; c < 4; c++ {
		require.True(t, ApproxEqual(a.MulVec(b.Col(c)), got.Col(c), 1e-3))
	}
}

func TestMat4ScaleTranslateCompose(t *testing.T) {
	combined := Mat4Translate(1, 2, 3).Mul(Mat4Scale(2, 2, 2))
	require.Equal(t, V4(7, 8, 9, 1), combined.MulVec(V4(3, 3, 3, 1)))

	require.Equal(t, combined, Chain(Mat4Translate(1, 2, 3), Mat4Scale(2, 2, 2)))
	require.Equal(t, Mat4Identity(), Chain())
}

func TestMat4NeutralTransforms(t *testing.T) {
	require.Equal(t, Mat4Identity(), Mat4Scale(1, 1, 1))
	require.Equal(t, Mat4Identity(), Mat4Translate(0, 0, 0))
	require.Equal(t, Mat4Identity(), Mat4RotateX(0))
	require.Equal(t, Mat4Identity(), Mat4RotateY(0))
	require.Equal(t, Mat4Identity(), Mat4RotateZ(0))
}

func TestMat4Translate(t *testing.T) {
	m := Mat4Translate(1, 2, 3)
	require.Equal(t, [4]Scalar{1, 2, 3, 1}, m[3])
	require.Equal(t, V4(11, 12, 13, 1), m.MulVec(V4(10, 10, 10, 1)))
	require.Equal(t, V4(10, 10, 10, 0), m.MulVec(V4(10, 10, 10, 0)), "directions ignore translation")
	require.Equal(t, V3(2, 3, 4), m.TransformPoint(V3(1, 1, 1)))
	require.Equal(t, V3(1, 1, 1), m.TransformDirection(V3(1, 1, 1)))
}

func TestMat4Floats(t *testing.T) {
	m := sampleMat(1)
	f := m.Floats()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			require.Equal(t, m[c][r], f[c*4+r])
		}
	}
	require.Equal(t, m, Mat4FromFloats(f))

	tr := Mat4Translate(1, 2, 3).Floats()
	require.Equal(t, []Scalar{1, 2, 3, 1}, tr[12:16])

	buf := Mat4Identity().AppendFloats([]Scalar{42})
	require.Len(t, buf, 17)
	require.Equal(t, Scalar(42), buf[0])
	require.Equal(t, f[:], m.AppendFloats(nil))
}

func TestMat4Transpose(t *testing.T) {
	m := sampleMat(3)
	tr := m.Transpose()
	for c := 0; c < 4; c++ {
		require.Equal(t, m.Row(c), tr.Col(c))
		require.Equal(t, m.Col(c), tr.Row(c))
	}
	require.Equal(t, m, tr.Transpose())
}

func TestMat4Index(t *testing.T) {
	m := Mat4Identity()
	m[2][1] = 5
	require.Equal(t, [4]Scalar{0, 5, 1, 0}, m[2])

	cp := m
	cp[0][0] = -1
	require.Equal(t, Scalar(1), m[0][0], "copies must not share storage")

	c := 4
	require.Panics(t, func() { _ = m[c] })
	require.Panics(t, func() { _ = m[0][c] })
}
