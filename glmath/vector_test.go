package glmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func TestVectorZero(t *testing.T) {
	require.Equal(t, Vec3{0, 0, 0}, Vec3Zero())
	require.Equal(t, Vec4{0, 0, 0, 0}, Vec4Zero())
	require.Zero(t, Vec4Zero().Length())
}

func TestVectorLength(t *testing.T) {
	vs := []Vec4{
		{1, 2, 3, 4},
		{-1, 0.5, 2, -2},
		{0, 0, 0, 0},
		{1e-3, -7, 0, 12},
	}
	for _, v := range vs {
		require.Equal(t, v.Dot(v), v.LengthSquared())
		require.InDelta(t, math.Sqrt(float64(v.LengthSquared())), float64(v.Length()), eps)
		require.GreaterOrEqual(t, v.Length(), Scalar(0))
	}

	v := V3(3, 4, 12)
	require.Equal(t, Scalar(169), v.LengthSquared())
	require.Equal(t, Scalar(13), v.Length())
}

func TestVectorNormalize(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		v := V3(3, -4, 12)
		v.Normalize()
		require.InDelta(t, 1, v.Length(), eps)
		require.InDelta(t, 3.0/13, v[0], eps)
		require.InDelta(t, -4.0/13, v[1], eps)
	})

	t.Run("copy leaves receiver alone", func(t *testing.T) {
		v := V4(1, 2, 3, 4)
		n := v.Normalized()
		require.Equal(t, V4(1, 2, 3, 4), v)
		require.InDelta(t, 1, n.Length(), eps)
	})

	t.Run("zero vector degrades to NaN", func(t *testing.T) {
		v := Vec3Zero()
		require.NotPanics(t, func() { v.Normalize() })
		require.False(t, IsFinite(v))
		require.True(t, math.IsNaN(float64(v[0])))
	})
}

func TestVectorArithmetic(t *testing.T) {
	a := V4(1, 2, 3, 4)
	b := V4(-1, 0.5, 2, -2)

	require.Equal(t, V4(0, 2.5, 5, 2), a.Add(b))
	require.Equal(t, V4(2, 1.5, 1, 6), a.Sub(b))
	require.Equal(t, V4(3, 6, 9, 12), a.Scale(3))
	require.Equal(t, V4(-1, -2, -3, -4), a.Neg())
	require.Equal(t, Scalar(1*(-1)+2*0.5+3*2+4*(-2)), a.Dot(b))
	require.Equal(t, a.Dot(b), b.Dot(a))

	x := V3(1, 2, 3)
	y := V3(4, 5, 6)
	require.Equal(t, V3(5, 7, 9), x.Add(y))
	require.Equal(t, V3(-3, -3, -3), x.Sub(y))
	require.Equal(t, Scalar(32), x.Dot(y))
}

func TestVectorCross(t *testing.T) {
	ex, ey, ez := V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)
	require.Equal(t, ez, ex.Cross(ey))
	require.Equal(t, ex, ey.Cross(ez))
	require.Equal(t, ey, ez.Cross(ex))

	pairs := [][2]Vec3{
		{V3(1, 2, 3), V3(4, 5, 6)},
		{V3(-2, 0.5, 7), V3(3, -1, 0.25)},
		{V3(0, 0, 0), V3(1, 1, 1)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		require.Equal(t, a.Cross(b), b.Cross(a).Neg())
		c := a.Cross(b)
		require.InDelta(t, 0, c.Dot(a), eps)
		require.InDelta(t, 0, c.Dot(b), eps)
	}

	require.Equal(t, Vec3Zero(), V3(1, 2, 3).Cross(V3(2, 4, 6)))
	require.Equal(t, V3(-3, 6, -3), V3(1, 2, 3).Cross(V3(4, 5, 6)))
}

func TestVectorIndex(t *testing.T) {
	v := V4(1, 2, 3, 4)
	v[2] = 9
	require.Equal(t, Scalar(9), v[2])

	w := v
	w[0] = 100
	require.Equal(t, Scalar(1), v[0], "copies must not share storage")

	i := 3
	u := V3(1, 2, 3)
	require.Panics(t, func() { _ = u[i] })
	i = 4
	require.Panics(t, func() { v[i] = 0 })
}

func TestVectorHomogeneous(t *testing.T) {
	p := V3(1, 2, 3)
	require.Equal(t, V4(1, 2, 3, 1), Point(p))
	require.Equal(t, V4(1, 2, 3, 0), Direction(p))
	require.Equal(t, p, Point(p).Vec3())
	require.Equal(t, V3(1, 2, 3), V4(2, 4, 6, 2).PerspectiveDivide())
	require.False(t, IsFinite(V4(1, 1, 1, 0).PerspectiveDivide()))
}

func TestApproxEqual(t *testing.T) {
	require.True(t, ApproxEqual(V3(1, 2, 3), V3(1, 2, 3.0000001), eps))
	require.False(t, ApproxEqual(V3(1, 2, 3), V3(1, 2, 3.1), eps))
	nan := Scalar(math.NaN())
	require.False(t, ApproxEqual(V3(nan, 0, 0), V3(nan, 0, 0), eps))
}
