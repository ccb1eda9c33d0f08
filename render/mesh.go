package render

import (
	"math"

	"gltest/glmath"
)

// Cube returns an axis-aligned cube of the given edge length centered on the
// origin, with counter-clockwise outward faces and a distinct color per corner.
func Cube(size float32) Mesh {
	h := size / 2
	corners := [8]glmath.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	verts := make([]Vertex, len(corners))
	for i, p := range corners {
		verts[i] = Vertex{
			Pos: p,
			Color: RGB(
				uint8(0x40+0xBF*(i&1)),
				uint8(0x40+0xBF*((i>>1)&1)),
				uint8(0x40+0xBF*((i>>2)&1)),
			),
		}
	}
	return Mesh{
		Vertices: verts,
		Indices: []uint16{
			0, 3, 2, 0, 2, 1, // -Z
			4, 5, 6, 4, 6, 7, // +Z
			0, 4, 7, 0, 7, 3, // -X
			1, 2, 6, 1, 6, 5, // +X
			0, 1, 5, 0, 5, 4, // -Y
			3, 7, 6, 3, 6, 2, // +Y
		},
	}
}

// Torus returns a torus around the Y axis.
func Torus(major, minor float32, segU, segV int) Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]Vertex, 0, segU*segV)
	indices := make([]uint16, 0, segU*segV*6)

	for u := 0; u < segU; u++ {
		theta := float64(glmath.Tau) * float64(u) / float64(segU)
		st, ct := math.Sincos(theta)
		for v := 0; v < segV; v++ {
			phi := float64(glmath.Tau) * float64(v) / float64(segV)
			sp, cp := math.Sincos(phi)

			r := float64(major) + float64(minor)*cp
			verts = append(verts, Vertex{
				Pos: glmath.V3(float32(r*ct), float32(float64(minor)*sp), float32(r*st)),
				Color: RGB(
					uint8(0x80+0x7F*ct),
					uint8(0x80+0x7F*sp),
					uint8(0x80+0x7F*st),
				),
			})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16((u%segU)*segV + v%segV)
	}

	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)

			indices = append(indices, i0, i1, i2)
			indices = append(indices, i0, i2, i3)
		}
	}

	return Mesh{
		Vertices: verts,
		Indices:  indices,
	}
}
