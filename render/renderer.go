package render

import (
	"context"

	"gltest/glmath"

	"golang.org/x/sync/errgroup"
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations. A Renderer is not safe for
// concurrent use; it parallelizes a single Render call internally.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	workers  int
	depthBuf []float32
	tris     []screenTri
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
		workers:    1,
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// SetWorkers sets how many horizontal bands are rasterized in parallel.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

func (r *Renderer) Workers() int { return r.workers }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// screenTri is a triangle after projection, viewport mapping and shading.
type screenTri struct {
	x0, y0, x1, y1, x2, y2 int
	z0, z1, z2             float32
	c0, c1, c2             Color
	flat                   Color
}

// Render renders a scene into the target. It returns ctx.Err() if the context is
// cancelled before all bands are drawn.
func (r *Renderer) Render(ctx context.Context, t Target, s *Scene) error {
	if r == nil || t == nil || s == nil {
		return nil
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	view := s.Camera.View()
	proj := s.Camera.Projection(float32(w) / float32(h))
	viewProj := proj.Mul(view)

	r.tris = r.tris[:0]
	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.projectMesh(w, h, viewProj, *m, s.Light)
	})

	workers := r.workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		r.rasterBand(ctx, t, w, 0, h)
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	band := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += band {
		y0 := y0
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		g.Go(func() error {
			r.rasterBand(gctx, t, w, y0, y1)
			return gctx.Err()
		})
	}
	return g.Wait()
}

func (r *Renderer) projectMesh(w, h int, viewProj glmath.Mat4, m Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	if m.Transform == (glmath.Mat4{}) {
		m.Transform = glmath.Mat4Identity()
	}

	mvp := viewProj.Mul(m.Transform)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		p0 := mvp.MulVec(glmath.Point(v0.Pos))
		p1 := mvp.MulVec(glmath.Point(v1.Pos))
		p2 := mvp.MulVec(glmath.Point(v2.Pos))

		// Trivial clip: drop the triangle if any vertex is behind the eye.
		if p0[3] <= 0 || p1[3] <= 0 || p2[3] <= 0 {
			continue
		}

		ndc0 := p0.PerspectiveDivide()
		ndc1 := p1.PerspectiveDivide()
		ndc2 := p2.PerspectiveDivide()
		if !inDepthRange(ndc0) || !inDepthRange(ndc1) || !inDepthRange(ndc2) {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		flat := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			n := triangleNormal(m.Transform, v0.Pos, v1.Pos, v2.Pos)
			flat = flat.MulScalar(lightIntensity(light, n))
		}

		r.tris = append(r.tris, screenTri{
			x0: x0, y0: y0, x1: x1, y1: y1, x2: x2, y2: y2,
			z0: ndc0[2], z1: ndc1[2], z2: ndc2[2],
			c0: v0.Color, c1: v1.Color, c2: v2.Color,
			flat: flat,
		})
	}
}

func (r *Renderer) rasterBand(ctx context.Context, t Target, w, yMin, yMax int) {
	for i := range r.tris {
		if i%64 == 0 && ctx.Err() != nil {
			return
		}
		tri := &r.tris[i]
		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, yMin, yMax, tri.x0, tri.y0, tri.x1, tri.y1, tri.flat)
			r.drawLine(t, yMin, yMax, tri.x1, tri.y1, tri.x2, tri.y2, tri.flat)
			r.drawLine(t, yMin, yMax, tri.x2, tri.y2, tri.x0, tri.y0, tri.flat)
		case RenderSolidVertexColor:
			r.fillTriangle(t, w, yMin, yMax, tri, true)
		default:
			r.fillTriangle(t, w, yMin, yMax, tri, false)
		}
	}
}

func inDepthRange(p glmath.Vec3) bool {
	return glmath.IsFinite(p) && p[2] >= -1 && p[2] <= 1
}

func ndcToScreen(p glmath.Vec3, w, h int) (x, y int) {
	sx := (p[0]*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p[1]*0.5 + 0.5)) * float32(h-1)
	return roundInt(sx), roundInt(sy)
}

func roundInt(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// triangleNormal returns the world-space face normal of a model-space triangle.
func triangleNormal(model glmath.Mat4, a, b, c glmath.Vec3) glmath.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	n = model.TransformDirection(n)
	if n.LengthSquared() == 0 {
		return n
	}
	return n.Normalized()
}

func lightIntensity(l Light, n glmath.Vec3) float32 {
	amb := clampF32(l.Ambient, 0, 1)
	dir := clampF32(l.DirAmount, 0, 1)
	if l.Dir.LengthSquared() == 0 || n.LengthSquared() == 0 {
		return amb
	}
	// Dir points from the light into the scene.
	d := n.Dot(l.Dir.Normalized().Neg())
	if d < 0 {
		d = 0
	}
	return clampF32(amb+d*dir, 0, 1)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// drawLine draws a Bresenham line, plotting only rows in [yMin, yMax).
func (r *Renderer) drawLine(t Target, yMin, yMax, x0, y0, x1, y1 int, c Color) {
	if (y0 < yMin && y1 < yMin) || (y0 >= yMax && y1 >= yMax) {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if y0 >= yMin && y0 < yMax {
			t.SetPixel(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle rasterizes tri over rows [yMin, yMax) with barycentric depth and,
// when smooth is set, barycentric vertex colors.
func (r *Renderer) fillTriangle(t Target, w, yMin, yMax int, tri *screenTri, smooth bool) {
	x0, y0, x1, y1, x2, y2 := tri.x0, tri.y0, tri.x1, tri.y1, tri.x2, tri.y2
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < yMin {
		minY = yMin
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= yMax {
		maxY = yMax - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			// Accept either winding.
			if area > 0 && (w0|w1|w2) < 0 {
				continue
			}
			if area < 0 && (w0 > 0 || w1 > 0 || w2 > 0) {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*tri.z0 + a1*tri.z1 + a2*tri.z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			if !smooth {
				t.SetPixel(x, y, tri.flat)
				continue
			}
			t.SetPixel(x, y, Color{
				R: blend(a0, a1, a2, tri.c0.R, tri.c1.R, tri.c2.R),
				G: blend(a0, a1, a2, tri.c0.G, tri.c1.G, tri.c2.G),
				B: blend(a0, a1, a2, tri.c0.B, tri.c1.B, tri.c2.B),
				A: 0xFF,
			})
		}
	}
}

func blend(a0, a1, a2 float32, c0, c1, c2 uint8) uint8 {
	return uint8(clampF32(a0*float32(c0)+a1*float32(c1)+a2*float32(c2), 0, 255))
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
