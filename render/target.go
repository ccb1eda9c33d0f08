package render

import (
	"image"
	"image/color"

	"github.com/cespare/xxhash/v2"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates. SetPixel may be called
// concurrently for distinct rows.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidFlat:
		return "flat"
	case RenderSolidVertexColor:
		return "vertex-color"
	default:
		return "unknown"
	}
}

// ParseRenderMode is the inverse of RenderMode.String.
func ParseRenderMode(s string) (RenderMode, bool) {
	for m := RenderWireframe; m <= RenderSolidVertexColor; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// ImageTarget renders into an *image.RGBA.
type ImageTarget struct {
	Img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := t.Img.PixOffset(b.Min.X, y)
		row := t.Img.Pix[off : off+b.Dx()*4]
		for i := 0; i+3 < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

func (t *ImageTarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	off := t.Img.PixOffset(b.Min.X+x, b.Min.Y+y)
	p := t.Img.Pix[off : off+4 : off+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// At returns the pixel at (x,y) relative to the image origin.
func (t *ImageTarget) At(x, y int) Color {
	b := t.Img.Bounds()
	c := t.Img.RGBAAt(b.Min.X+x, b.Min.Y+y)
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Digest returns a 64-bit hash of the visible pixels of img, row by row.
//
// Two renders of the same scene with the same settings produce the same digest.
func Digest(img *image.RGBA) uint64 {
	if img == nil {
		return 0
	}
	d := xxhash.New()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		_, _ = d.Write(img.Pix[off : off+b.Dx()*4])
	}
	return d.Sum64()
}

// HUDFont is the bitmap font used by DrawText.
var HUDFont tinyfont.Fonter = &tinyfont.TomThumb

// DrawText writes a single line of text with its top-left corner at (x,y).
func DrawText(t Target, x, y int, s string, c Color) {
	if t == nil {
		return
	}
	tinyfont.WriteLine(&displayer{t: t}, HUDFont, int16(x), int16(y)+int16(HUDFont.GetYAdvance()), s, c.RGBA8())
}

// TextWidth returns the pixel width of s in HUDFont.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(HUDFont, s)
	return int(outbox)
}

var _ drivers.Displayer = (*displayer)(nil)

// displayer lets tinyfont draw into a Target.
type displayer struct {
	t Target
}

func (d *displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d *displayer) Display() error { return nil }
