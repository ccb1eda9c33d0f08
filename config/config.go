// Package config describes a viewer scene and loads it from YAML.
//
// Load starts from Default, so a file only needs the keys it changes:
//
//	camera:
//	  eye: [0, 1, 4]
//	  fov_deg: 45
//	mesh:
//	  kind: torus
//	render:
//	  mode: wireframe
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gltest/glmath"
	"gltest/render"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid scene")

// Scene is the complete viewer configuration.
type Scene struct {
	Camera Camera `yaml:"camera"`
	Mesh   Mesh   `yaml:"mesh"`
	Model  Model  `yaml:"model"`
	Render Render `yaml:"render"`
}

// Camera places the viewer. Projection is "perspective" or "ortho".
type Camera struct {
	Projection string      `yaml:"projection"`
	Eye        glmath.Vec3 `yaml:"eye"`
	Center     glmath.Vec3 `yaml:"center"`
	Up         glmath.Vec3 `yaml:"up"`
	FOVDeg     float32     `yaml:"fov_deg"`
	OrthoSize  float32     `yaml:"ortho_size"`
	Near       float32     `yaml:"near"`
	Far        float32     `yaml:"far"`
}

// Mesh selects the displayed geometry. Kind is "cube" or "torus".
type Mesh struct {
	Kind  string  `yaml:"kind"`
	Size  float32 `yaml:"size"`
	Major float32 `yaml:"major"`
	Minor float32 `yaml:"minor"`
	SegU  int     `yaml:"seg_u"`
	SegV  int     `yaml:"seg_v"`
}

// Model is the object transform. Spin rates are radians per frame.
type Model struct {
	Scale     glmath.Vec3 `yaml:"scale"`
	Translate glmath.Vec3 `yaml:"translate"`
	SpinX     float32     `yaml:"spin_x"`
	SpinY     float32     `yaml:"spin_y"`
}

// Render configures the rasterizer and framebuffer.
type Render struct {
	Mode        string   `yaml:"mode"`
	Clear       [3]uint8 `yaml:"clear"`
	Depth       bool     `yaml:"depth"`
	Workers     int      `yaml:"workers"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	DigestEvery int      `yaml:"digest_every"`
}

// Default returns a spinning cube seen from +Z.
func Default() Scene {
	return Scene{
		Camera: Camera{
			Projection: "perspective",
			Eye:        glmath.V3(0, 1, 4),
			Center:     glmath.V3(0, 0, 0),
			Up:         glmath.V3(0, 1, 0),
			FOVDeg:     60,
			OrthoSize:  1.5,
			Near:       0.1,
			Far:        100,
		},
		Mesh: Mesh{
			Kind:  "cube",
			Size:  1.5,
			Major: 1,
			Minor: 0.35,
			SegU:  24,
			SegV:  12,
		},
		Model: Model{
			Scale: glmath.V3(1, 1, 1),
			SpinX: 0.01,
			SpinY: 0.02,
		},
		Render: Render{
			Mode:        render.RenderSolidVertexColor.String(),
			Clear:       [3]uint8{0x10, 0x10, 0x18},
			Depth:       true,
			Workers:     1,
			Width:       320,
			Height:      240,
			DigestEvery: 60,
		},
	}
}

// Load decodes YAML from r on top of Default and validates the result.
// Unknown keys are rejected. Empty input yields Default.
func Load(r io.Reader) (Scene, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// LoadFile is Load for a file path.
func LoadFile(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate reports values that would make the scene unrenderable, including
// the cases where glmath would panic.
func (s Scene) Validate() error {
	c := s.Camera
	if !glmath.IsFinite(c.Eye) || !glmath.IsFinite(c.Center) || !glmath.IsFinite(c.Up) {
		return invalid("camera eye, center and up must be finite")
	}
	if !finite(c.FOVDeg) || !finite(c.OrthoSize) || !finite(c.Near) || !finite(c.Far) {
		return invalid("camera fov_deg, ortho_size, near and far must be finite")
	}
	switch c.Projection {
	case "perspective":
		if c.FOVDeg <= 0 || c.FOVDeg >= 180 {
			return invalid("camera fov_deg must be in (0, 180), got %v", c.FOVDeg)
		}
		// A non-positive near plane collapses every depth to the far plane.
		if c.Near <= 0 {
			return invalid("camera near must be positive for perspective, got %v", c.Near)
		}
		if c.Far <= c.Near {
			return invalid("camera far must be greater than near, got near=%v far=%v", c.Near, c.Far)
		}
	case "ortho":
		if c.OrthoSize <= 0 {
			return invalid("camera ortho_size must be positive, got %v", c.OrthoSize)
		}
		if c.Near == c.Far {
			return invalid("camera near and far must differ")
		}
	default:
		return invalid("unknown camera projection %q", c.Projection)
	}
	fwd := c.Center.Sub(c.Eye)
	if fwd.LengthSquared() == 0 {
		return invalid("camera eye and center must differ")
	}
	if fwd.Cross(c.Up).LengthSquared() == 0 {
		return invalid("camera up must not be parallel to the view direction")
	}

	m := s.Mesh
	if !finite(m.Size) || !finite(m.Major) || !finite(m.Minor) {
		return invalid("mesh dimensions must be finite")
	}
	switch m.Kind {
	case "cube":
		if m.Size <= 0 {
			return invalid("mesh size must be positive, got %v", m.Size)
		}
	case "torus":
		if m.Major <= 0 || m.Minor <= 0 {
			return invalid("torus radii must be positive")
		}
		if m.SegU < 3 || m.SegV < 3 {
			return invalid("torus needs at least 3 segments per ring")
		}
		if m.SegU*m.SegV > 1<<16 {
			return invalid("torus has too many vertices for 16-bit indices")
		}
	default:
		return invalid("unknown mesh kind %q", m.Kind)
	}

	if !glmath.IsFinite(s.Model.Scale) || !glmath.IsFinite(s.Model.Translate) {
		return invalid("model transform must be finite")
	}
	if !finite(s.Model.SpinX) || !finite(s.Model.SpinY) {
		return invalid("model spin rates must be finite")
	}

	r := s.Render
	if _, ok := render.ParseRenderMode(r.Mode); !ok {
		return invalid("unknown render mode %q", r.Mode)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return invalid("render size must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.Workers < 0 {
		return invalid("render workers must not be negative")
	}
	if r.DigestEvery < 0 {
		return invalid("render digest_every must not be negative")
	}
	return nil
}

// FOVYRad returns the vertical field of view in radians.
func (c Camera) FOVYRad() float32 {
	return c.FOVDeg * glmath.Tau / 360
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
