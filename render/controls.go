package render

import (
	"math"

	"gltest/glmath"
)

// maxPitch keeps the orbit away from the poles, where the view direction would
// line up with the camera's up vector and Mat4LookAt degenerates.
const maxPitch = 1.5

// OrbitController provides basic orbit/zoom interactions for a camera.
//
// Yaw turns around Up and Pitch tilts toward it. A zero Up means +Y.
// It does not depend on any input system.
type OrbitController struct {
	Target glmath.Vec3
	Up     glmath.Vec3
	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
}

// Apply places cam on the orbit sphere, looking at Target.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	r = c.clampRadius(r)

	m := glmath.Chain(
		c.basis(),
		glmath.Mat4RotateY(c.Yaw),
		glmath.Mat4RotateX(-clampF32(c.Pitch, -maxPitch, maxPitch)),
	)
	p := m.TransformDirection(glmath.V3(0, 0, r))

	cam.Eye = c.Target.Add(p)
	cam.Center = c.Target
	cam.Up = c.up()
}

// PlaceAt sets Radius, Yaw and Pitch so that Apply puts the eye at eye.
func (c *OrbitController) PlaceAt(eye glmath.Vec3) {
	d := c.basis().Transpose().TransformDirection(eye.Sub(c.Target))
	r := d.Length()
	c.Radius = r
	c.Yaw, c.Pitch = 0, 0
	if r == 0 {
		return
	}
	c.Yaw = float32(math.Atan2(float64(d[0]), float64(d[2])))
	c.Pitch = clampF32(float32(math.Asin(float64(clampF32(d[1]/r, -1, 1)))), -maxPitch, maxPitch)
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch = clampF32(c.Pitch+deltaPitch, -maxPitch, maxPitch)
}

func (c *OrbitController) Zoom(delta float32) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r float32) float32 {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

func (c *OrbitController) up() glmath.Vec3 {
	if c.Up.LengthSquared() == 0 {
		return glmath.V3(0, 1, 0)
	}
	return c.Up.Normalized()
}

// basis maps the Y-up orbit frame onto the frame whose Y axis is Up.
// It is the identity for +Y.
func (c *OrbitController) basis() glmath.Mat4 {
	y := c.up()
	ref := glmath.V3(0, 0, 1)
	if d := y.Dot(ref); d > 0.9 || d < -0.9 {
		ref = glmath.V3(1, 0, 0)
	}
	x := y.Cross(ref).Normalized()
	z := x.Cross(y)
	return glmath.Mat4{
		{x[0], x[1], x[2], 0},
		{y[0], y[1], y[2], 0},
		{z[0], z[1], z[2], 0},
		{0, 0, 0, 1},
	}
}
