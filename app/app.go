// Package app is the interactive viewer: it builds a render.Scene from a
// config.Scene and returns a step function for the hal runners.
package app

import (
	"context"
	"fmt"

	"gltest/config"
	"gltest/glmath"
	"gltest/hal"
	"gltest/render"
)

const (
	orbitStep = 0.1
	zoomStep  = 0.25
)

type viewer struct {
	h   hal.HAL
	log hal.Logger
	fb  hal.Framebuffer
	cfg config.Scene

	target   *render.ImageTarget
	renderer *render.Renderer
	scene    *render.Scene
	orbit    render.OrbitController
	meshID   int

	mode   render.RenderMode
	angleX float32
	angleY float32
	paused bool
	frame  uint64
}

// New builds the viewer for cfg and returns its step function. Each step
// drains pending key events, advances the model spin, renders into the HAL
// framebuffer and presents it. The step returns hal.ErrQuit on Escape or 'q'.
func New(h hal.HAL, cfg config.Scene) (func() error, error) {
	v, err := newViewer(h, cfg)
	if err != nil {
		return nil, err
	}
	return v.guardedStep, nil
}

func newViewer(h hal.HAL, cfg config.Scene) (*viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	fb := h.Display().Framebuffer()
	mode, _ := render.ParseRenderMode(cfg.Render.Mode)

	v := &viewer{
		h:      h,
		log:    h.Logger(),
		fb:     fb,
		cfg:    cfg,
		target: &render.ImageTarget{Img: fb.Image()},
		scene:  render.NewScene(1),
		mode:   mode,
	}

	v.renderer = render.NewRenderer(fb.Width(), fb.Height(), cfg.Render.Depth)
	v.renderer.SetRenderMode(mode)
	v.renderer.SetWorkers(cfg.Render.Workers)
	c := cfg.Render.Clear
	v.renderer.ClearColor = render.RGB(c[0], c[1], c[2])

	v.scene.Camera = cameraFromConfig(cfg.Camera)
	v.orbit = orbitFromCamera(cfg.Camera)

	var mesh render.Mesh
	switch cfg.Mesh.Kind {
	case "torus":
		mesh = render.Torus(cfg.Mesh.Major, cfg.Mesh.Minor, cfg.Mesh.SegU, cfg.Mesh.SegV)
	default:
		mesh = render.Cube(cfg.Mesh.Size)
	}
	v.meshID = v.scene.AddMesh(mesh)
	v.scene.UpdateMeshTransform(v.meshID, v.modelMatrix())

	if v.log != nil {
		v.log.Infow("viewer ready",
			"mesh", cfg.Mesh.Kind,
			"mode", mode.String(),
			"projection", cfg.Camera.Projection,
			"size", fmt.Sprintf("%dx%d", fb.Width(), fb.Height()),
			"workers", v.renderer.Workers(),
		)
	}
	return v, nil
}

func (v *viewer) step() error {
	if err := v.handleInput(); err != nil {
		return err
	}

	if !v.paused {
		v.angleX += v.cfg.Model.SpinX
		v.angleY += v.cfg.Model.SpinY
	}
	v.scene.UpdateMeshTransform(v.meshID, v.modelMatrix())

	if err := v.renderer.Render(context.Background(), v.target, v.scene); err != nil {
		return err
	}
	v.drawHUD()
	if err := v.fb.Present(); err != nil {
		return err
	}

	v.frame++
	if n := uint64(v.cfg.Render.DigestEvery); n > 0 && v.frame%n == 0 && v.log != nil {
		v.log.Infow("frame",
			"frame", v.frame,
			"digest", fmt.Sprintf("%016x", render.Digest(v.target.Img)),
			"mode", v.mode.String(),
		)
	}
	return nil
}

// modelMatrix composes Translate · RotateY · RotateX · Scale.
func (v *viewer) modelMatrix() glmath.Mat4 {
	m := v.cfg.Model
	return glmath.Chain(
		glmath.Mat4Translate(m.Translate[0], m.Translate[1], m.Translate[2]),
		glmath.Mat4RotateY(v.angleY),
		glmath.Mat4RotateX(v.angleX),
		glmath.Mat4Scale(m.Scale[0], m.Scale[1], m.Scale[2]),
	)
}

func (v *viewer) handleInput() error {
	in := v.h.Input()
	if in == nil || in.Keyboard() == nil {
		return nil
	}
	events := in.Keyboard().Events()
	for {
		select {
		case ev := <-events:
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyLeft:
		v.orbitBy(-orbitStep, 0)
	case hal.KeyRight:
		v.orbitBy(orbitStep, 0)
	case hal.KeyUp:
		v.orbitBy(0, orbitStep)
	case hal.KeyDown:
		v.orbitBy(0, -orbitStep)
	}

	switch ev.Rune {
	case 'q':
		return hal.ErrQuit
	case 'w':
		v.toggleWireframe()
	case 'p', ' ':
		v.paused = !v.paused
	case '+', '=':
		v.zoom(-zoomStep)
	case '-':
		v.zoom(zoomStep)
	}
	return nil
}

func (v *viewer) orbitBy(yaw, pitch float32) {
	v.orbit.Rotate(yaw, pitch)
	v.orbit.Apply(&v.scene.Camera)
}

func (v *viewer) zoom(delta float32) {
	if v.scene.Camera.Type == render.CameraOrtho {
		size := v.scene.Camera.OrthoSize + delta
		if size < zoomStep {
			size = zoomStep
		}
		v.scene.Camera.OrthoSize = size
		return
	}
	v.orbit.Zoom(delta)
	v.orbit.Apply(&v.scene.Camera)
}

func (v *viewer) toggleWireframe() {
	configured, _ := render.ParseRenderMode(v.cfg.Render.Mode)
	switch {
	case v.mode != render.RenderWireframe:
		v.mode = render.RenderWireframe
	case configured != render.RenderWireframe:
		v.mode = configured
	default:
		v.mode = render.RenderSolidFlat
	}
	v.renderer.SetRenderMode(v.mode)
}

func (v *viewer) drawHUD() {
	line := fmt.Sprintf("%s  f%d", v.mode, v.frame)
	if v.paused {
		line += "  paused"
	}
	render.DrawText(v.target, 2, 1, line, render.RGB(0xE0, 0xE0, 0xE0))
}

func cameraFromConfig(c config.Camera) render.Camera {
	cam := render.Camera{
		Type:      render.CameraPerspective,
		Eye:       c.Eye,
		Center:    c.Center,
		Up:        c.Up,
		FOVYRad:   c.FOVYRad(),
		OrthoSize: c.OrthoSize,
		Near:      c.Near,
		Far:       c.Far,
	}
	if c.Projection == "ortho" {
		cam.Type = render.CameraOrtho
	}
	return cam
}

// orbitFromCamera recovers the orbit that places the eye where c puts it,
// turning around the configured up vector.
func orbitFromCamera(c config.Camera) render.OrbitController {
	o := render.OrbitController{
		Target:    c.Center,
		Up:        c.Up,
		MinRadius: zoomStep,
	}
	if c.Far > zoomStep {
		o.MaxRadius = c.Far
	}
	o.PlaceAt(c.Eye)
	return o
}
