package render

import "gltest/glmath"

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   float32 // 0..1
	Dir       glmath.Vec3
	DirAmount float32 // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

func (t CameraType) String() string {
	if t == CameraOrtho {
		return "ortho"
	}
	return "perspective"
}

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Eye    glmath.Vec3
	Center glmath.Vec3
	Up     glmath.Vec3

	// Perspective.
	FOVYRad float32

	// Orthographic (half-height).
	OrthoSize float32

	Near float32
	Far  float32
}

// View returns the camera view matrix. A zero Up means +Y.
func (c Camera) View() glmath.Mat4 {
	up := c.Up
	if up == (glmath.Vec3{}) {
		up = glmath.V3(0, 1, 0)
	}
	return glmath.Mat4LookAt(c.Eye, c.Center, up)
}

// Projection returns the projection matrix for a target aspect.
//
// It panics like glmath.Mat4Perspective when aspect is zero or Near equals Far.
func (c Camera) Projection(aspect float32) glmath.Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		right := size * aspect
		return glmath.Mat4Ortho(-right, right, -size, size, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = 1
		}
		return glmath.Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos   glmath.Vec3
	Color Color
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform glmath.Mat4
	Material  Material
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// NewScene allocates a scene with a fixed mesh capacity.
func NewScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Eye:       glmath.V3(0, 0, 3),
			Center:    glmath.V3(0, 0, 0),
			Up:        glmath.V3(0, 1, 0),
			FOVYRad:   1.0,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       glmath.V3(1, 1, 1).Normalized(),
			DirAmount: 0.75,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (glmath.Mat4{}) {
			m.Transform = glmath.Mat4Identity()
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.valid(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform replaces the model matrix of a mesh.
func (s *Scene) UpdateMeshTransform(id int, m glmath.Mat4) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Transform = m
}

// MeshTransform returns the model matrix of a mesh.
func (s *Scene) MeshTransform(id int) (glmath.Mat4, bool) {
	if !s.valid(id) {
		return glmath.Mat4{}, false
	}
	return s.meshes[id].Transform, true
}

func (s *Scene) valid(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
