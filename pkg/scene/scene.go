package scene

import (
	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/geometry"
	"github.com/adrianap0607/Diorama/pkg/lights"
	"github.com/adrianap0607/Diorama/pkg/material"
	"github.com/adrianap0607/Diorama/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// Objects are scanned in insertion order.
type Scene struct {
	Name     string
	Camera   *renderer.Camera
	Objects  []geometry.Object // Objects in the scene
	Light    lights.PointLight // The single light
	Sky      renderer.Sky      // Background and ambient gradient
	Textures *TextureRegistry  // Textures shared by the textured boxes
}

// New creates an empty scene with the default sky
func New(name string, camera *renderer.Camera, light lights.PointLight, textures *TextureRegistry) *Scene {
	return &Scene{
		Name:     name,
		Camera:   camera,
		Objects:  make([]geometry.Object, 0),
		Light:    light,
		Sky:      renderer.DefaultSky(),
		Textures: textures,
	}
}

// AddBox appends a solid axis-aligned box
func (s *Scene) AddBox(min, max core.Vec3, mat material.Material) {
	s.Objects = append(s.Objects, geometry.BoxObject(geometry.NewBox(min, max, mat)))
}

// AddTexturedBox appends a textured axis-aligned box
func (s *Scene) AddTexturedBox(min, max core.Vec3, mat material.Material, texture *material.Texture) {
	s.Objects = append(s.Objects, geometry.TexturedBoxObject(geometry.NewTexturedBox(min, max, mat, texture)))
}

// AddPlane appends an infinite plane
func (s *Scene) AddPlane(point, normal core.Vec3, mat material.Material) {
	s.Objects = append(s.Objects, geometry.PlaneObject(geometry.NewPlane(point, normal, mat)))
}

func (s *Scene) GetCamera() *renderer.Camera   { return s.Camera }
func (s *Scene) GetObjects() []geometry.Object { return s.Objects }
func (s *Scene) GetLight() lights.PointLight   { return s.Light }
func (s *Scene) GetSky() renderer.Sky          { return s.Sky }

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}

// CountByKind returns how many objects of each kind the scene holds
func (s *Scene) CountByKind() map[geometry.Kind]int {
	counts := make(map[geometry.Kind]int)
	for _, o := range s.Objects {
		counts[o.Kind]++
	}
	return counts
}
