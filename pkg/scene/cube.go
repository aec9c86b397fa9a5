package scene

import (
	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/lights"
	"github.com/adrianap0607/Diorama/pkg/material"
	"github.com/adrianap0607/Diorama/pkg/renderer"
)

// NewCubeScene creates a red diffuse box centered at the origin
func NewCubeScene() *Scene {
	camera := renderer.NewCamera(
		core.NewVec3(2.2, 1.6, 5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	light := lights.NewWhiteLight(core.NewVec3(-3, 5, 3), 1.2)

	s := New("cube", camera, light, NewTextureRegistry(""))

	redLambert := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
	s.AddBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), redLambert)

	return s
}
