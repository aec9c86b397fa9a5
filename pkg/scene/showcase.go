package scene

import (
	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/lights"
	"github.com/adrianap0607/Diorama/pkg/material"
	"github.com/adrianap0607/Diorama/pkg/renderer"
)

// NewShowcaseScene creates one box per material model on a ground plane
func NewShowcaseScene() *Scene {
	camera := renderer.NewCamera(
		core.NewVec3(0, 3, 9),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	light := lights.NewWhiteLight(core.NewVec3(-4, 6, 4), 1.3)

	s := New("showcase", camera, light, NewTextureRegistry(""))

	ground := material.NewLambertian(core.NewVec3(0.22, 0.68, 0.18))
	redLambert := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
	mirror := material.NewMirror(core.NewVec3(0.85, 0.85, 0.9), 0.6, 50)
	glass := material.NewGlass(core.NewVec3(0.7, 0.85, 1.0), 0.45, 1.5)
	glossy := material.New(core.NewVec3(0.95, 0.75, 0.2), 80, [4]float32{0.7, 0.6, 0.05, 0}, 0, 1)

	s.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground)

	s.AddBox(core.NewVec3(-3.5, -1, -0.5), core.NewVec3(-2, 0.5, 1), redLambert)
	s.AddBox(core.NewVec3(-1.5, -1, -2), core.NewVec3(0.5, 1.5, -0.5), mirror)
	s.AddBox(core.NewVec3(0.2, -1, 0.5), core.NewVec3(1.6, 0.4, 1.9), glass)
	s.AddBox(core.NewVec3(2, -1, -1), core.NewVec3(3.4, 0.8, 0.4), glossy)

	return s
}
