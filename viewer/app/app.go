// Package app is the interactive ebiten front end for the raytracer.
package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/adrianap0607/Diorama/pkg/framebuffer"
	"github.com/adrianap0607/Diorama/pkg/renderer"
	"github.com/adrianap0607/Diorama/pkg/scene"
)

// Game implements ebiten.Game around one scene and a raytracer
type Game struct {
	scene    *scene.Scene
	rt       *renderer.Raytracer
	controls renderer.ControlConfig

	pixels *framebuffer.Pixels
	frame  *ebiten.Image
	stats  renderer.RenderStats

	cursorX, cursorY int
	width, height    int
}

// NewGame creates a game rendering s at the raytracer's configured size
func NewGame(s *scene.Scene, rt *renderer.Raytracer, controls renderer.ControlConfig) *Game {
	config := rt.Config()
	g := &Game{
		scene:    s,
		rt:       rt,
		controls: controls,
		width:    config.Width,
		height:   config.Height,
		pixels:   framebuffer.NewPixels(config.Width, config.Height),
		frame:    ebiten.NewImage(config.Width, config.Height),
	}
	g.cursorX, g.cursorY = ebiten.CursorPosition()
	return g
}

// Update polls input, moves the camera and toggles shading modes
func (g *Game) Update() error {
	renderer.ApplyInput(g.scene.GetCamera(), g.pollInput(), g.controls)

	shading := g.rt.Config().Shading
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if shading.Shadow == renderer.ShadowBinary {
			shading.Shadow = renderer.ShadowTwoLevel
		} else {
			shading.Shadow = renderer.ShadowBinary
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if shading.Transmission == renderer.TransmissionRefract {
			shading.Transmission = renderer.TransmissionAlpha
		} else {
			shading.Transmission = renderer.TransmissionRefract
		}
		changed = true
	}
	if changed {
		g.rt.SetShading(shading)
	}
	return nil
}

// pollInput collects one frame of keyboard and mouse state
func (g *Game) pollInput() renderer.Input {
	x, y := ebiten.CursorPosition()
	dx, dy := x-g.cursorX, y-g.cursorY
	g.cursorX, g.cursorY = x, y

	_, wheel := ebiten.Wheel()

	return renderer.Input{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		OrbitDrag: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PanDrag:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		MouseDX:   float32(dx),
		MouseDY:   float32(dy),
		Wheel:     float32(wheel),
	}
}

// Draw traces a frame and presents it with a stats overlay
func (g *Game) Draw(screen *ebiten.Image) {
	g.stats = g.rt.Render(g.scene, g.pixels)
	g.frame.WritePixels(g.pixels.Pix)
	screen.DrawImage(g.frame, nil)

	shading := g.rt.Config().Shading
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f\nFrame: %s\nWorkers: %d\nShadows: %s [B]\nTransmission: %s [R]",
		ebiten.ActualFPS(), g.stats.Duration.Round(100*time.Microsecond), g.stats.Workers,
		shading.Shadow, shading.Transmission))
}

// Layout keeps the logical screen at the render size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
