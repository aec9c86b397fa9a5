package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/adrianap0607/Diorama/pkg/renderer"
	"github.com/adrianap0607/Diorama/pkg/scene"
	"github.com/adrianap0607/Diorama/viewer/app"
)

func main() {
	sceneName := flag.String("scene", "diorama", "Scene: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 650, "Window width in pixels")
	height := flag.Int("height", 450, "Window height in pixels")
	depth := flag.Int("depth", renderer.DefaultMaxDepth, "Maximum reflection/transmission depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	textureDir := flag.String("textures", "", "Directory with block textures (empty = procedural)")
	flag.Parse()

	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Diorama viewer on %s\n", renderer.GetSystemInfo())

	s, err := scene.Create(*sceneName, scene.Options{TextureDir: *textureDir})
	if err != nil {
		log.Fatal(err)
	}

	rt := renderer.NewRaytracer(renderer.Config{
		Width:      *width,
		Height:     *height,
		MaxDepth:   *depth,
		NumWorkers: *workers,
	}, nil)
	game := app.NewGame(s, rt, renderer.DefaultControlConfig())

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Diorama - " + s.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
