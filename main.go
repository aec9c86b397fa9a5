package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrianap0607/Diorama/pkg/framebuffer"
	"github.com/adrianap0607/Diorama/pkg/renderer"
	"github.com/adrianap0607/Diorama/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	width      int
	height     int
	depth      int
	workers    int
	textureDir string
	yaw        float64
	pitch      float64
	shadow     string
	refract    bool
	output     string
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.sceneName, "scene", "diorama", "Scene: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&opts.width, "width", 800, "Image width in pixels")
	flag.IntVar(&opts.height, "height", 600, "Image height in pixels")
	flag.IntVar(&opts.depth, "depth", renderer.DefaultMaxDepth, "Maximum reflection/transmission depth")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&opts.textureDir, "textures", "", "Directory with block textures (empty = procedural)")
	flag.Float64Var(&opts.yaw, "yaw", 0, "Orbit the camera around its target by this many radians")
	flag.Float64Var(&opts.pitch, "pitch", 0, "Tilt the camera orbit by this many radians")
	flag.StringVar(&opts.shadow, "shadow", "two-level", "Shadow mode: 'two-level' or 'binary'")
	flag.BoolVar(&opts.refract, "refract", false, "Bend transmitted rays by refractive index")
	flag.StringVar(&opts.output, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Diorama Raytracer")
	fmt.Println("Usage: diorama [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

func run(opts options) error {
	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Diorama Raytracer on %s\n", renderer.GetSystemInfo())

	config, err := buildConfig(opts)
	if err != nil {
		return err
	}

	s, err := createScene(opts.sceneName, opts.textureDir)
	if err != nil {
		return err
	}
	if opts.yaw != 0 || opts.pitch != 0 {
		s.Camera.Orbit(float32(opts.yaw), float32(opts.pitch))
	}
	logger.Printf("Using %s scene (%d objects)\n", s.Name, s.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(config, logger)
	canvas := framebuffer.NewCanvas(config.Width, config.Height)

	startTime := time.Now()
	stats := raytracer.Render(s, canvas)
	logger.Printf("Render completed in %v (%d rows, %d workers)\n", time.Since(startTime), stats.Rows, stats.Workers)

	filename := opts.output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", s.Name, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := canvas.SavePNG(filename); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// buildConfig converts command line options to a renderer configuration
func buildConfig(opts options) (renderer.Config, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return renderer.Config{}, fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}

	shadow, err := renderer.ParseShadowMode(opts.shadow)
	if err != nil {
		return renderer.Config{}, err
	}

	shading := renderer.ShadingConfig{Shadow: shadow}
	if opts.refract {
		shading.Transmission = renderer.TransmissionRefract
	}

	return renderer.MergeConfig(renderer.DefaultConfig(), renderer.Config{
		Width:      opts.width,
		Height:     opts.height,
		MaxDepth:   opts.depth,
		NumWorkers: opts.workers,
		Shading:    shading,
	}), nil
}

// createScene builds a built-in scene by name
func createScene(name, textureDir string) (*scene.Scene, error) {
	return scene.Create(name, scene.Options{TextureDir: textureDir})
}
