package renderer

import (
	"time"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/geometry"
	"github.com/adrianap0607/Diorama/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetObjects() []geometry.Object
	GetLight() lights.PointLight
	GetSky() Sky
}

// Raytracer renders whole frames by splitting rows across a worker pool
type Raytracer struct {
	config  Config
	workers int
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(config Config, logger core.Logger) *Raytracer {
	config = MergeConfig(DefaultConfig(), config)
	if logger == nil {
		logger = discardLogger{}
	}

	workers := config.NumWorkers
	if workers <= 0 {
		workers = DefaultWorkerCount()
	}

	return &Raytracer{
		config:  config,
		workers: workers,
		logger:  logger,
	}
}

// Config returns the active configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// SetShading replaces the shading options used by subsequent frames
func (rt *Raytracer) SetShading(shading ShadingConfig) {
	rt.config.Shading = shading
}

// Render traces a frame sized to fb and blits it once every row is done
func (rt *Raytracer) Render(scene Scene, fb Framebuffer) RenderStats {
	width, height := fb.Width(), fb.Height()

	pixels, stats := rt.RenderBuffer(scene, width, height)
	Blit(pixels, width, height, fb)

	return stats
}

// RenderBuffer traces a frame into a row-major linear color buffer
func (rt *Raytracer) RenderBuffer(scene Scene, width, height int) ([]core.Vec3, RenderStats) {
	pixels := make([]core.Vec3, width*height)
	stats := RenderStats{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return pixels, stats
	}

	// Snapshot everything the workers read so the caller may move the camera afterwards
	f := &frame{
		tracer:  NewTracer(rt.config.Shading, scene.GetSky()),
		camera:  *scene.GetCamera(),
		objects: scene.GetObjects(),
		light:   scene.GetLight(),
		width:   width,
		height:  height,
		fov:     rt.config.FOV,
		depth:   rt.config.MaxDepth,
	}

	workers := rt.workers
	if workers > height {
		workers = height
	}

	start := time.Now()
	pool := newWorkerPool(f, workers)
	pool.Start()
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Y: y, Pixels: pixels[y*width : (y+1)*width]})
	}
	pool.Stop()

	stats.Rows = pool.CompletedRows()
	stats.Workers = pool.GetNumWorkers()
	stats.Duration = time.Since(start)
	rt.logger.Printf("Rendered %s\n", stats)

	return pixels, stats
}

// Blit clears fb and copies a row-major color buffer into it
func Blit(pixels []core.Vec3, width, height int, fb Framebuffer) {
	fb.Clear()
	for y := 0; y < height; y++ {
		row := pixels[y*width : (y+1)*width]
		for x, c := range row {
			fb.SetPixel(x, y, ToRGBA(c))
		}
	}
}
