package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Width    int           // Image width in pixels
	Height   int           // Image height in pixels
	Rows     int           // Row tasks completed
	Workers  int           // Workers that shared the rows
	Duration time.Duration // Wall time from first task to barrier
}

// Pixels returns the number of pixels rendered
func (s RenderStats) Pixels() int {
	return s.Width * s.Height
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d rows on %d workers in %v", s.Width, s.Height, s.Rows, s.Workers, s.Duration.Round(time.Millisecond))
}
