// Package framebuffer provides presentation targets for rendered frames.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Canvas is a framebuffer backed by a gg drawing context.
// It is written by a single goroutine after the render barrier.
type Canvas struct {
	ctx *gg.Context
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{ctx: gg.NewContext(width, height)}
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.ctx.Width() }
func (c *Canvas) Height() int { return c.ctx.Height() }

// Clear fills the canvas with opaque black
func (c *Canvas) Clear() {
	c.ctx.SetColor(color.Black)
	c.ctx.Clear()
}

// SetPixel writes one pixel
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	c.ctx.SetColor(col)
	c.ctx.SetPixel(x, y)
}

// Image returns the canvas contents
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}
