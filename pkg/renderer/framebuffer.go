package renderer

import "image/color"

// Framebuffer is the presentation target a frame is blitted into
type Framebuffer interface {
	Width() int
	Height() int
	Clear()
	SetPixel(x, y int, c color.RGBA)
}
