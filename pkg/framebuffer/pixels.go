package framebuffer

import "image/color"

// Pixels is a framebuffer over a raw RGBA byte slice, laid out the way
// ebiten's WritePixels expects: 4 bytes per pixel, rows top to bottom.
type Pixels struct {
	width  int
	height int
	Pix    []byte
}

// NewPixels creates a black pixel buffer of the given size
func NewPixels(width, height int) *Pixels {
	p := &Pixels{
		width:  width,
		height: height,
		Pix:    make([]byte, 4*width*height),
	}
	p.Clear()
	return p
}

func (p *Pixels) Width() int  { return p.width }
func (p *Pixels) Height() int { return p.height }

// Clear sets every pixel to opaque black
func (p *Pixels) Clear() {
	for i := 0; i < len(p.Pix); i += 4 {
		p.Pix[i] = 0
		p.Pix[i+1] = 0
		p.Pix[i+2] = 0
		p.Pix[i+3] = 255
	}
}

// SetPixel writes one pixel; coordinates outside the buffer are ignored
func (p *Pixels) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	i := 4 * (y*p.width + x)
	p.Pix[i] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
	p.Pix[i+3] = c.A
}

// At returns the pixel at (x, y)
func (p *Pixels) At(x, y int) color.RGBA {
	i := 4 * (y*p.width + x)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

// Resize reallocates the buffer when the size changes
func (p *Pixels) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.Pix = make([]byte, 4*width*height)
	p.Clear()
}
