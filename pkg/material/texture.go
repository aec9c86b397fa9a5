package material

import (
	"github.com/chewxy/math32"

	"github.com/adrianap0607/Diorama/pkg/core"
)

// Texture is an immutable RGBA image addressed by UV coordinates.
// It is never written after construction, so any number of primitives
// and render workers may sample it concurrently.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the image top
	Alpha  []float32   // Same layout as Pixels, in [0, 1]
}

// NewTexture creates a texture from row-major pixels.
// A nil alpha slice makes the texture fully opaque. Sizes below 1 are raised
// to 1 and missing pixels are black, so every texture can be sampled.
func NewTexture(width, height int, pixels []core.Vec3, alpha []float32) *Texture {
	width, height = textureSize(width, height)
	n := width * height

	if len(pixels) < n {
		pixels = append(pixels[:len(pixels):len(pixels)], make([]core.Vec3, n-len(pixels))...)
	}
	if alpha == nil {
		alpha = make([]float32, 0, n)
	}
	alpha = alpha[:len(alpha):len(alpha)]
	for len(alpha) < n {
		alpha = append(alpha, 1)
	}

	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Alpha:  alpha,
	}
}

// textureSize raises both dimensions to at least 1
func textureSize(width, height int) (int, int) {
	return max(width, 1), max(height, 1)
}

// index maps UV to a pixel index using nearest-neighbor lookup.
// UV is clamped to [0,1] and V=0 is the bottom of the image.
func (t *Texture) index(u, v float32) int {
	u = clampUnit(u)
	v = clampUnit(v)

	x := int(math32.Floor(u * float32(t.Width-1)))
	y := int(math32.Floor((1 - v) * float32(t.Height-1)))

	return y*t.Width + x
}

// Sample returns the color at the given UV coordinates
func (t *Texture) Sample(u, v float32) core.Vec3 {
	return t.Pixels[t.index(u, v)]
}

// SampleRGBA returns the color and alpha at the given UV coordinates
func (t *Texture) SampleRGBA(u, v float32) (core.Vec3, float32) {
	i := t.index(u, v)
	return t.Pixels[i], t.Alpha[i]
}
