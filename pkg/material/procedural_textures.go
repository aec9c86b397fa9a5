package material

import (
	"math/rand"

	"github.com/adrianap0607/Diorama/pkg/core"
)

// NewCheckerTexture creates a procedural checkerboard pattern texture
func NewCheckerTexture(width, height, checkSize int, color1, color2 core.Vec3) *Texture {
	checkSize = max(checkSize, 1)
	width, height = textureSize(width, height)
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewTexture(width, height, pixels, nil)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *Texture {
	width, height = textureSize(width, height)
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float32(0)
		if height > 1 {
			t = float32(y) / float32(height-1)
		}
		color := core.Lerp(color1, color2, t)

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewTexture(width, height, pixels, nil)
}

// NewNoiseTexture creates a texture of base color with per-pixel brightness jitter.
// The seed makes the pattern deterministic.
func NewNoiseTexture(width, height int, base core.Vec3, variation, alpha float32, seed int64) *Texture {
	random := rand.New(rand.NewSource(seed))
	width, height = textureSize(width, height)
	pixels := make([]core.Vec3, width*height)
	alphas := make([]float32, width*height)

	for i := range pixels {
		pixels[i] = jitter(base, variation, random)
		alphas[i] = alpha
	}

	return NewTexture(width, height, pixels, alphas)
}

// NewBandTexture creates a noisy texture whose top rows use the top color.
// split is the fraction of the height covered by the top band.
func NewBandTexture(width, height int, top, bottom core.Vec3, split, variation float32, seed int64) *Texture {
	random := rand.New(rand.NewSource(seed))
	width, height = textureSize(width, height)
	pixels := make([]core.Vec3, width*height)
	bandRows := int(split * float32(height))

	for y := 0; y < height; y++ {
		base := bottom
		if y < bandRows {
			base = top
		}
		for x := 0; x < width; x++ {
			pixels[y*width+x] = jitter(base, variation, random)
		}
	}

	return NewTexture(width, height, pixels, nil)
}

// NewStripeTexture creates vertical stripes alternating between two colors
func NewStripeTexture(width, height, stripeWidth int, color1, color2 core.Vec3) *Texture {
	stripeWidth = max(stripeWidth, 1)
	width, height = textureSize(width, height)
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/stripeWidth)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewTexture(width, height, pixels, nil)
}

func jitter(base core.Vec3, variation float32, random *rand.Rand) core.Vec3 {
	scale := 1 + variation*(2*random.Float32()-1)
	return core.Clamp(base.Mul(scale), 0, 1)
}
