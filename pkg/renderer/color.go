package renderer

import (
	"image/color"

	"github.com/adrianap0607/Diorama/pkg/core"
)

// ToRGBA converts a linear color to 8-bit RGBA.
// Channels are scaled by 255, clamped and truncated; alpha is always opaque.
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c[0]),
		G: toByte(c[1]),
		B: toByte(c[2]),
		A: 255,
	}
}

func toByte(x float32) uint8 {
	v := x * 255
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
