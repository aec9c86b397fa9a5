package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/material"
)

// ErrEmptyImage is returned for images with zero width or height
var ErrEmptyImage = errors.New("image has no pixels")

// ImageData contains loaded image data as Vec3 color and alpha arrays
type ImageData struct {
	Width  int
	Height int
	Format string      // Decoder that read the image (png, jpeg, bmp, tiff, webp)
	Pixels []core.Vec3 // Row-major, straight (non-premultiplied) color in [0, 1]
	Alpha  []float32   // Row-major alpha in [0, 1]
}

// LoadImage loads an image file and converts it to color and alpha arrays
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes any registered image format from r
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	pixels := make([]core.Vec3, width*height)
	alpha := make([]float32, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// NRGBA keeps color independent of alpha, matching how textures are authored
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			i := y*width + x
			pixels[i] = core.NewVec3(
				float32(c.R)/255,
				float32(c.G)/255,
				float32(c.B)/255,
			)
			alpha[i] = float32(c.A) / 255
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
		Alpha:  alpha,
	}, nil
}

// LoadTexture loads an image file as a texture
func LoadTexture(filename string) (*material.Texture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return data.Texture(), nil
}

// Texture wraps the decoded pixels in a texture without copying them
func (d *ImageData) Texture() *material.Texture {
	return material.NewTexture(d.Width, d.Height, d.Pixels, d.Alpha)
}
