package material

import (
	"testing"

	"github.com/adrianap0607/Diorama/pkg/core"
)

func TestNewCheckerTexture(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0, 0, 1)
	texture := NewCheckerTexture(4, 4, 2, white, blue)

	if texture.Pixels[0] != white {
		t.Errorf("Expected top-left check to be color1, got %v", texture.Pixels[0])
	}
	if texture.Pixels[2] != blue {
		t.Errorf("Expected second check to be color2, got %v", texture.Pixels[2])
	}
	if texture.Pixels[2*4+2] != white {
		t.Errorf("Expected diagonal check to be color1, got %v", texture.Pixels[2*4+2])
	}
}

func TestNewNoiseTexture_DeterministicAndInRange(t *testing.T) {
	base := core.NewVec3(0.2, 0.5, 0.9)
	a := NewNoiseTexture(8, 8, base, 0.2, 0.75, 7)
	b := NewNoiseTexture(8, 8, base, 0.2, 0.75, 7)

	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("Expected identical pixels for identical seeds at %d", i)
		}
		for c := 0; c < 3; c++ {
			if a.Pixels[i][c] < 0 || a.Pixels[i][c] > 1 {
				t.Fatalf("Pixel %d channel %d out of range: %v", i, c, a.Pixels[i])
			}
		}
		if a.Alpha[i] != 0.75 {
			t.Fatalf("Expected alpha 0.75, got %v", a.Alpha[i])
		}
	}
}

func TestNewBandTexture(t *testing.T) {
	green := core.NewVec3(0.2, 0.8, 0.2)
	brown := core.NewVec3(0.5, 0.3, 0.1)
	texture := NewBandTexture(4, 8, green, brown, 0.25, 0, 1)

	if texture.Pixels[0] != green {
		t.Errorf("Expected top row in band color, got %v", texture.Pixels[0])
	}
	if texture.Pixels[7*4] != brown {
		t.Errorf("Expected bottom row in base color, got %v", texture.Pixels[7*4])
	}
}

func TestNewGradientTexture(t *testing.T) {
	top := core.NewVec3(1, 0, 0)
	bottom := core.NewVec3(0, 0, 1)
	texture := NewGradientTexture(2, 3, top, bottom)

	if texture.Sample(0, 1) != top {
		t.Errorf("Expected top color at v=1, got %v", texture.Sample(0, 1))
	}
	if texture.Sample(0, 0) != bottom {
		t.Errorf("Expected bottom color at v=0, got %v", texture.Sample(0, 0))
	}
}

func TestProceduralTextures_DegenerateParameters(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)

	tests := []struct {
		name string
		tex  func() *Texture
	}{
		{"checker zero size", func() *Texture { return NewCheckerTexture(0, 0, 4, red, blue) }},
		{"checker zero check", func() *Texture { return NewCheckerTexture(4, 4, 0, red, blue) }},
		{"stripe zero width", func() *Texture { return NewStripeTexture(4, 4, 0, red, blue) }},
		{"gradient negative", func() *Texture { return NewGradientTexture(-1, -1, red, blue) }},
		{"noise zero", func() *Texture { return NewNoiseTexture(0, 0, red, 0.1, 1, 1) }},
		{"band zero", func() *Texture { return NewBandTexture(0, 0, red, blue, 0.5, 0.1, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := tt.tex()
			if tex.Width < 1 || tex.Height < 1 {
				t.Fatalf("Expected positive size, got %dx%d", tex.Width, tex.Height)
			}
			tex.Sample(0.5, 0.5)
		})
	}
}
