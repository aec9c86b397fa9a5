package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/geometry"
)

func TestDioramaScene_Layout(t *testing.T) {
	s, err := NewDioramaScene(Options{})
	if err != nil {
		t.Fatalf("NewDioramaScene failed: %v", err)
	}

	// 21 grass columns of two blocks, 3 stone blocks, 4 water blocks, then trees of 15, 12 and 6 blocks
	const expected = 21*2 + 3 + 4 + 15 + 12 + 6
	if len(s.Objects) != expected {
		t.Errorf("Expected %d objects, got %d", expected, len(s.Objects))
	}
	if counts := s.CountByKind(); counts[geometry.KindTexturedBox] != len(s.Objects) {
		t.Errorf("Expected only textured boxes, got %v", counts)
	}

	leaves := mustGet(t, s.Textures, "leaves")
	var leafBlocks, waterBlocks int
	for _, o := range s.Objects {
		if o.Textured.Texture == leaves {
			leafBlocks++
		}
		if o.Textured.Material.Alpha == 0.75 {
			waterBlocks++
		}
	}
	if leafBlocks != 14+11+5 {
		t.Errorf("Expected 30 blocks sharing the leaves texture, got %d", leafBlocks)
	}
	if waterBlocks != len(pondCells) {
		t.Errorf("Expected %d translucent water blocks, got %d", len(pondCells), waterBlocks)
	}
}

func TestDioramaScene_PondIsSunken(t *testing.T) {
	s, err := NewDioramaScene(Options{})
	if err != nil {
		t.Fatalf("NewDioramaScene failed: %v", err)
	}

	// Looking straight down into the pond hits water below the grass line
	hit, index := geometry.NearestHit(s.Objects, core.NewVec3(0.5, 10, 0.5), core.NewVec3(0, -1, 0))
	if index < 0 {
		t.Fatal("Expected to hit the pond")
	}
	if hit.Point[1] > 0.001 {
		t.Errorf("Expected water surface at y=0, got %f", hit.Point[1])
	}
	if hit.Material.Alpha >= 1 {
		t.Errorf("Expected translucent water, got alpha %f", hit.Material.Alpha)
	}
}

func TestDioramaScene_MissingTextureDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "grass_side.png", color.NRGBA{G: 255, A: 255})

	_, err := NewDioramaScene(Options{TextureDir: dir})
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("Expected wrapped ErrTextureNotFound, got %v", err)
	}

	if _, err := Create("diorama", Options{TextureDir: dir}); err == nil {
		t.Error("Expected Create to surface the texture error")
	}
}

func TestDioramaScene_TextureDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range blockTextures {
		writePNG(t, dir, name+".png", color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	}

	s, err := NewDioramaScene(Options{TextureDir: dir})
	if err != nil {
		t.Fatalf("NewDioramaScene failed: %v", err)
	}
	if got := len(s.Textures.Names()); got != len(blockTextures) {
		t.Errorf("Expected %d loaded textures, got %d", len(blockTextures), got)
	}
}
