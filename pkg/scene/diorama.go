package scene

import (
	"fmt"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/lights"
	"github.com/adrianap0607/Diorama/pkg/material"
	"github.com/adrianap0607/Diorama/pkg/renderer"
)

const (
	blockSize   = 1.0
	grassHeight = 0.06
	leafHeight  = 0.6
)

// blockTextures are the textures the diorama reads from the registry
var blockTextures = []string{"grass_side", "grass_top", "water", "bedrock", "log", "leaves"}

type cell struct{ x, z int }

var (
	pondCells   = []cell{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}
	raisedCells = []cell{{0, -1}, {1, -1}, {1, 0}}
)

// blockSet holds the shared texture handles used to build the world
type blockSet struct {
	grassSide, grassTop, water, bedrock, log, leaves *material.Texture
}

// NewDioramaScene creates the textured voxel island.
// Texture load failures are returned wrapped.
func NewDioramaScene(opts Options) (*Scene, error) {
	camera := renderer.NewCamera(
		core.NewVec3(6.5, 5.5, 8.5),
		core.NewVec3(0, 0.8, 0),
		core.NewVec3(0, 1, 0),
	)
	light := lights.NewWhiteLight(core.NewVec3(-4, 9, 6), 1.2)

	textures := NewTextureRegistry(opts.TextureDir)
	s := New("diorama", camera, light, textures)

	loaded := make(map[string]*material.Texture, len(blockTextures))
	for _, name := range blockTextures {
		tex, err := textures.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to build diorama: %w", err)
		}
		loaded[name] = tex
	}

	blocks := blockSet{
		grassSide: loaded["grass_side"],
		grassTop:  loaded["grass_top"],
		water:     loaded["water"],
		bedrock:   loaded["bedrock"],
		log:       loaded["log"],
		leaves:    loaded["leaves"],
	}

	s.buildGrassAndWater(blocks)
	s.addTree(-2, -2, blocks)
	s.addTreeBig(2, 2, blocks)
	s.addTreeSmall(-2, 2, blocks)

	return s, nil
}

func neutral(alpha float32) material.Material {
	return material.New(core.NewVec3(1, 1, 1), 0, [4]float32{1, 0, 0, 0}, 0, alpha)
}

func isCell(cells []cell, x, z int) bool {
	for _, c := range cells {
		if c.x == x && c.z == z {
			return true
		}
	}
	return false
}

// block adds a textured box with its min corner at grid cell (x, z) and height y
func (s *Scene) block(x, z, y, height float32, mat material.Material, tex *material.Texture) {
	min := core.NewVec3(x*blockSize, y, z*blockSize)
	max := min.Add(core.NewVec3(blockSize, height, blockSize))
	s.AddTexturedBox(min, max, mat, tex)
}

// buildGrassAndWater lays the 5x5 grass base with a sunken pond and raised stone
func (s *Scene) buildGrassAndWater(b blockSet) {
	opaque := neutral(1)

	for z := -2; z <= 2; z++ {
		for x := -2; x <= 2; x++ {
			if isCell(pondCells, x, z) {
				continue
			}
			s.block(float32(x), float32(z), -1, 1, opaque, b.grassSide)
			s.block(float32(x), float32(z), 0, grassHeight, opaque, b.grassTop)
		}
	}

	for _, c := range raisedCells {
		s.block(float32(c.x), float32(c.z), grassHeight, 0.5, opaque, b.bedrock)
	}

	water := neutral(0.75)
	for _, c := range pondCells {
		s.block(float32(c.x), float32(c.z), -0.2, 0.2, water, b.water)
	}
}

// addTree adds a trunk with a plus-shaped, a ring and a single-block canopy layer
func (s *Scene) addTree(x, z float32, b blockSet) {
	mat := neutral(1)
	s.block(x, z, 0, 2, mat, b.log)

	y := float32(2)
	for _, o := range []cell{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		s.block(x+float32(o.x), z+float32(o.z), y, leafHeight, mat, b.leaves)
	}

	y += leafHeight
	for oz := -1; oz <= 1; oz++ {
		for ox := -1; ox <= 1; ox++ {
			if ox == 0 && oz == 0 {
				continue
			}
			s.block(x+float32(ox), z+float32(oz), y, leafHeight, mat, b.leaves)
		}
	}

	y += leafHeight
	s.block(x, z, y, leafHeight, mat, b.leaves)
}

// addTreeBig adds a trunk with a connector block, a full 3x3 canopy and a top block
func (s *Scene) addTreeBig(x, z float32, b blockSet) {
	mat := neutral(1)
	s.block(x, z, 0, 2, mat, b.log)

	y := float32(2)
	s.block(x, z, y, leafHeight, mat, b.leaves)

	y += leafHeight
	for oz := -1; oz <= 1; oz++ {
		for ox := -1; ox <= 1; ox++ {
			s.block(x+float32(ox), z+float32(oz), y, leafHeight, mat, b.leaves)
		}
	}

	y += leafHeight
	s.block(x, z, y, leafHeight, mat, b.leaves)
}

// addTreeSmall adds a short trunk with a cross of leaves and a top block
func (s *Scene) addTreeSmall(x, z float32, b blockSet) {
	mat := neutral(1)
	const trunk = 1.6
	s.block(x, z, 0, trunk, mat, b.log)

	for _, o := range []cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		s.block(x+float32(o.x), z+float32(o.z), trunk, leafHeight, mat, b.leaves)
	}

	s.block(x, z, trunk+leafHeight, leafHeight, mat, b.leaves)
}
