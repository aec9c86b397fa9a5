package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/loaders"
	"github.com/adrianap0607/Diorama/pkg/material"
)

// ErrTextureNotFound is returned when a texture directory has no file for a name
var ErrTextureNotFound = errors.New("texture not found")

// textureExtensions are tried in order when resolving a texture name to a file
var textureExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".tif", ".webp"}

const proceduralSize = 16

// proceduralTextures generate stand-ins for the block textures when no directory is configured
var proceduralTextures = map[string]func() *material.Texture{
	"grass_side": func() *material.Texture {
		return material.NewBandTexture(proceduralSize, proceduralSize,
			core.NewVec3(0.36, 0.62, 0.22), core.NewVec3(0.53, 0.38, 0.25), 0.25, 0.12, 1)
	},
	"grass_top": func() *material.Texture {
		return material.NewNoiseTexture(proceduralSize, proceduralSize, core.NewVec3(0.38, 0.66, 0.24), 0.15, 1, 2)
	},
	"water": func() *material.Texture {
		return material.NewNoiseTexture(proceduralSize, proceduralSize, core.NewVec3(0.20, 0.40, 0.85), 0.08, 0.8, 3)
	},
	"bedrock": func() *material.Texture {
		return material.NewNoiseTexture(proceduralSize, proceduralSize, core.NewVec3(0.45, 0.45, 0.45), 0.35, 1, 4)
	},
	"log": func() *material.Texture {
		return material.NewStripeTexture(proceduralSize, proceduralSize, 3, core.NewVec3(0.42, 0.30, 0.18), core.NewVec3(0.33, 0.23, 0.13))
	},
	"leaves": func() *material.Texture {
		return material.NewNoiseTexture(proceduralSize, proceduralSize, core.NewVec3(0.20, 0.50, 0.16), 0.25, 1, 5)
	},
	"checker": func() *material.Texture {
		return material.NewCheckerTexture(proceduralSize, proceduralSize, 4, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.2))
	},
}

// TextureRegistry loads each named texture once and hands out shared handles.
// With an empty directory it serves procedural textures instead of files.
type TextureRegistry struct {
	dir      string
	mu       sync.Mutex
	textures map[string]*material.Texture
}

// NewTextureRegistry creates a registry reading from dir
func NewTextureRegistry(dir string) *TextureRegistry {
	return &TextureRegistry{
		dir:      dir,
		textures: make(map[string]*material.Texture),
	}
}

// Dir returns the directory textures are read from
func (r *TextureRegistry) Dir() string {
	return r.dir
}

// Get returns the texture registered under name, loading it on first use
func (r *TextureRegistry) Get(name string) (*material.Texture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tex, ok := r.textures[name]; ok {
		return tex, nil
	}

	tex, err := r.load(name)
	if err != nil {
		return nil, err
	}
	r.textures[name] = tex
	return tex, nil
}

// Add registers a texture under name, replacing any previous one
func (r *TextureRegistry) Add(name string, tex *material.Texture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.textures[name] = tex
}

// Names returns the loaded texture names in sorted order
func (r *TextureRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.textures))
	for name := range r.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *TextureRegistry) load(name string) (*material.Texture, error) {
	if r.dir == "" {
		gen, ok := proceduralTextures[name]
		if !ok {
			return nil, fmt.Errorf("no procedural texture for %q: %w", name, ErrTextureNotFound)
		}
		return gen(), nil
	}

	for _, ext := range textureExtensions {
		path := filepath.Join(r.dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		tex, err := loaders.LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture %q: %w", name, err)
		}
		return tex, nil
	}

	return nil, fmt.Errorf("%q in %s: %w", name, r.dir, ErrTextureNotFound)
}
