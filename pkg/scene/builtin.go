package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by Create for names with no builder
var ErrUnknownScene = errors.New("unknown scene")

// Options configures scene construction
type Options struct {
	TextureDir string // Directory holding block textures; empty uses procedural ones
}

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Textured    bool   `json:"textured"`    // Whether the scene reads textures
}

type builder struct {
	info  SceneInfo
	build func(opts Options) (*Scene, error)
}

var builders = map[string]builder{
	"cube": {
		info:  SceneInfo{Description: "A single red diffuse box under one white light"},
		build: func(Options) (*Scene, error) { return NewCubeScene(), nil },
	},
	"showcase": {
		info:  SceneInfo{Description: "Diffuse, mirror, translucent and glossy boxes on a green ground plane"},
		build: func(Options) (*Scene, error) { return NewShowcaseScene(), nil },
	},
	"diorama": {
		info:  SceneInfo{Description: "Textured voxel island with a pond, stone blocks and three trees", Textured: true},
		build: NewDioramaScene,
	},
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	b, ok := builders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return b.build(opts)
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builders))
	for name, b := range builders {
		info := b.info
		info.ID = name
		info.DisplayName = titleCase(name)
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// titleCase converts snake_case or kebab-case to Title Case
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
