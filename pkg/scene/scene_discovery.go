package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be rendered
type SceneInfo struct {
	Name        string `json:"name"`        // Scene name, used to select it
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
}

type builtinScene struct {
	info  SceneInfo
	build func(seed uint32) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{Name: "default", Description: "Diffuse sphere on a ground sphere"},
		build: func(uint32) *Scene {
			return NewDefaultScene()
		},
	},
	{
		info: SceneInfo{Name: "materials", Description: "Hollow glass, diffuse and fuzzy metal spheres"},
		build: func(uint32) *Scene {
			return NewMaterialsScene()
		},
	},
	{
		info:  SceneInfo{Name: "weekend", Description: "Random sphere field from the final weekend render"},
		build: NewWeekendScene,
	},
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		names = append(names, s.info.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the built-in scene with the given name. The seed drives any random
// layout and is recorded on the scene for rendering.
func Lookup(name string, seed uint32) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.Name == name {
			sc := s.build(seed)
			sc.Seed = seed
			return sc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}

// ListBuiltinScenes returns metadata for every built-in scene
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		info := s.info
		info.DisplayName = titleCase(info.Name)
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// ListSceneFiles scans dir for JSON scene files and returns their metadata.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	pattern := filepath.Join(dir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file without building it
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	// Fall back to the file name when the file has no name of its own
	sceneInfo := SceneInfo{
		Name:        nameWithoutExt,
		DisplayName: titleCase(nameWithoutExt),
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, fmt.Errorf("reading %s: %w", filePath, err)
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo, fmt.Errorf("parsing %s: %w", filePath, err)
	}

	if header.Name != "" {
		sceneInfo.Name = header.Name
		sceneInfo.DisplayName = titleCase(header.Name)
	}
	sceneInfo.Description = header.Description

	return sceneInfo, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), files...), nil
}

// titleCase converts "my-scene_name" into "My Scene Name"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
