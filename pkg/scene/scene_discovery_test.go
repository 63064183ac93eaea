package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"glass_bubble", "Glass Bubble"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name:    "complete.json",
			content: `{"name": "glass-row", "description": "Row of glass spheres"}`,
			expected: SceneInfo{
				Name:        "glass-row",
				DisplayName: "Glass Row",
				Description: "Row of glass spheres",
				Type:        "file",
			},
		},
		{
			name:    "no_metadata.json",
			content: `{"spheres": []}`,
			expected: SceneInfo{
				Name:        "no_metadata",
				DisplayName: "No Metadata",
				Type:        "file",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata failed: %v", err)
			}
			tc.expected.FilePath = path
			if info != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, info)
			}
		})
	}

	bad := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(bad, []byte(`{"name": `), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := ParseSceneMetadata(bad); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"zeta.json":  `{"name": "zeta"}`,
		"alpha.json": `{"name": "alpha"}`,
		"notes.txt":  `not a scene`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	if scenes[0].Name != "alpha" || scenes[1].Name != "zeta" {
		t.Errorf("Expected scenes sorted by display name, got %s, %s", scenes[0].Name, scenes[1].Name)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Expected empty list for a missing directory, got %v, %v", missing, err)
	}

	all, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}
	if len(all) != len(Names())+2 {
		t.Errorf("Expected built-ins plus 2 files, got %d", len(all))
	}
	for _, info := range all[:len(Names())] {
		if info.Type != "builtin" || info.DisplayName == "" {
			t.Errorf("Unexpected built-in entry %+v", info)
		}
	}
}
