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
		{"two-spheres", "Two Spheres"},
		{"teapot_grey", "Teapot Grey"},
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
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name:    "complete-metadata.json",
			content: `{"name": "Sphere Row", "description": "Five spheres in a row"}`,
			expected: SceneInfo{
				ID:          "complete-metadata",
				Name:        "Sphere Row",
				Description: "Five spheres in a row",
				Type:        "file",
			},
		},
		{
			name:    "no_metadata.json",
			content: `{"width": 320}`,
			expected: SceneInfo{
				ID:   "no_metadata",
				Name: "No Metadata", // From filename
				Type: "file",
			},
		},
		{
			name:    "broken.json",
			content: `{"name": `,
			expected: SceneInfo{
				ID:   "broken",
				Name: "Broken",
				Type: "file",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result := ParseSceneMetadata(path)
			tc.expected.FilePath = path

			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.json":     `{"name": "Beta"}`,
		"a.json":     `{"name": "Alpha"}`,
		"notes.txt":  `not a scene`,
		"gamma.json": `{}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}

	expected := []string{"Alpha", "Beta", "Gamma"}
	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(scenes))
	}
	for i, name := range expected {
		if scenes[i].Name != name {
			t.Errorf("Scene %d: expected %q, got %q", i, name, scenes[i].Name)
		}
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	builtins := BuiltinScenes()
	if len(scenes) != len(builtins)+1 {
		t.Fatalf("Expected %d scenes, got %d", len(builtins)+1, len(scenes))
	}
	for i, info := range builtins {
		if scenes[i].ID != info.ID {
			t.Errorf("Expected built-in %q at %d, got %q", info.ID, i, scenes[i].ID)
		}
	}
	if last := scenes[len(scenes)-1]; last.Type != "file" || last.ID != "extra" {
		t.Errorf("Expected scene file last, got %+v", last)
	}
}
