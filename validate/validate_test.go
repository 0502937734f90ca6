package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func hasMessage(result Result, substr string) bool {
	for _, msg := range result.Messages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestFile_ValidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "five.json", `{
		"name": "Five",
		"description": "Five disks",
		"num_disks": 5,
		"autoplay_interval_ms": 200,
		"messages": {
			"welcome": "Welcome!",
			"move_status": "Step %d/%d",
			"complete": "Solved",
			"at_start": "Start"
		}
	}`)

	result := File(path)
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Messages)
	}

	if result.File != "five.json" {
		t.Errorf("Expected file name five.json, got %s", result.File)
	}

	for _, expected := range []string{"✓ Name: Five", "✓ Disks: 5", "✓ Moves: 31", "✓ Autoplay: 200ms"} {
		if !hasMessage(result, expected) {
			t.Errorf("Expected %q in %v", expected, result.Messages)
		}
	}
}

func TestFile_DefaultInterval(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "one.json", `{"name": "One", "description": "One disk", "num_disks": 1}`)

	result := File(path)
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Messages)
	}
	if !hasMessage(result, "default (300ms)") {
		t.Errorf("Expected default interval note, got %v", result.Messages)
	}
}

func TestFile_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Bad JSON",
			content:  `{"name": "test", invalid json}`,
			expected: "Invalid JSON",
		},
		{
			name:     "Unknown field",
			content:  `{"name": "Old", "description": "grid preset", "num_disks": 3, "grid_size": 5}`,
			expected: "Invalid JSON",
		},
		{
			name:     "Missing name",
			content:  `{"description": "no name", "num_disks": 3}`,
			expected: "name is required",
		},
		{
			name:     "Missing description",
			content:  `{"name": "Bare", "num_disks": 3}`,
			expected: "description is required",
		},
		{
			name:     "Zero disks",
			content:  `{"name": "Zero", "description": "none", "num_disks": 0}`,
			expected: "num_disks",
		},
		{
			name:     "Too many disks",
			content:  `{"name": "Huge", "description": "too big", "num_disks": 21}`,
			expected: "num_disks",
		},
		{
			name:     "Interval too short",
			content:  `{"name": "Fast", "description": "too fast", "num_disks": 3, "autoplay_interval_ms": 1}`,
			expected: "autoplay_interval_ms",
		},
		{
			name:     "Bad move status",
			content:  `{"name": "Msg", "description": "one verb", "num_disks": 3, "messages": {"move_status": "Move %d"}}`,
			expected: "move_status",
		},
		{
			name:     "Extra verb in move status",
			content:  `{"name": "Msg", "description": "stray verb", "num_disks": 3, "messages": {"move_status": "Move %d of %d (%s)"}}`,
			expected: "move_status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "bad.json", tt.content)

			result := File(path)
			if result.Valid {
				t.Fatal("Expected invalid config")
			}
			if !hasMessage(result, tt.expected) {
				t.Errorf("Expected %q in %v", tt.expected, result.Messages)
			}
		})
	}
}

func TestFile_MissingFile(t *testing.T) {
	result := File("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasMessage(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestFile_CollectsEveryProblem(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.json", `{"num_disks": 99, "autoplay_interval_ms": 5}`)

	result := File(path)
	if result.Valid {
		t.Fatal("Expected invalid config")
	}
	if len(result.Messages) != 4 {
		t.Errorf("Expected 4 problems, got %d: %v", len(result.Messages), result.Messages)
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.json", `{"name": "A", "description": "ok", "num_disks": 2}`)
	writeConfig(t, dir, "b.json", `{"name": "B", "description": "bad", "num_disks": 0}`)
	writeConfig(t, dir, "notes.txt", "ignored")

	results, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	var buf bytes.Buffer
	if Report(&buf, results) {
		t.Error("Expected report to flag the invalid file")
	}
	out := buf.String()
	for _, expected := range []string{"a.json", "✅ VALID", "b.json", "❌ INVALID", "Some configurations have errors"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected %q in report:\n%s", expected, out)
		}
	}
}

func TestDir_Empty(t *testing.T) {
	if _, err := Dir(t.TempDir()); err == nil {
		t.Error("Expected error for directory without configs")
	}
}

func TestShippedPresets(t *testing.T) {
	results, err := Dir("../configs")
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}

	var buf bytes.Buffer
	if !Report(&buf, results) {
		t.Errorf("Shipped presets should be valid:\n%s", buf.String())
	}
}
