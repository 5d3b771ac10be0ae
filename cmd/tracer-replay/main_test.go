package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRunFromStdin(t *testing.T) {
	script := `{"dt": "16ms", "steps": [{"repeat": 3, "move": [0, 1]}, {"dash": true}]}`

	var out bytes.Buffer
	if err := run("-", strings.NewReader(script), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !gjson.Valid(line) {
			t.Errorf("Line %d is not JSON: %s", i, line)
		}
	}
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"repeat": 2}]}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var out bytes.Buffer
	if err := run(path, nil, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 2 {
		t.Errorf("Expected 2 lines, got %d", n)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		in   string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json"), ""},
		{"bad json", "-", "{"},
		{"no steps", "-", `{"dt": "16ms"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.path, strings.NewReader(tt.in), &out); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
