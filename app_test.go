package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestE2ERightEyeExample exercises the full pipeline: Lisp source →
// engine → marching core → tessellate → mesh data. This is the same
// path the Wails Evaluate binding takes, but without the Wails runtime.
func TestE2ERightEyeExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/right_eye.refl")
	if err != nil {
		t.Fatalf("failed to read right_eye.refl: %v", err)
	}

	result := app.Evaluate(string(source))

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}

	m := result.Meshes[0]
	if m.Name != "right-eye" {
		t.Errorf("mesh name = %q, want %q", m.Name, "right-eye")
	}
	if m.SliceCount == 0 || m.PointCount == 0 {
		t.Errorf("empty surface: %d slices, %d points", m.SliceCount, m.PointCount)
	}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Error("mesh has no renderable geometry")
	}
	if len(m.Vertices) != len(m.Normals) {
		t.Errorf("vertices (%d) and normals (%d) out of step", len(m.Vertices), len(m.Normals))
	}
	if m.Color == "" {
		t.Error("no color assigned")
	}
	if m.Source.X != 50 || m.Source.Y != -10 {
		t.Errorf("source = %s, want (50, -10, 0)", m.Source)
	}
}

// TestE2EEmptySource ensures the pipeline handles empty input gracefully.
func TestE2EEmptySource(t *testing.T) {
	app := NewApp()
	result := app.Evaluate("")

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors for empty source: %v", result.Errors)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for empty source, got %d", len(result.Meshes))
	}
}

// TestE2ESyntaxError ensures eval errors are reported as data, not fatal.
func TestE2ESyntaxError(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`(reflector :h-fov`)

	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
	}
}

// TestE2EExportCSV runs the headless export path end to end.
func TestE2EExportCSV(t *testing.T) {
	app := NewApp()
	dir := t.TempDir()

	source := `(reflector :name "export-test"
                       :h-fov 45 :v-fov 45
                       :h-step 2 :v-step 2
                       :distance 40
                       :source (vec3 40 -10 0))`

	result := app.Export(source, dir, "csv")
	if len(result.Errors) > 0 {
		t.Fatalf("export errors: %v", result.Errors)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 output path, got %d", len(result.Files))
	}

	entries, err := os.ReadDir(filepath.Join(dir, "export-test"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) == 0 {
		t.Error("no slice files written")
	}
}

func TestE2EExportUnknownFormat(t *testing.T) {
	app := NewApp()
	source := `(reflector :h-fov 45 :v-fov 45 :h-step 2 :v-step 2 :distance 40 :source (vec3 40 -10 0))`

	result := app.Export(source, t.TempDir(), "obj")
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for unknown format")
	}
}
