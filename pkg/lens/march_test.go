package lens

import (
	"reflect"
	"testing"
)

func TestBuildSliceContainsSeedOnce(t *testing.T) {
	f := mustField(t, referenceConfig())
	seed := f.Config().SeedPoint()

	slice, err := f.BuildSlice(seed)
	if err != nil {
		t.Fatalf("BuildSlice: %v", err)
	}
	if len(slice) == 0 {
		t.Fatal("empty slice")
	}

	count := 0
	index := -1
	for i, p := range slice {
		if p == seed {
			count++
			index = i
		}
	}
	if count != 1 {
		t.Fatalf("seed appears %d times, want exactly once", count)
	}

	// The seed sits at the index equal to the number of points produced
	// marching in the negative direction.
	neg, err := f.march(seed, Horizontal, -1)
	if err != nil {
		t.Fatalf("march: %v", err)
	}
	if index != len(neg) {
		t.Errorf("seed at index %d, want %d", index, len(neg))
	}
}

func TestBuildSliceOrderedAndInBounds(t *testing.T) {
	f := mustField(t, referenceConfig())

	slice, err := f.BuildSlice(f.Config().SeedPoint())
	if err != nil {
		t.Fatalf("BuildSlice: %v", err)
	}
	if len(slice) < 3 {
		t.Fatalf("slice has %d points, expected a full march", len(slice))
	}

	for i, p := range slice {
		in, err := f.InBounds(p)
		if err != nil {
			t.Fatalf("InBounds(%s): %v", p, err)
		}
		if !in {
			t.Errorf("point %d (%s) out of bounds", i, p)
		}
		if i > 0 && slice[i].X <= slice[i-1].X {
			t.Errorf("slice not ordered by increasing x at %d: %v after %v", i, slice[i].X, slice[i-1].X)
		}
	}
}

func TestBuildSurfaceEndToEnd(t *testing.T) {
	f := mustField(t, referenceConfig())

	mesh, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(mesh.Slices) == 0 {
		t.Fatal("mesh has no slices")
	}
	if mesh.PointCount() == 0 {
		t.Fatal("mesh has no points")
	}

	for i, slice := range mesh.Slices {
		if len(slice) == 0 {
			t.Fatalf("slice %d is empty", i)
		}
		for _, p := range slice {
			in, err := f.InBounds(p)
			if err != nil {
				t.Fatalf("InBounds(%s): %v", p, err)
			}
			if !in {
				t.Errorf("slice %d point %s out of bounds", i, p)
			}
		}
	}

	// Slices are ordered bottom to top; compare by the vertical position
	// of each slice seed region (the slice mid point is close enough for
	// 1mm steps on a 90° field).
	for i := 1; i < len(mesh.Slices); i++ {
		prev := mesh.Slices[i-1][len(mesh.Slices[i-1])/2]
		cur := mesh.Slices[i][len(mesh.Slices[i])/2]
		if cur.Z <= prev.Z {
			t.Errorf("slices not ordered bottom to top at %d: z %v after %v", i, cur.Z, prev.Z)
		}
	}
}

func TestBuildSurfaceDeterministic(t *testing.T) {
	f := mustField(t, referenceConfig())

	first, err := f.Build()
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, err := f.Build()
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two builds with identical configuration differ")
	}
}

// TestBuildSurfaceCoarseSteps exercises slices of unequal length near
// the top and bottom of the ellipse.
func TestBuildSurfaceCoarseSteps(t *testing.T) {
	cfg := referenceConfig()
	cfg.HStep = 5
	cfg.VStep = 5
	f := mustField(t, cfg)

	mesh, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(mesh.Slices) < 3 {
		t.Fatalf("expected several slices, got %d", len(mesh.Slices))
	}

	center := len(mesh.Slices) / 2
	if len(mesh.Slices[0]) >= len(mesh.Slices[center]) {
		t.Errorf("bottom slice (%d points) not shorter than center slice (%d points)",
			len(mesh.Slices[0]), len(mesh.Slices[center]))
	}
}

func TestBuildSurfaceNarrowField(t *testing.T) {
	cfg := referenceConfig()
	cfg.HFOV = 2
	cfg.VFOV = 2
	f := mustField(t, cfg)

	mesh, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// A 2° field at 50mm spans under 2mm: the seed slice survives but
	// barely any marching happens.
	if len(mesh.Slices) == 0 {
		t.Fatal("mesh has no slices")
	}
	if got := mesh.PointCount(); got > 25 {
		t.Errorf("narrow field produced %d points, expected a handful", got)
	}
}

func TestSeedPointInBoundsByConstruction(t *testing.T) {
	f := mustField(t, referenceConfig())
	in, err := f.InBounds(f.Config().SeedPoint())
	if err != nil {
		t.Fatalf("InBounds: %v", err)
	}
	if !in {
		t.Error("seed point out of bounds")
	}
}
