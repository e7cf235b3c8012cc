// Package export serializes generated surfaces into CAD-friendly
// formats: per-slice CSV point lists for spline fitting, DXF wireframes,
// and binary STL.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"reflens/pkg/lens"
)

// WriteCSV writes one CSV file per slice into dir, named slice_000.csv
// upward from the bottom of the mesh. Each row is x,y,z in millimeters.
// CAD tools such as SolidWorks accept these point lists and connect each
// one with a spline.
func WriteCSV(dir string, m lens.Mesh) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for i, slice := range m.Slices {
		path := filepath.Join(dir, fmt.Sprintf("slice_%03d.csv", i))
		if err := writeSliceCSV(path, slice); err != nil {
			return err
		}
	}
	return nil
}

func writeSliceCSV(path string, slice lens.Slice) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, p := range slice {
		record := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("export: %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return nil
}
