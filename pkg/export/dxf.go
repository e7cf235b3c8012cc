package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"reflens/pkg/lens"
)

// WriteDXF writes the mesh as a DXF wireframe: one layer per slice, with
// consecutive slice points joined by LINE entities.
func WriteDXF(path string, m lens.Mesh) error {
	d := dxf.NewDrawing()

	for i, slice := range m.Slices {
		layer := fmt.Sprintf("SLICE_%03d", i)
		if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("export: dxf layer %s: %w", layer, err)
		}
		for j := 0; j+1 < len(slice); j++ {
			a, b := slice[j], slice[j+1]
			if _, err := d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z); err != nil {
				return fmt.Errorf("export: dxf line on %s: %w", layer, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return nil
}
