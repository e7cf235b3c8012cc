package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"reflens/pkg/trimesh"
)

// WriteSTL writes a tessellated surface as binary STL.
func WriteSTL(path string, m *trimesh.Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("export: %s: mesh has no geometry", path)
	}

	triangles := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		t := &sdf.Triangle3{
			v3.Vec{X: tri[0][0], Y: tri[0][1], Z: tri[0][2]},
			v3.Vec{X: tri[1][0], Y: tri[1][1], Z: tri[1][2]},
			v3.Vec{X: tri[2][0], Y: tri[2][1], Z: tri[2][2]},
		}
		triangles = append(triangles, t)
	}

	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return nil
}
