// Package tessellate converts the ordered point slices produced by the
// lens marching core into triangle meshes for rendering and STL export.
// The tessellator is read-only and never mutates the input mesh.
package tessellate

import (
	"reflens/pkg/geom"
	"reflens/pkg/lens"
	"reflens/pkg/trimesh"
)

// Tessellate zipper-triangulates adjacent slices of a surface mesh into
// one triangle strip per slice pair. Slices of unequal length are
// handled by advancing whichever side lags in normalized position. A
// surface with fewer than two usable slices yields an empty mesh.
func Tessellate(m lens.Mesh, name string) *trimesh.Mesh {
	out := &trimesh.Mesh{Name: name}

	for i := 0; i+1 < len(m.Slices); i++ {
		lower := m.Slices[i]
		upper := m.Slices[i+1]
		if len(lower) < 2 || len(upper) < 2 {
			continue
		}
		zipper(out, lower, upper)
	}

	return out
}

// zipper emits triangles between two adjacent slices. It walks an index
// into each slice, always advancing the side whose next point lags in
// normalized position, so the strip stays balanced when the slices have
// different point counts.
func zipper(out *trimesh.Mesh, lower, upper lens.Slice) {
	i, j := 0, 0
	for i < len(lower)-1 || j < len(upper)-1 {
		advanceLower := false
		switch {
		case i >= len(lower)-1:
			// Lower side exhausted.
		case j >= len(upper)-1:
			advanceLower = true
		default:
			posLower := float64(i+1) / float64(len(lower)-1)
			posUpper := float64(j+1) / float64(len(upper)-1)
			advanceLower = posLower <= posUpper
		}

		if advanceLower {
			emit(out, lower[i], lower[i+1], upper[j])
			i++
		} else {
			emit(out, lower[i], upper[j+1], upper[j])
			j++
		}
	}
}

// emit appends one triangle with a flat per-face normal.
func emit(out *trimesh.Mesh, a, b, c geom.Vec3) {
	n, err := b.Sub(a).Cross(c.Sub(a)).Unit()
	if err != nil {
		// Zero-area triangle; skip it.
		return
	}

	base := uint32(len(out.Vertices) / 3)
	for _, p := range []geom.Vec3{a, b, c} {
		out.Vertices = append(out.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
		out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	out.Indices = append(out.Indices, base, base+1, base+2)
}
