package lens

import (
	"fmt"

	"reflens/pkg/geom"
)

// maxMarchSteps caps a single marching direction. The bounds ellipse
// terminates every sane configuration long before this; hitting the cap
// means the configuration is pathological (for example a step that
// shrinks to nothing against the bounds).
const maxMarchSteps = 1 << 20

// Slice is one horizontal cross-section of the surface: an ordered
// sequence of points, left to right along the horizontal marching
// direction. Built once, then immutable.
type Slice []geom.Vec3

// Mesh is the complete generated surface: an ordered sequence of slices,
// bottom to top along the vertical marching direction.
type Mesh struct {
	Slices []Slice
}

// PointCount returns the total number of points across all slices.
func (m Mesh) PointCount() int {
	n := 0
	for _, s := range m.Slices {
		n += len(s)
	}
	return n
}

// march walks from seed in the direction selected by axis and sign,
// recomputing the normal at every accepted point, and returns the points
// it accepted, in marching order, seed excluded. Marching stops the
// instant a candidate fails the bounds check; that candidate is
// discarded.
func (f *Field) march(seed geom.Vec3, axis Axis, sign float64) ([]geom.Vec3, error) {
	var points []geom.Vec3
	current := seed

	for i := 0; ; i++ {
		if i >= maxMarchSteps {
			return nil, fmt.Errorf("%w: %s march exceeded %d steps", ErrMarchLimit, axis, maxMarchSteps)
		}

		normal, err := f.Normal(current)
		if err != nil {
			return nil, err
		}
		step, err := f.Step(normal, axis)
		if err != nil {
			return nil, err
		}

		candidate := current.Add(step.Scale(sign))
		in, err := f.InBounds(candidate)
		if err != nil {
			return nil, err
		}
		if !in {
			return points, nil
		}

		points = append(points, candidate)
		current = candidate
	}
}

// BuildSlice grows one slice from seed by marching bidirectionally along
// the horizontal tangent. The two directions are independent; the seed
// appears exactly once, between the reversed negative-direction points
// and the positive-direction points.
func (f *Field) BuildSlice(seed geom.Vec3) (Slice, error) {
	neg, err := f.march(seed, Horizontal, -1)
	if err != nil {
		return nil, err
	}
	pos, err := f.march(seed, Horizontal, +1)
	if err != nil {
		return nil, err
	}

	slice := make(Slice, 0, len(neg)+1+len(pos))
	for i := len(neg) - 1; i >= 0; i-- {
		slice = append(slice, neg[i])
	}
	slice = append(slice, seed)
	slice = append(slice, pos...)
	return slice, nil
}

// BuildSurface grows the full mesh from seed: the seed slice first, then
// one slice per accepted vertical step, marching bidirectionally.
// Downward slices are prepended so the mesh stays ordered bottom to top.
func (f *Field) BuildSurface(seed geom.Vec3) (Mesh, error) {
	center, err := f.BuildSlice(seed)
	if err != nil {
		return Mesh{}, err
	}

	down, err := f.march(seed, Vertical, -1)
	if err != nil {
		return Mesh{}, err
	}
	up, err := f.march(seed, Vertical, +1)
	if err != nil {
		return Mesh{}, err
	}

	slices := make([]Slice, 0, len(down)+1+len(up))
	for i := len(down) - 1; i >= 0; i-- {
		s, err := f.BuildSlice(down[i])
		if err != nil {
			return Mesh{}, err
		}
		slices = append(slices, s)
	}
	slices = append(slices, center)
	for _, p := range up {
		s, err := f.BuildSlice(p)
		if err != nil {
			return Mesh{}, err
		}
		slices = append(slices, s)
	}

	return Mesh{Slices: slices}, nil
}

// Build derives the canonical seed point from the configuration and
// builds the full surface.
func (f *Field) Build() (Mesh, error) {
	return f.BuildSurface(f.cfg.SeedPoint())
}
