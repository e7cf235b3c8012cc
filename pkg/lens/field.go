package lens

import (
	"fmt"
	"math"

	"reflens/pkg/geom"
)

// Axis selects the marching direction for a tangent step.
type Axis int

const (
	Horizontal Axis = iota // march along x, within a slice
	Vertical               // march along z, across slices
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// projEpsilon is the minimum |y| component for the bounds-plane
// projection to be defined.
const projEpsilon = 1e-9

// Field is the immutable marching context derived from a Config: the
// fixed source and observer, the bounds-plane distance and the ellipse
// semi-axes. All marching functions hang off a Field so that no state is
// read from ambient scope.
type Field struct {
	cfg Config

	// Semi-axes of the field-of-view ellipse on the reference plane at
	// the seed distance. The tangent relates a half-angle to a linear
	// extent on a plane at fixed distance.
	rH float64
	rV float64
}

// NewField validates cfg and precomputes the marching context.
func NewField(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Field{
		cfg: cfg,
		rH:  cfg.Distance * math.Tan(cfg.HFOV/2*math.Pi/180),
		rV:  cfg.Distance * math.Tan(cfg.VFOV/2*math.Pi/180),
	}, nil
}

// Config returns the configuration the field was built from.
func (f *Field) Config() Config {
	return f.cfg
}

// Normal computes the local surface normal at p: the bisector of the
// unit vector from p toward the observer origin and the unit vector from
// p toward the source. A surface element oriented along this bisector
// reflects a ray from the source into the observer point exactly, per
// the law of reflection.
//
// The result is not renormalized; callers only use its direction.
func (f *Field) Normal(p geom.Vec3) (geom.Vec3, error) {
	toObserver, err := p.Neg().Unit()
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("%w: point %s coincides with the observer", ErrDegenerateInput, p)
	}
	toSource, err := f.cfg.Source.Sub(p).Unit()
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("%w: point %s coincides with the source", ErrDegenerateInput, p)
	}
	return toObserver.Add(toSource), nil
}

// Step computes a displacement of the configured step length, tangent to
// the surface (orthogonal to normal) and lying in the marching plane of
// the given axis. The returned direction is canonical: its projection on
// the marching axis is positive, and callers negate it to march the
// opposite way.
func (f *Field) Step(normal geom.Vec3, axis Axis) (geom.Vec3, error) {
	var other geom.Vec3
	var length float64
	var march geom.Vec3

	switch axis {
	case Horizontal:
		// Crossing with the vertical axis keeps the step in the
		// horizontal marching plane.
		other = geom.AxisZ
		length = f.cfg.HStep
		march = geom.AxisX
	case Vertical:
		other = geom.AxisX
		length = f.cfg.VStep
		march = geom.AxisZ
	default:
		return geom.Vec3{}, fmt.Errorf("%w: unknown axis %d", ErrDegenerateTangent, axis)
	}

	tangent, err := normal.Cross(other).Unit()
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("%w: no %s tangent exists for normal %s",
			ErrDegenerateTangent, axis, normal)
	}
	if tangent.Dot(march) < 0 {
		tangent = tangent.Neg()
	}
	return tangent.Scale(length), nil
}

// InBounds projects p onto the reference plane at the seed distance and
// reports whether the projection falls inside the field-of-view ellipse.
func (f *Field) InBounds(p geom.Vec3) (bool, error) {
	// Similar-triangles projection along the observer-to-face axis.
	depth := p.Dot(geom.AxisY)
	if math.Abs(depth) < projEpsilon {
		return false, fmt.Errorf("%w: point %s lies in the observer plane", ErrDegenerateProjection, p)
	}
	proj := p.Scale(f.cfg.Distance / depth)

	x := proj.X / f.rH
	z := proj.Z / f.rV
	return x*x+z*z <= 1, nil
}
