// Package lens computes the shape of a reflective freeform surface that
// redirects light from a fixed point source into a fixed observer point.
//
// The observer point (center of the eye) is the coordinate origin: x out
// of the right ear, y out of the face, z up. All dimensions are in
// millimeters, all angles in degrees. The surface is grown outward from a
// seed point on the y axis by iterative marching and is bounded by an
// elliptical field of view.
package lens

import (
	"errors"
	"fmt"
	"math"

	"reflens/pkg/geom"
)

// Config holds the parameters of a single reflector surface. It is read
// once before marching begins and never mutated; every core function
// receives it through a Field rather than ambient state.
type Config struct {
	Name string `json:"name,omitempty"`

	HFOV float64 `json:"h_fov"` // horizontal field of view, degrees
	VFOV float64 `json:"v_fov"` // vertical field of view, degrees

	// Step sizes are the length of each line segment composing the
	// surface approximation.
	HStep float64 `json:"h_step"` // mm
	VStep float64 `json:"v_step"` // mm

	// Distance is the seed distance from the observer point to the
	// surface along the observer-to-face axis.
	Distance float64 `json:"distance"` // mm

	// Source is the point light emitter, relative to the observer point.
	Source geom.Vec3 `json:"source"` // mm
}

// Validate checks the configuration before any marching starts. All
// violations are reported, each wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	// A field of view of 180° or more has no defined ellipse semi-axis
	// (tangent blows up at 90°).
	if !(c.HFOV > 0 && c.HFOV < 180) || math.IsNaN(c.HFOV) {
		fail("h-fov must be in (0, 180) degrees, got %v", c.HFOV)
	}
	if !(c.VFOV > 0 && c.VFOV < 180) || math.IsNaN(c.VFOV) {
		fail("v-fov must be in (0, 180) degrees, got %v", c.VFOV)
	}
	if !(c.HStep > 0) || math.IsInf(c.HStep, 0) {
		fail("h-step must be positive and finite, got %v", c.HStep)
	}
	if !(c.VStep > 0) || math.IsInf(c.VStep, 0) {
		fail("v-step must be positive and finite, got %v", c.VStep)
	}
	if !(c.Distance > 0) || math.IsInf(c.Distance, 0) {
		fail("distance must be positive and finite, got %v", c.Distance)
	}
	if !c.Source.IsFinite() {
		fail("source coordinates must be finite, got %s", c.Source)
	} else if c.Source.LengthSquared() == 0 {
		fail("source must not coincide with the observer point")
	}

	return errors.Join(errs...)
}

// SeedPoint returns the canonical seed for this configuration: the point
// at the seed distance from the observer along the observer-to-face axis.
func (c Config) SeedPoint() geom.Vec3 {
	return geom.Vec3{Y: c.Distance}
}
