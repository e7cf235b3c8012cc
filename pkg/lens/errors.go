package lens

import "errors"

// Marching failures indicate an unrepairable geometric configuration, not
// a transient condition. They abort mesh construction immediately; a
// truncated mesh is never returned.
var (
	// ErrInvalidConfig is wrapped by every Config.Validate violation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDegenerateInput is returned when a surface point coincides with
	// the observer or the source, leaving a reflection direction undefined.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrDegenerateTangent is returned when the local normal is parallel
	// to a principal axis and no tangent step direction exists.
	ErrDegenerateTangent = errors.New("degenerate tangent")

	// ErrDegenerateProjection is returned when a point lies in the
	// observer plane (y = 0) and cannot be projected onto the bounds plane.
	ErrDegenerateProjection = errors.New("degenerate projection")

	// ErrMarchLimit is returned when a single marching direction exceeds
	// the safety cap, which indicates a pathological configuration.
	ErrMarchLimit = errors.New("march step limit exceeded")
)
