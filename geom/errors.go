package geom

import "errors"

var (
	// ErrEmptyPolygon indicates an operation was attempted on a polygon with
	// fewer than 3 points.
	ErrEmptyPolygon = errors.New("geom: polygon has fewer than 3 points")

	// ErrBadStep indicates a TrackGrid was constructed with a non-positive step.
	ErrBadStep = errors.New("geom: track grid step must be positive")

	// ErrBadRange indicates a TrackGrid's end is before its start.
	ErrBadRange = errors.New("geom: track grid end before start")
)
