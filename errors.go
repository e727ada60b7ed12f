package mvt

import "errors"

var (
	// ErrDegenerateTransform is returned when a matrix with a singular
	// linear part has to be inverted.
	ErrDegenerateTransform = errors.New("mvt: degenerate transform (zero determinant)")

	// ErrInvalidArgument is returned for malformed construction input, such
	// as a rectangle mapping with non-positive extents or a segment with the
	// wrong number of points.
	ErrInvalidArgument = errors.New("mvt: invalid argument")
)
