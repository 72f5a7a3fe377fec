package svgdriver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInsertionTarget is matched by InvalidInsertionTargetError.
	ErrInvalidInsertionTarget = errors.New("svgdriver: invalid insertion target")

	// ErrImageAssetUnavailable is returned when an image file
	// can't be read or decoded.
	ErrImageAssetUnavailable = errors.New("svgdriver: image asset unavailable")

	// ErrInvalidAngle is returned for infinite or NaN angles.
	ErrInvalidAngle = errors.New("svgdriver: invalid angle")

	// ErrFinalized is returned when drawing into a finalized document.
	ErrFinalized = errors.New("svgdriver: document already finalized")

	// ErrAlreadyFinalized is returned by a second call to Finalize.
	ErrAlreadyFinalized = errors.New("svgdriver: Finalize called twice")

	// ErrNotFinalized is returned when writing a document
	// before calling Finalize.
	ErrNotFinalized = errors.New("svgdriver: document not finalized")
)

// InvalidInsertionTargetError is returned when the group
// the chart should be inserted into does not exist.
type InvalidInsertionTargetError struct {
	ID string
}

func (e *InvalidInsertionTargetError) Error() string {
	return fmt.Sprintf("svgdriver: invalid insertion target: no element with id %q", e.ID)
}

func (e *InvalidInsertionTargetError) Is(target error) bool { return target == ErrInvalidInsertionTarget }
