package svgtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for the text layout.
var (
	// ErrTextDoesNotFit is matched by TextDoesNotFitError.
	ErrTextDoesNotFit = errors.New("svgtext: text does not fit")

	// ErrAlreadyFlushed is returned by a second call to Flush.
	ErrAlreadyFlushed = errors.New("svgtext: pending texts already flushed")
)

// TextDoesNotFitError is returned when a text can't be written in its box,
// even at the minimum font size.
type TextDoesNotFitError struct {
	Text          string
	MinSize       float64
	Width, Height float64
}

func (e *TextDoesNotFitError) Error() string {
	return fmt.Sprintf("svgtext: text %q does not fit in a %gx%g box at font size %g", e.Text, e.Width, e.Height, e.MinSize)
}

func (e *TextDoesNotFitError) Is(target error) bool { return target == ErrTextDoesNotFit }
