package universe

import (
	"errors"
	"fmt"
)

var (
	ErrShape    = errors.New("malformed seed")
	ErrIndex    = errors.New("position out of grid bounds")
	ErrTemplate = errors.New("unknown template")
)

//ShapeError reports a seed matrix that is not rectangular (or is empty)
//Row is the first offending row, Want is the expected row length
type ShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%v: seed has no cells", ErrShape)
	}
	return fmt.Sprintf("%v: row %d has %d cells, want %d", ErrShape, e.Row, e.Got, e.Want)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

//IndexError reports a lookup outside the grid
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) not in %dx%d", ErrIndex, e.X, e.Y, e.Width, e.Height)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

//TemplateError reports a request for a template that is not registered
type TemplateError struct {
	Name string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%v %q", ErrTemplate, e.Name)
}

func (e *TemplateError) Is(target error) bool { return target == ErrTemplate }
