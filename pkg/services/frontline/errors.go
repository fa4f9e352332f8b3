package frontline

import "errors"

var (
	// ErrNoValidLine is returned when the first date of a front has no events.
	ErrNoValidLine = errors.New("no valid line of battle")
	ErrEmptyLine   = errors.New("empty line of battle")
	ErrGeometry    = errors.New("geometry operation failed")
)
