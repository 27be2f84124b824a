package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable wraps failures to open or read a matrix source.
	ErrSourceUnavailable = errors.New("matrix source unavailable")

	// ErrDegenerateHorizon reports a horizon with a non-positive dimension.
	ErrDegenerateHorizon = errors.New("degenerate horizon")
)

// DimensionError reports a matrix whose shape does not match the horizon.
type DimensionError struct {
	Source   string
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: expected %dx%d matrix, got %dx%d",
		e.Source, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// InvalidValueError reports a cell that parsed but is outside its allowed
// range (for example a preference outside [0,1] or a negative cost).
type InvalidValueError struct {
	Source string
	Row    int
	Col    int
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: row %d col %d: value %g %s",
		e.Source, e.Row, e.Col, e.Value, e.Reason)
}
