package trajectory

import (
	"fmt"

	"github.com/pkg/errors"
)

var errTooFewKnots = errors.New("spline requires at least two knots")

// NewRowCountMismatchError returns an error indicating that the value or
// derivative rows do not pair one-to-one with the sample times.
func NewRowCountMismatchError(times, values, derivatives int) error {
	return fmt.Errorf("parallel rows do not match: %d times, %d values, %d derivatives", times, values, derivatives)
}

// NewRowWidthMismatchError returns an error indicating that a row's width
// differs from the spline dimension.
func NewRowWidthMismatchError(row, dim int) error {
	return fmt.Errorf("row %d does not have expected width %d", row, dim)
}

// NewTimesNotIncreasingError returns an error indicating that the knot times
// are not strictly increasing.
func NewTimesNotIncreasingError(index int, t float64) error {
	return fmt.Errorf("knot times must be strictly increasing, time %f at index %d repeats or decreases", t, index)
}

// NewTimeOutOfRangeError returns an error indicating that a query time falls
// outside the covered interval.
func NewTimeOutOfRangeError(t, start, end float64) error {
	return fmt.Errorf("time %f out of range [%f, %f]", t, start, end)
}
