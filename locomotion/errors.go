package locomotion

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	errNoPatches       = errors.New("at least one contact patch is required")
	errEmptyMotion     = errors.New("contact sequence has no motion phases")
	errNonPositiveMass = errors.New("robot mass must be positive")
	errTooFewStates    = errors.New("at least two state samples are required")
	errBadSamplePeriod = errors.New("sample period must be positive")
)

// NewPatchMissingError returns an error indicating that no trajectory exists
// for the named patch.
func NewPatchMissingError(name string) error {
	return fmt.Errorf("no trajectory for patch named %q", name)
}

// NewControlWidthError returns an error indicating that the control columns do
// not partition into the configured patch ranges.
func NewControlWidthError(actual, expected int) error {
	return fmt.Errorf("control width %d does not match the %d columns spanned by the patch ranges", actual, expected)
}

// NewStateWidthError returns an error indicating that the state matrix is too
// narrow to carry COM motion and angular momentum.
func NewStateWidthError(cols, min int) error {
	return fmt.Errorf("state width %d is narrower than the minimum %d (COM position and velocity plus angular momentum)", cols, min)
}

// NewSampleCountMismatchError returns an error indicating that position and
// velocity samples do not pair one-to-one.
func NewSampleCountMismatchError(positions, velocities int) error {
	return fmt.Errorf("%d position samples do not pair with %d velocity samples", positions, velocities)
}
