package contactsequence

import (
	"fmt"

	"github.com/pkg/errors"
)

var errEmptySequence = errors.New("contact sequence has no phases")

// NewPhaseRowMismatchError returns an error indicating that a phase's sample
// matrices do not pair row-for-row with its time axis.
func NewPhaseRowMismatchError(times, stateRows, derivRows int) error {
	return fmt.Errorf("phase sample rows do not match time axis: %d times, %d state rows, %d derivative rows",
		times, stateRows, derivRows)
}

// NewStateWidthMismatchError returns an error indicating that the state and
// state-derivative matrices differ in width.
func NewStateWidthMismatchError(stateCols, derivCols int) error {
	return fmt.Errorf("state width %d does not match state derivative width %d", stateCols, derivCols)
}

// NewPhaseInvalidError wraps a phase validation failure with its index.
func NewPhaseInvalidError(index int, err error) error {
	return errors.Wrapf(err, "phase %d invalid", index)
}
