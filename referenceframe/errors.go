package referenceframe

import "fmt"

// NewFrameMissingError returns an error indicating that the given frame is
// not present in the frame system.
func NewFrameMissingError(frameName string) error {
	return fmt.Errorf("frame with name %q not in frame system", frameName)
}

// NewFrameAlreadyExistsError returns an error indicating that a frame of the
// given name already exists in the frame system.
func NewFrameAlreadyExistsError(frameName string) error {
	return fmt.Errorf("frame with name %q already in frame system", frameName)
}

// NewParentFrameMissingError returns an error indicating that a frame is
// missing a parent.
func NewParentFrameMissingError() error {
	return fmt.Errorf("parent frame is nil")
}

// NewIncorrectInputLengthError returns an error indicating that the length of
// the inputs given to a frame does not match its DoF.
func NewIncorrectInputLengthError(actual, expected int) error {
	return fmt.Errorf("number of inputs does not match frame DoF, expected %d but got %d", expected, actual)
}
