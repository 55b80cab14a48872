// Package contactsequence defines the container for a piecewise locomotion
// record: an ordered list of phases, each carrying its own time axis and
// parallel state, state-derivative, and control samples.
package contactsequence

import "gonum.org/v1/gonum/mat"

// Phase is one time-bounded segment of a locomotion plan. The three sample
// matrices are parallel to Times, one row per sampling instant.
type Phase struct {
	// Times is the local time axis of the phase, non-decreasing, expressed on
	// the global clock of the sequence.
	Times []float64
	// State holds the centroidal state samples. The first six columns are COM
	// position and velocity, the last three the angular momentum components.
	State *mat.Dense
	// StateDerivative holds the time derivatives of State, column for column.
	StateDerivative *mat.Dense
	// Control holds the flattened per-patch generalized forces.
	Control *mat.Dense
}

// NumSamples returns the number of sampling instants in the phase.
func (p *Phase) NumSamples() int {
	return len(p.Times)
}

// ControlWidth returns the number of control columns, 0 if the phase carries
// no controls.
func (p *Phase) ControlWidth() int {
	if p.Control == nil {
		return 0
	}
	_, cols := p.Control.Dims()
	return cols
}

// Validate checks that every sample matrix pairs row-for-row with the time
// axis and that state and derivative widths agree.
func (p *Phase) Validate() error {
	n := len(p.Times)
	stateRows, stateCols := p.State.Dims()
	derivRows, derivCols := p.StateDerivative.Dims()
	if stateRows != n || derivRows != n {
		return NewPhaseRowMismatchError(n, stateRows, derivRows)
	}
	if stateCols != derivCols {
		return NewStateWidthMismatchError(stateCols, derivCols)
	}
	if p.Control != nil {
		controlRows, _ := p.Control.Dims()
		if controlRows != n {
			return NewPhaseRowMismatchError(n, controlRows, controlRows)
		}
	}
	return nil
}

// ContactSequence is an ordered list of phases describing a locomotion plan.
// The final phase is a zero-duration terminal marker and carries no motion.
type ContactSequence struct {
	Phases []Phase
}

// MotionPhases returns every phase except the terminal marker.
func (cs *ContactSequence) MotionPhases() []Phase {
	if len(cs.Phases) == 0 {
		return nil
	}
	return cs.Phases[:len(cs.Phases)-1]
}

// NumSamples returns the total number of sampling instants across all motion
// phases, counting shared boundary instants once per phase.
func (cs *ContactSequence) NumSamples() int {
	total := 0
	for i := range cs.MotionPhases() {
		total += cs.Phases[i].NumSamples()
	}
	return total
}

// Validate checks every phase of the sequence.
func (cs *ContactSequence) Validate() error {
	if len(cs.Phases) == 0 {
		return errEmptySequence
	}
	for i := range cs.Phases {
		if err := cs.Phases[i].Validate(); err != nil {
			return NewPhaseInvalidError(i, err)
		}
	}
	return nil
}
