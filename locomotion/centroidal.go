package locomotion

import (
	"github.com/edaniels/golog"

	"github.com/gaitworks/locomotion/contactsequence"
	"github.com/gaitworks/locomotion/trajectory"
)

const (
	// comWidth counts the COM position and velocity columns at the front of a
	// centroidal state row.
	comWidth = 6
	// momentumWidth counts the angular momentum columns at the back of a
	// centroidal state row.
	momentumWidth = 3

	// The raw control samples are a discretized piecewise polynomial; each
	// phase is refit at degree three so force rates come from the analytic
	// derivative rather than differencing noisy samples.
	controlFitDegree = 3
	controlFitTol    = 1e-5
)

// CentroidalTrajectory is the smooth centroidal representation of a contact
// sequence: COM motion, angular momentum, and one generalized-force trajectory
// per contact patch. Each spline pairs values with their time derivatives.
type CentroidalTrajectory struct {
	// ComVcom interpolates COM position and velocity, with COM velocity and
	// acceleration as the derivative.
	ComVcom *trajectory.CubicHermiteSpline
	// AngularMomentum interpolates the centroidal angular momentum, linear
	// part first (mass-scaled COM velocity), with its rate as the derivative.
	AngularMomentum *trajectory.CubicHermiteSpline

	names  []string
	forces map[string]*trajectory.CubicHermiteSpline
}

// PatchNames returns the patch names in configured order.
func (ct *CentroidalTrajectory) PatchNames() []string {
	return ct.names
}

// Force returns the generalized-force trajectory for the named patch; its
// derivative is the force rate.
func (ct *CentroidalTrajectory) Force(name string) (*trajectory.CubicHermiteSpline, error) {
	traj, ok := ct.forces[name]
	if !ok {
		return nil, NewPatchMissingError(name)
	}
	return traj, nil
}

// BuildCentroidalTrajectory reshapes a contact sequence into a
// CentroidalTrajectory for a robot of the given total mass. Phase timelines
// are concatenated, controls are refit per phase and sliced into per-patch
// columns in patch order, repeated boundary timestamps are compacted away, and
// cubic Hermite interpolants are built over the result.
func BuildCentroidalTrajectory(
	cs *contactsequence.ContactSequence,
	mass float64,
	patches []ContactPatch,
	logger golog.Logger,
) (*CentroidalTrajectory, error) {
	if mass <= 0 {
		return nil, errNonPositiveMass
	}
	if len(patches) == 0 {
		return nil, errNoPatches
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	phases := cs.MotionPhases()
	if len(phases) == 0 {
		return nil, errEmptyMotion
	}

	ranges, err := PatchRanges(patches, phases[0].ControlWidth())
	if err != nil {
		return nil, err
	}

	total := cs.NumSamples()
	times := make([]float64, 0, total)
	comVcom := newRows(total, comWidth)
	vcomAcom := newRows(total, comWidth)
	hg := newRows(total, comWidth)
	dhg := newRows(total, comWidth)
	force := make([][][]float64, len(patches))
	forceRate := make([][][]float64, len(patches))
	for p, patch := range patches {
		force[p] = newRows(total, patch.width())
		forceRate[p] = newRows(total, patch.width())
	}

	n := 0
	for i := range phases {
		phase := &phases[i]
		_, stateCols := phase.State.Dims()
		if stateCols < comWidth+momentumWidth {
			return nil, NewStateWidthError(stateCols, comWidth+momentumWidth)
		}
		if phase.ControlWidth() != ranges[len(ranges)-1].End {
			return nil, NewControlWidthError(phase.ControlWidth(), ranges[len(ranges)-1].End)
		}

		for r := 0; r < phase.NumSamples(); r++ {
			row := n + r
			for j := 0; j < comWidth; j++ {
				comVcom[row][j] = phase.State.At(r, j)
				vcomAcom[row][j] = phase.StateDerivative.At(r, j)
			}
			// Linear angular momentum is mass times COM velocity; the angular
			// part is carried in the last state columns.
			for j := 0; j < momentumWidth; j++ {
				hg[row][j] = mass * phase.State.At(r, comWidth/2+j)
				dhg[row][j] = mass * phase.StateDerivative.At(r, comWidth/2+j)
				hg[row][momentumWidth+j] = phase.State.At(r, stateCols-momentumWidth+j)
				dhg[row][momentumWidth+j] = phase.StateDerivative.At(r, stateCols-momentumWidth+j)
			}
		}

		poly, err := trajectory.PolyFit(phase.Times, phase.Control, controlFitDegree, controlFitTol)
		if err != nil {
			return nil, err
		}
		for r, t := range phase.Times {
			row := n + r
			vals := poly.Eval(t)
			rates := poly.EvalDerivative(t)
			for p, cr := range ranges {
				copy(force[p][row], vals[cr.Start:cr.End])
				copy(forceRate[p][row], rates[cr.Start:cr.End])
			}
		}

		times = append(times, phase.Times...)
		n += phase.NumSamples()
	}

	keep := deduplicateIndices(times)
	logger.Debugf("centroidal timeline has %d samples, %d after dropping duplicate boundary instants", total, len(keep))
	dedupedTimes := filterFloats(times, keep)

	out := &CentroidalTrajectory{
		names:  make([]string, 0, len(patches)),
		forces: make(map[string]*trajectory.CubicHermiteSpline, len(patches)),
	}
	if out.ComVcom, err = trajectory.NewCubicHermiteSpline(
		dedupedTimes, filterRows(comVcom, keep), filterRows(vcomAcom, keep),
	); err != nil {
		return nil, err
	}
	if out.AngularMomentum, err = trajectory.NewCubicHermiteSpline(
		dedupedTimes, filterRows(hg, keep), filterRows(dhg, keep),
	); err != nil {
		return nil, err
	}
	for p, patch := range patches {
		traj, err := trajectory.NewCubicHermiteSpline(
			dedupedTimes, filterRows(force[p], keep), filterRows(forceRate[p], keep),
		)
		if err != nil {
			return nil, err
		}
		out.names = append(out.names, patch.Name)
		out.forces[patch.Name] = traj
	}
	return out, nil
}

func newRows(n, width int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, width)
	}
	return rows
}
