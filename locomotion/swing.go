package locomotion

import (
	"github.com/edaniels/golog"

	"github.com/gaitworks/locomotion/referenceframe"
	"github.com/gaitworks/locomotion/trajectory"
	"github.com/gaitworks/locomotion/utils"
)

// SwingTrajectories holds one smooth end-effector trajectory per contact
// patch, in the order the patches were configured.
type SwingTrajectories struct {
	names []string
	trajs map[string]*trajectory.CubicHermiteSpline
}

// PatchNames returns the patch names in configured order.
func (st *SwingTrajectories) PatchNames() []string {
	return st.names
}

// Trajectory returns the swing trajectory for the named patch.
func (st *SwingTrajectories) Trajectory(name string) (*trajectory.CubicHermiteSpline, error) {
	traj, ok := st.trajs[name]
	if !ok {
		return nil, NewPatchMissingError(name)
	}
	return traj, nil
}

// BuildSwingTrajectories runs forward kinematics over a sampled state
// trajectory and interpolates each patch's end-effector motion. positions and
// velocities are parallel rows of joint inputs keyed by frame name, sampled at
// the fixed samplePeriod; each patch's world position is the spline value and
// its world linear velocity the spline derivative, over the timestamp axis
// i * samplePeriod.
func BuildSwingTrajectories(
	fs referenceframe.FrameSystem,
	patches []ContactPatch,
	positions, velocities []map[string][]referenceframe.Input,
	samplePeriod float64,
	logger golog.Logger,
) (*SwingTrajectories, error) {
	if len(patches) == 0 {
		return nil, errNoPatches
	}
	if len(positions) < 2 {
		return nil, errTooFewStates
	}
	if len(velocities) != len(positions) {
		return nil, NewSampleCountMismatchError(len(positions), len(velocities))
	}
	if samplePeriod <= 0 {
		return nil, errBadSamplePeriod
	}

	n := len(positions)
	times := utils.Linspace(0, samplePeriod*float64(n-1), n)
	out := &SwingTrajectories{
		names: make([]string, 0, len(patches)),
		trajs: make(map[string]*trajectory.CubicHermiteSpline, len(patches)),
	}
	for _, patch := range patches {
		points := make([][]float64, n)
		linVels := make([][]float64, n)
		for i := 0; i < n; i++ {
			pose, err := fs.PoseInWorld(patch.FrameName, positions[i])
			if err != nil {
				return nil, err
			}
			vel, err := referenceframe.LinearVelocityInWorld(fs, patch.FrameName, positions[i], velocities[i])
			if err != nil {
				return nil, err
			}
			pt := pose.Point()
			points[i] = []float64{pt.X, pt.Y, pt.Z}
			linVels[i] = []float64{vel.X, vel.Y, vel.Z}
		}
		traj, err := trajectory.NewCubicHermiteSpline(times, points, linVels)
		if err != nil {
			return nil, err
		}
		out.names = append(out.names, patch.Name)
		out.trajs[patch.Name] = traj
		logger.Debugf("built swing trajectory for patch %s over %d samples", patch.Name, n)
	}
	return out, nil
}
