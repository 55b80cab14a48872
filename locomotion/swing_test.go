package locomotion

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/gaitworks/locomotion/referenceframe"
)

// swingFrameSystem builds a toy biped: two vertical prismatic "legs" hanging
// off the world.
func swingFrameSystem(t *testing.T) referenceframe.FrameSystem {
	t.Helper()
	fs := referenceframe.NewEmptySimpleFrameSystem("biped")
	for _, name := range []string{"l_foot", "r_foot"} {
		leg, err := referenceframe.NewTranslationalFrame(name, r3.Vector{Z: 1}, referenceframe.UnlimitedJoint)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, fs.AddFrame(leg, fs.World()), test.ShouldBeNil)
	}
	return fs
}

func TestBuildSwingTrajectories(t *testing.T) {
	logger := golog.NewTestLogger(t)
	fs := swingFrameSystem(t)
	patches := []ContactPatch{
		{Name: "LF_patch", FrameName: "l_foot"},
		{Name: "RF_patch", FrameName: "r_foot"},
	}

	const period = 0.005
	const n = 6
	positions := make([]map[string][]referenceframe.Input, n)
	velocities := make([]map[string][]referenceframe.Input, n)
	heights := make([]float64, n)
	rates := make([]float64, n)
	for i := 0; i < n; i++ {
		ti := float64(i) * period
		heights[i] = 0.5 * ti * ti
		rates[i] = ti
		positions[i] = map[string][]referenceframe.Input{
			"l_foot": {{Value: heights[i]}},
			"r_foot": {{Value: -heights[i]}},
		}
		velocities[i] = map[string][]referenceframe.Input{
			"l_foot": {{Value: rates[i]}},
			"r_foot": {{Value: -rates[i]}},
		}
	}

	swings, err := BuildSwingTrajectories(fs, patches, positions, velocities, period, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, swings.PatchNames(), test.ShouldResemble, []string{"LF_patch", "RF_patch"})

	left, err := swings.Trajectory("LF_patch")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, left.Dimension(), test.ShouldEqual, 3)
	test.That(t, left.Times(), test.ShouldHaveLength, n)
	test.That(t, left.EndTime(), test.ShouldAlmostEqual, period*(n-1))

	for i := 0; i < n; i++ {
		ti := float64(i) * period
		pos, err := left.Evaluate(ti)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pos[2], test.ShouldAlmostEqual, heights[i], 1e-10)

		vel, err := left.EvaluateDerivative(ti)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, vel[2], test.ShouldAlmostEqual, rates[i], 1e-6)
	}

	right, err := swings.Trajectory("RF_patch")
	test.That(t, err, test.ShouldBeNil)
	pos, err := right.Evaluate(period)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pos[2], test.ShouldAlmostEqual, -heights[1], 1e-10)

	_, err = swings.Trajectory("tail")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBuildSwingTrajectoriesErrors(t *testing.T) {
	logger := golog.NewTestLogger(t)
	fs := swingFrameSystem(t)
	patches := []ContactPatch{{Name: "LF_patch", FrameName: "l_foot"}}
	positions := []map[string][]referenceframe.Input{
		{"l_foot": {{Value: 0}}, "r_foot": {{Value: 0}}},
		{"l_foot": {{Value: 1}}, "r_foot": {{Value: 0}}},
	}

	_, err := BuildSwingTrajectories(fs, nil, positions, positions, 0.01, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = BuildSwingTrajectories(fs, patches, positions[:1], positions[:1], 0.01, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = BuildSwingTrajectories(fs, patches, positions, positions[:1], 0.01, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = BuildSwingTrajectories(fs, patches, positions, positions, 0, logger)
	test.That(t, err, test.ShouldNotBeNil)

	// an end effector the model does not know is a lookup failure
	ghost := []ContactPatch{{Name: "T_patch", FrameName: "tail"}}
	_, err = BuildSwingTrajectories(fs, ghost, positions, positions, 0.01, logger)
	test.That(t, err, test.ShouldNotBeNil)
}
