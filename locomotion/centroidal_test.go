package locomotion

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/gaitworks/locomotion/contactsequence"
)

const (
	testMass       = 90.0
	testStateWidth = 9
)

// stateVal and stateDot define the synthetic centroidal state used by the
// tests: linear in time so the fitted controls and finite checks are exact.
func stateVal(t float64, c int) float64 {
	return 0.1*float64(c+1)*t + float64(c)
}

func stateDot(_ float64, c int) float64 {
	return 0.1 * float64(c+1)
}

func controlVal(t float64, c int) float64 {
	return 0.1*float64(c+1)*t + float64(c)
}

func controlRate(_ float64, c int) float64 {
	return 0.1 * float64(c+1)
}

func makeTestPhase(times []float64, controlWidth int) contactsequence.Phase {
	n := len(times)
	state := mat.NewDense(n, testStateWidth, nil)
	deriv := mat.NewDense(n, testStateWidth, nil)
	var control *mat.Dense
	if controlWidth > 0 {
		control = mat.NewDense(n, controlWidth, nil)
	}
	for r, ti := range times {
		for c := 0; c < testStateWidth; c++ {
			state.Set(r, c, stateVal(ti, c))
			deriv.Set(r, c, stateDot(ti, c))
		}
		for c := 0; c < controlWidth; c++ {
			control.Set(r, c, controlVal(ti, c))
		}
	}
	return contactsequence.Phase{Times: times, State: state, StateDerivative: deriv, Control: control}
}

func quadrupedPatches() []ContactPatch {
	return []ContactPatch{
		{Name: "RF_patch", FrameName: "rf_foot"},
		{Name: "LF_patch", FrameName: "lf_foot"},
		{Name: "RH_patch", FrameName: "rh_foot"},
		{Name: "LH_patch", FrameName: "lh_foot"},
	}
}

func makeTestSequence() *contactsequence.ContactSequence {
	return &contactsequence.ContactSequence{Phases: []contactsequence.Phase{
		makeTestPhase([]float64{0, 0.5, 1, 1.5, 2}, 24),
		makeTestPhase([]float64{2, 2.5, 3, 3.5, 4}, 24),
		makeTestPhase([]float64{4}, 0),
	}}
}

func TestBuildCentroidalTrajectory(t *testing.T) {
	logger := golog.NewTestLogger(t)
	ct, err := BuildCentroidalTrajectory(makeTestSequence(), testMass, quadrupedPatches(), logger)
	test.That(t, err, test.ShouldBeNil)

	// the shared boundary at t=2 is sampled by both phases but appears once
	wantTimes := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}
	test.That(t, ct.ComVcom.Times(), test.ShouldResemble, wantTimes)

	// every parallel output has the same deduplicated row count
	test.That(t, ct.AngularMomentum.Times(), test.ShouldHaveLength, len(wantTimes))
	for _, name := range ct.PatchNames() {
		force, err := ct.Force(name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, force.Times(), test.ShouldHaveLength, len(wantTimes))
		test.That(t, force.Dimension(), test.ShouldEqual, 6)
	}

	for _, ti := range wantTimes {
		com, err := ct.ComVcom.Evaluate(ti)
		test.That(t, err, test.ShouldBeNil)
		for j := 0; j < 6; j++ {
			test.That(t, com[j], test.ShouldAlmostEqual, stateVal(ti, j), 1e-10)
		}
		comDot, err := ct.ComVcom.EvaluateDerivative(ti)
		test.That(t, err, test.ShouldBeNil)
		for j := 0; j < 6; j++ {
			test.That(t, comDot[j], test.ShouldAlmostEqual, stateDot(ti, j), 1e-10)
		}
	}
}

func TestAngularMomentumScaling(t *testing.T) {
	logger := golog.NewTestLogger(t)
	ct, err := BuildCentroidalTrajectory(makeTestSequence(), testMass, quadrupedPatches(), logger)
	test.That(t, err, test.ShouldBeNil)

	for _, ti := range ct.AngularMomentum.Times() {
		hg, err := ct.AngularMomentum.Evaluate(ti)
		test.That(t, err, test.ShouldBeNil)
		dhg, err := ct.AngularMomentum.EvaluateDerivative(ti)
		test.That(t, err, test.ShouldBeNil)
		for j := 0; j < 3; j++ {
			// linear part is mass times the COM velocity columns
			test.That(t, hg[j], test.ShouldAlmostEqual, testMass*stateVal(ti, 3+j), 1e-8)
			test.That(t, dhg[j], test.ShouldAlmostEqual, testMass*stateDot(ti, 3+j), 1e-8)
			// angular part copies the trailing state columns
			test.That(t, hg[3+j], test.ShouldAlmostEqual, stateVal(ti, 6+j), 1e-10)
			test.That(t, dhg[3+j], test.ShouldAlmostEqual, stateDot(ti, 6+j), 1e-10)
		}
	}
}

func TestPatchForceSlicing(t *testing.T) {
	logger := golog.NewTestLogger(t)
	ct, err := BuildCentroidalTrajectory(makeTestSequence(), testMass, quadrupedPatches(), logger)
	test.That(t, err, test.ShouldBeNil)

	// the fourth patch owns control columns 18 through 23
	force, err := ct.Force("LH_patch")
	test.That(t, err, test.ShouldBeNil)
	for _, ti := range force.Times() {
		vals, err := force.Evaluate(ti)
		test.That(t, err, test.ShouldBeNil)
		rates, err := force.EvaluateDerivative(ti)
		test.That(t, err, test.ShouldBeNil)
		for j := 0; j < 6; j++ {
			test.That(t, vals[j], test.ShouldAlmostEqual, controlVal(ti, 18+j), 1e-6)
			test.That(t, rates[j], test.ShouldAlmostEqual, controlRate(ti, 18+j), 1e-6)
		}
	}

	_, err = ct.Force("tail_patch")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBuildCentroidalTrajectoryFirstOccurrenceWins(t *testing.T) {
	logger := golog.NewTestLogger(t)
	// phases disagree at the shared boundary; the first phase's row must win
	first := makeTestPhase([]float64{0, 1, 2}, 6)
	second := makeTestPhase([]float64{2, 3, 4}, 6)
	second.State.Set(0, 0, 12345)
	cs := &contactsequence.ContactSequence{Phases: []contactsequence.Phase{
		first, second, makeTestPhase([]float64{4}, 0),
	}}

	ct, err := BuildCentroidalTrajectory(cs, testMass, []ContactPatch{{Name: "only_patch"}}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ct.ComVcom.Times(), test.ShouldResemble, []float64{0, 1, 2, 3, 4})

	com, err := ct.ComVcom.Evaluate(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, com[0], test.ShouldAlmostEqual, stateVal(2, 0), 1e-10)
}

func TestBuildCentroidalTrajectoryErrors(t *testing.T) {
	logger := golog.NewTestLogger(t)
	cs := makeTestSequence()
	patches := quadrupedPatches()

	_, err := BuildCentroidalTrajectory(cs, 0, patches, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = BuildCentroidalTrajectory(cs, testMass, nil, logger)
	test.That(t, err, test.ShouldNotBeNil)

	// three 6-wide patches cannot partition 24 control columns
	_, err = BuildCentroidalTrajectory(cs, testMass, patches[:3], logger)
	test.That(t, err, test.ShouldNotBeNil)

	// a state too narrow for COM motion plus angular momentum is rejected
	narrow := &contactsequence.ContactSequence{Phases: []contactsequence.Phase{
		{
			Times:           []float64{0, 1},
			State:           mat.NewDense(2, 8, nil),
			StateDerivative: mat.NewDense(2, 8, nil),
			Control:         mat.NewDense(2, 6, nil),
		},
		{
			Times:           []float64{1},
			State:           mat.NewDense(1, 8, nil),
			StateDerivative: mat.NewDense(1, 8, nil),
		},
	}}
	_, err = BuildCentroidalTrajectory(narrow, testMass, []ContactPatch{{Name: "only_patch"}}, logger)
	test.That(t, err, test.ShouldNotBeNil)
}
