// Package referenceframe defines frames of reference for a kinematic model and
// does the math of transforming between them. The locomotion packages use it as
// their forward-kinematics engine: given a model of a legged robot and a set of
// joint inputs, it answers where a named frame (a foot, a contact patch) is in
// the world and how fast it is moving.
package referenceframe

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	spatial "github.com/gaitworks/locomotion/spatialmath"
	"github.com/gaitworks/locomotion/utils"
)

// OOBErrString is a string that all out-of-bounds errors contain, so that they
// can be checked for distinct from other Transform errors.
const OOBErrString = "input out of bounds"

// Limit represents the min and max allowable values of a single degree of freedom.
type Limit struct {
	Min float64
	Max float64
}

func limitsAlmostEqual(a, b []Limit) bool {
	if len(a) != len(b) {
		return false
	}
	const epsilon = 1e-5
	for idx, x := range a {
		if !utils.Float64AlmostEqual(x.Min, b[idx].Min, epsilon) ||
			!utils.Float64AlmostEqual(x.Max, b[idx].Max, epsilon) {
			return false
		}
	}
	return true
}

// Frame represents a single reference frame, e.g. a joint, a link, or a foot.
type Frame interface {
	// Name returns the name of the frame.
	Name() string

	// Transform is the pose (rotation and translation) that goes FROM the
	// current frame TO the parent's frame, given the frame's inputs.
	Transform([]Input) (spatial.Pose, error)

	// DoF returns a slice with length equal to the number of degrees of
	// freedom, each element describing the movement limit of that DoF. For
	// frames that do not move it returns an empty slice.
	DoF() []Limit

	// AlmostEquals returns whether the other frame differs only by floating
	// point imprecision.
	AlmostEquals(otherFrame Frame) bool
}

// a static Frame is a simple coordinate system that encodes a fixed translation
// and rotation from the current frame to the parent frame.
type staticFrame struct {
	name      string
	transform spatial.Pose
}

// NewStaticFrame creates a frame given a pose relative to its parent. The pose
// is fixed for all time. Pose is not allowed to be nil.
func NewStaticFrame(name string, pose spatial.Pose) (Frame, error) {
	if pose == nil {
		return nil, errors.New("pose is not allowed to be nil")
	}
	return &staticFrame{name, pose}, nil
}

// NewZeroStaticFrame creates a frame with no translation or orientation changes.
func NewZeroStaticFrame(name string) Frame {
	return &staticFrame{name, spatial.NewZeroPose()}
}

// FrameFromPoint creates a new static Frame from a 3D point.
func FrameFromPoint(name string, point r3.Vector) (Frame, error) {
	return NewStaticFrame(name, spatial.NewPoseFromPoint(point))
}

// Name is the name of the frame.
func (sf *staticFrame) Name() string {
	return sf.name
}

// Transform returns the pose associated with this static frame.
func (sf *staticFrame) Transform(input []Input) (spatial.Pose, error) {
	if len(input) != 0 {
		return nil, NewIncorrectInputLengthError(len(input), 0)
	}
	return sf.transform, nil
}

// DoF are the degrees of freedom of the transform. In a static frame, it is
// always zero.
func (sf *staticFrame) DoF() []Limit {
	return []Limit{}
}

func (sf *staticFrame) AlmostEquals(otherFrame Frame) bool {
	other, ok := otherFrame.(*staticFrame)
	return ok && sf.name == other.name && spatial.PoseAlmostCoincident(sf.transform, other.transform, 1e-8)
}

// a translational Frame is a frame that can translate without rotation along a
// fixed axis, i.e. a prismatic joint.
type translationalFrame struct {
	name      string
	transAxis r3.Vector
	limit     []Limit
}

// NewTranslationalFrame creates a frame given a name and the axis in which to translate.
func NewTranslationalFrame(name string, axis r3.Vector, limit Limit) (Frame, error) {
	if axis.Norm2() == 0 {
		return nil, errors.New("cannot use zero vector as translation axis")
	}
	return &translationalFrame{name: name, transAxis: axis.Normalize(), limit: []Limit{limit}}, nil
}

// Name is the name of the frame.
func (pf *translationalFrame) Name() string {
	return pf.name
}

// Transform returns a pose translated by the amount specified in the inputs.
func (pf *translationalFrame) Transform(input []Input) (spatial.Pose, error) {
	var err error
	if len(input) != 1 {
		return nil, NewIncorrectInputLengthError(len(input), 1)
	}
	// We allow out-of-bounds calculations, but will return a non-nil error
	if input[0].Value < pf.limit[0].Min || input[0].Value > pf.limit[0].Max {
		err = fmt.Errorf("%.5f %s %v", input[0].Value, OOBErrString, pf.limit[0])
	}
	return spatial.NewPoseFromPoint(pf.transAxis.Mul(input[0].Value)), err
}

// DoF are the degrees of freedom of the transform.
func (pf *translationalFrame) DoF() []Limit {
	return pf.limit
}

func (pf *translationalFrame) AlmostEquals(otherFrame Frame) bool {
	other, ok := otherFrame.(*translationalFrame)
	return ok && pf.name == other.name &&
		pf.transAxis.Sub(other.transAxis).Norm() < 1e-8 &&
		limitsAlmostEqual(pf.DoF(), other.DoF())
}

// a rotational Frame rotates about a fixed axis, i.e. a standard revolute joint
// with one degree of freedom.
type rotationalFrame struct {
	name    string
	rotAxis r3.Vector
	limit   []Limit
}

// NewRotationalFrame creates a frame that rotates about the given axis. Inputs
// are in radians.
func NewRotationalFrame(name string, axis r3.Vector, limit Limit) (Frame, error) {
	if axis.Norm2() == 0 {
		return nil, errors.New("cannot use zero vector as rotation axis")
	}
	return &rotationalFrame{name: name, rotAxis: axis.Normalize(), limit: []Limit{limit}}, nil
}

// Name returns the name of the frame.
func (rf *rotationalFrame) Name() string {
	return rf.name
}

// Transform returns the rotation of the frame given the joint angle input.
func (rf *rotationalFrame) Transform(input []Input) (spatial.Pose, error) {
	var err error
	if len(input) != 1 {
		return nil, NewIncorrectInputLengthError(len(input), 1)
	}
	// We allow out-of-bounds calculations, but will return a non-nil error
	if input[0].Value < rf.limit[0].Min || input[0].Value > rf.limit[0].Max {
		err = fmt.Errorf("%.5f %s %v", input[0].Value, OOBErrString, rf.limit[0])
	}
	return spatial.NewPoseFromAxisAngle(r3.Vector{}, rf.rotAxis, input[0].Value), err
}

// DoF returns the number of degrees of freedom of the joint, always 1 for a
// revolute joint.
func (rf *rotationalFrame) DoF() []Limit {
	return rf.limit
}

func (rf *rotationalFrame) AlmostEquals(otherFrame Frame) bool {
	other, ok := otherFrame.(*rotationalFrame)
	return ok && rf.name == other.name &&
		rf.rotAxis.Sub(other.rotAxis).Norm() < 1e-8 &&
		limitsAlmostEqual(rf.DoF(), other.DoF())
}

// UnlimitedJoint is a limit that allows the full range of motion.
var UnlimitedJoint = Limit{Min: math.Inf(-1), Max: math.Inf(1)}
