package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a rigid transformation: a translation paired with an
// orientation. Poses returned by this package may be composed and queried but
// are immutable.
type Pose interface {
	Point() r3.Vector
	Orientation() *Orientation
}

// dualQuaternion is the packed representation of a Pose. The real part holds
// the rotation, the dual part encodes the translation as 0.5 * t * r.
type dualQuaternion struct {
	dualquat.Number
}

// NewZeroPose returns a pose with no translation or rotation.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose returns a pose with the given translation and orientation.
func NewPose(pt r3.Vector, o *Orientation) Pose {
	q := newDualQuaternion()
	q.Real = o.Quaternion()
	q.setTranslation(pt)
	return q
}

// NewPoseFromPoint returns a pose with the given translation and an identity
// orientation.
func NewPoseFromPoint(pt r3.Vector) Pose {
	q := newDualQuaternion()
	q.setTranslation(pt)
	return q
}

// NewPoseFromAxisAngle returns a pose with the given translation, rotated
// theta radians about the given axis.
func NewPoseFromAxisAngle(pt, axis r3.Vector, theta float64) Pose {
	return NewPose(pt, NewOrientationFromAxisAngle(axis, theta))
}

// Compose returns the pose equivalent to applying b in the frame of a. It is
// not commutative.
func Compose(a, b Pose) Pose {
	result := &dualQuaternion{dualquat.Mul(dqFromPose(a).Number, dqFromPose(b).Number)}
	// Normalize, or small errors will accumulate over long kinematic chains.
	if vecLen := quat.Abs(result.Real); vecLen != 1 {
		result.Real = quat.Scale(1/vecLen, result.Real)
	}
	return result
}

// PoseAlmostCoincident checks that both the positions and orientations of two
// poses are within epsilon.
func PoseAlmostCoincident(a, b Pose, epsilon float64) bool {
	return a.Point().Sub(b.Point()).Norm() <= epsilon &&
		OrientationAlmostEqual(a.Orientation(), b.Orientation(), epsilon)
}

func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

func dqFromPose(p Pose) *dualQuaternion {
	if q, ok := p.(*dualQuaternion); ok {
		return q
	}
	q := newDualQuaternion()
	q.Real = p.Orientation().Quaternion()
	q.setTranslation(p.Point())
	return q
}

func (q *dualQuaternion) setTranslation(pt r3.Vector) {
	q.Dual = quat.Scale(0.5, quat.Mul(quat.Number{Imag: pt.X, Jmag: pt.Y, Kmag: pt.Z}, q.Real))
}

// Point returns the translation of the pose.
func (q *dualQuaternion) Point() r3.Vector {
	tq := quat.Scale(2, quat.Mul(q.Dual, quat.Conj(q.Real)))
	return r3.Vector{X: tq.Imag, Y: tq.Jmag, Z: tq.Kmag}
}

// Orientation returns the rotation of the pose.
func (q *dualQuaternion) Orientation() *Orientation {
	return NewOrientationFromQuaternion(q.Real)
}
