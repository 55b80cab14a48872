// Package spatialmath defines spatial mathematical operations.
// Poses are represented internally as dual quaternions, which compose cheaply
// and do not accumulate the normalization error of rotation matrices.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is a rotation in 3D space, stored as a unit quaternion.
type Orientation struct {
	q quat.Number
}

// NewZeroOrientation returns the identity rotation.
func NewZeroOrientation() *Orientation {
	return &Orientation{quat.Number{Real: 1}}
}

// NewOrientationFromAxisAngle returns the rotation of theta radians about the
// given axis. The axis need not be normalized; a zero axis yields the identity.
func NewOrientationFromAxisAngle(axis r3.Vector, theta float64) *Orientation {
	if axis.Norm2() == 0 {
		return NewZeroOrientation()
	}
	axis = axis.Normalize()
	s := math.Sin(theta / 2)
	return &Orientation{quat.Number{
		Real: math.Cos(theta / 2),
		Imag: axis.X * s,
		Jmag: axis.Y * s,
		Kmag: axis.Z * s,
	}}
}

// NewOrientationFromQuaternion wraps a quaternion, normalizing it.
func NewOrientationFromQuaternion(q quat.Number) *Orientation {
	n := quat.Abs(q)
	if n == 0 {
		return NewZeroOrientation()
	}
	return &Orientation{quat.Scale(1/n, q)}
}

// Quaternion returns the underlying unit quaternion.
func (o *Orientation) Quaternion() quat.Number {
	return o.q
}

// RotatePoint rotates the given vector by this orientation.
func (o *Orientation) RotatePoint(pt r3.Vector) r3.Vector {
	p := quat.Number{Imag: pt.X, Jmag: pt.Y, Kmag: pt.Z}
	rotated := quat.Mul(quat.Mul(o.q, p), quat.Conj(o.q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}

// AxisAngle returns the rotation as a normalized axis and an angle in radians.
// The identity rotation reports the Z axis and a zero angle.
func (o *Orientation) AxisAngle() (r3.Vector, float64) {
	q := o.q
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	axis := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := axis.Norm()
	if n == 0 {
		return r3.Vector{Z: 1}, 0
	}
	return axis.Mul(1 / n), 2 * math.Atan2(n, q.Real)
}

// OrientationAlmostEqual returns whether two orientations represent the same
// rotation to within epsilon, accounting for double cover.
func OrientationAlmostEqual(o1, o2 *Orientation, epsilon float64) bool {
	d := quat.Abs(quat.Sub(o1.q, o2.q))
	s := quat.Abs(quat.Add(o1.q, o2.q))
	return d <= epsilon || s <= epsilon
}
