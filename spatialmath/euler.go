// Package spatialmath defines the rotation representations needed to turn tracked
// camera transforms into the values a 3D application's camera node expects.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/fsync3d/fsync/utils"
)

// EulerAngles are three angles (in radians) used to represent the rotation of an object in 3D
// Euclidean space. The Tait-Bryan ZYX formalism is used: the composite rotation is
// Rz(yaw)*Ry(pitch)*Rx(roll).
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // rotation about the X axis
	Pitch float64 `json:"pitch"` // rotation about the Y axis
	Yaw   float64 `json:"yaw"`   // rotation about the Z axis
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// Degrees returns roll, pitch, yaw converted to degrees, in that order. Consumers map them
// positionally onto a camera node's X, Y, and Z rotation channels, so the ordering is part of
// the contract.
func (ea *EulerAngles) Degrees() (roll, pitch, yaw float64) {
	return utils.RadToDeg(ea.Roll), utils.RadToDeg(ea.Pitch), utils.RadToDeg(ea.Yaw)
}

// RotationMatrix composes the rotation matrix Rz(yaw)*Ry(pitch)*Rx(roll).
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	sr, cr := math.Sincos(ea.Roll)
	sp, cp := math.Sincos(ea.Pitch)
	sy, cy := math.Sincos(ea.Yaw)

	return &RotationMatrix{mat: [9]float64{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr,
		-sp, cp * sr, cp * cr,
	}}
}

// Quaternion returns the orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	sr, cr := math.Sincos(ea.Roll / 2)
	sp, cp := math.Sincos(ea.Pitch / 2)
	sy, cy := math.Sincos(ea.Yaw / 2)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// OrientationAlmostEqual will return a bool describing whether 2 rotations are approximately the
// same. The comparison goes through quaternions so that equivalent angle triples (e.g. ones
// differing by full turns) compare equal.
func OrientationAlmostEqual(ea1, ea2 *EulerAngles) bool {
	return QuaternionAlmostEqual(ea1.Quaternion(), ea2.Quaternion(), 1e-5)
}

// QuaternionAlmostEqual reports whether q1 and q2 represent approximately the same rotation,
// treating q and -q as the same orientation.
func QuaternionAlmostEqual(q1, q2 quat.Number, tol float64) bool {
	diff := quat.Mul(quat.Conj(q1), q2)
	return 1-math.Abs(diff.Real) < tol
}
