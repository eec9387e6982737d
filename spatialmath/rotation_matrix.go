package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fsync3d/fsync/utils"
)

// RotationMatrix is a 3x3 matrix in row major order.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a slice of floats in row major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	mat := [9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	return &RotationMatrix{mat}, nil
}

// At returns the value of the matrix at a given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector with the row's values.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a vector with the column's values.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// EulerAngles decomposes the matrix into ZYX Tait-Bryan angles such that
// Rz(yaw)*Ry(pitch)*Rx(roll) reconstructs the matrix.
//
// The r20 entry is clamped to [-1, 1] first so that numeric noise in an upstream transform
// cannot push asin out of its domain; values that overshoot the domain land on the gimbal
// branch instead of faulting. The gimbal-lock test itself is an exact comparison against the
// clamped value: at pitch = +/-90 degrees yaw and roll become coupled, yaw is fixed at zero
// and the combined angle lands in roll.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	r20 := utils.Clamp(rm.At(2, 0), -1, 1)
	if math.Abs(r20) != 1 {
		pitch := -math.Asin(r20)
		cp := math.Cos(pitch)
		return &EulerAngles{
			Roll:  math.Atan2(rm.At(2, 1)/cp, rm.At(2, 2)/cp),
			Pitch: pitch,
			Yaw:   math.Atan2(rm.At(1, 0)/cp, rm.At(0, 0)/cp),
		}
	}
	if r20 == -1 {
		return &EulerAngles{
			Roll:  math.Atan2(rm.At(0, 1), rm.At(0, 2)),
			Pitch: math.Pi / 2,
			Yaw:   0,
		}
	}
	return &EulerAngles{
		Roll:  math.Atan2(-rm.At(0, 1), -rm.At(0, 2)),
		Pitch: -math.Pi / 2,
		Yaw:   0,
	}
}

// Dense returns the matrix as a gonum 3x3 dense matrix.
func (rm *RotationMatrix) Dense() *mat.Dense {
	m := rm.mat
	return mat.NewDense(3, 3, m[:])
}

// Determinant returns the determinant of the matrix; a proper rotation has determinant +1.
func (rm *RotationMatrix) Determinant() float64 {
	return mat.Det(rm.Dense())
}

// Orthonormal reports whether the matrix is orthonormal with determinant +1 to within tol.
// The euler decomposition does not require this; strict callers can use it to reject
// malformed transforms up front.
func (rm *RotationMatrix) Orthonormal(tol float64) bool {
	d := rm.Dense()
	var prod mat.Dense
	prod.Mul(d, d.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := 0.
			if i == j {
				expected = 1.
			}
			if !utils.Float64AlmostEqual(prod.At(i, j), expected, tol) {
				return false
			}
		}
	}
	return utils.Float64AlmostEqual(rm.Determinant(), 1, tol)
}
