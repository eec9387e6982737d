// Package transform splits camera extrinsics out of the homogeneous world transforms that
// tracking tools export.
package transform

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fsync3d/fsync/spatialmath"
)

// CamPose stores a camera's rotation and translation split out of a 4x4 world transform.
type CamPose struct {
	Rotation    *spatialmath.RotationMatrix
	Translation r3.Vector
}

// NewCamPoseFromRows creates a CamPose from a row-major 4x4 matrix given as four rows of four
// values each. Rows 0-2, columns 0-2 hold the rotation sub-matrix and rows 0-2, column 3 the
// translation; the homogeneous bottom row is ignored, not validated.
func NewCamPoseFromRows(rows [][]float64) (*CamPose, error) {
	if len(rows) != 4 {
		return nil, errors.Errorf("transform has %d rows, need exactly 4", len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			return nil, errors.Errorf("transform row %d has %d values, need exactly 4", i, len(row))
		}
	}
	rot := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		rot = append(rot, rows[i][:3]...)
	}
	rotation, err := spatialmath.NewRotationMatrix(rot)
	if err != nil {
		return nil, err
	}
	return &CamPose{
		Rotation:    rotation,
		Translation: r3.Vector{X: rows[0][3], Y: rows[1][3], Z: rows[2][3]},
	}, nil
}

// PoseMat returns the 3x4 [R|t] pose matrix.
func (cp *CamPose) PoseMat() *mat.Dense {
	var pose mat.Dense
	t := mat.NewDense(3, 1, []float64{cp.Translation.X, cp.Translation.Y, cp.Translation.Z})
	pose.Augment(cp.Rotation.Dense(), t)
	return &pose
}

// EulerAngles returns the pose's orientation decomposed into ZYX euler angles.
func (cp *CamPose) EulerAngles() *spatialmath.EulerAngles {
	return cp.Rotation.EulerAngles()
}
