// Package camera derives the intrinsics and extrinsics a 3D application's camera node expects
// from tracked camera data.
package camera

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/fsync3d/fsync/utils"
)

// ErrInvalidIntrinsics is when a camera's intrinsic parameters cannot produce a usable lens.
var ErrInvalidIntrinsics = errors.New("camera intrinsic parameters are not usable")

// NewInvalidIntrinsicsError is used when the intrinsics fail validation.
func NewInvalidIntrinsicsError(msg string) error {
	return errors.Wrap(ErrInvalidIntrinsics, msg)
}

// sensor height in millimeters of the 35mm-equivalent focal length convention
const referenceSensorMM = 24.

// Intrinsics holds the tracked camera values needed to derive lens settings.
type Intrinsics struct {
	Width            float64 `json:"width_px"`
	Height           float64 `json:"height_px"`
	HorizontalFOVRad float64 `json:"horizontal_fov_rad"`
}

// CheckValid checks if the fields for Intrinsics have valid inputs. A zero height or a field of
// view at exactly 0 or pi would otherwise surface later as a silent Inf or NaN.
func (params *Intrinsics) CheckValid() error {
	if params == nil {
		return NewInvalidIntrinsicsError("Intrinsics do not exist")
	}
	if params.Width <= 0 || params.Height <= 0 {
		return NewInvalidIntrinsicsError(fmt.Sprintf("Invalid size (%#v, %#v)", params.Width, params.Height))
	}
	if params.HorizontalFOVRad <= 0 || params.HorizontalFOVRad >= math.Pi {
		return NewInvalidIntrinsicsError(
			fmt.Sprintf("Invalid horizontal field of view %#v rad, need (0, pi)", params.HorizontalFOVRad))
	}
	return nil
}

// AspectRatio returns width over height.
func (params *Intrinsics) AspectRatio() float64 {
	return params.Width / params.Height
}

// FOVDegrees returns the horizontal field of view in degrees.
func (params *Intrinsics) FOVDegrees() float64 {
	return utils.RadToDeg(params.HorizontalFOVRad)
}

// FocalLength35mm converts the horizontal field of view to a focal length in millimeters on a
// 24mm reference sensor scaled by the aspect ratio.
func (params *Intrinsics) FocalLength35mm() float64 {
	return (referenceSensorMM * params.AspectRatio()) / (2 * math.Tan(params.HorizontalFOVRad/2))
}

// HorizontalFOVFromFocalLength35mm is the inverse of FocalLength35mm; it returns the horizontal
// field of view in radians for a focal length on the same 24mm reference sensor.
func HorizontalFOVFromFocalLength35mm(focalLengthMM, aspectRatio float64) (float64, error) {
	if focalLengthMM <= 0 {
		return 0, errors.Errorf("focal length must be positive, got %v", focalLengthMM)
	}
	if aspectRatio <= 0 {
		return 0, errors.Errorf("aspect ratio must be positive, got %v", aspectRatio)
	}
	return 2 * math.Atan((referenceSensorMM*aspectRatio)/(2*focalLengthMM)), nil
}
