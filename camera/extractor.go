package camera

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/fsync3d/fsync/fspy"
	"github.com/fsync3d/fsync/spatialmath"
	"github.com/fsync3d/fsync/transform"
)

// Parameters are the values a camera node needs to match a tracked shot. They are produced
// fresh on every extraction and have no identity beyond the call that created them.
type Parameters struct {
	AspectRatio     float64
	FOVDegrees      float64
	FocalLength35mm float64
	Position        r3.Vector
	Rotation        *spatialmath.EulerAngles
}

// RotationDegrees returns the camera rotation in degrees, ordered so that index 0 maps to the
// node's X rotation, 1 to Y, and 2 to Z.
func (p *Parameters) RotationDegrees() [3]float64 {
	roll, pitch, yaw := p.Rotation.Degrees()
	return [3]float64{roll, pitch, yaw}
}

// Extract derives camera parameters from an fSpy project record. It is a pure function of the
// record: no caching, no side effects, and every malformed or degenerate input propagates as
// an error.
func Extract(project *fspy.Project) (*Parameters, error) {
	if err := project.CheckValid(); err != nil {
		return nil, err
	}
	intrinsics := &Intrinsics{
		Width:            project.ImageWidth,
		Height:           project.ImageHeight,
		HorizontalFOVRad: project.HorizontalFieldOfView,
	}
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	pose, err := transform.NewCamPoseFromRows(project.CameraTransform.Rows)
	if err != nil {
		return nil, errors.Wrap(err, "malformed camera transform")
	}
	return &Parameters{
		AspectRatio:     intrinsics.AspectRatio(),
		FOVDegrees:      intrinsics.FOVDegrees(),
		FocalLength35mm: intrinsics.FocalLength35mm(),
		Position:        pose.Translation,
		Rotation:        pose.EulerAngles(),
	}, nil
}
