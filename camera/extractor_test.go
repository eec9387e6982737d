package camera

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/fsync3d/fsync/fspy"
	"github.com/fsync3d/fsync/spatialmath"
	"github.com/fsync3d/fsync/utils"
)

func testProject() *fspy.Project {
	return &fspy.Project{
		ImageWidth:            1920,
		ImageHeight:           1080,
		HorizontalFieldOfView: 1,
		CameraTransform: &fspy.Transform{Rows: [][]float64{
			{1, 0, 0, 5},
			{0, 1, 0, -3},
			{0, 0, 1, 10},
			{0, 0, 0, 1},
		}},
	}
}

func TestExtract(t *testing.T) {
	params, err := Extract(testProject())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, params.AspectRatio, test.ShouldAlmostEqual, 1.7778, 1e-4)
	test.That(t, params.FOVDegrees, test.ShouldAlmostEqual, 57.2958, 1e-4)
	test.That(t, params.FocalLength35mm, test.ShouldAlmostEqual, 39.0504, 1e-4)
	test.That(t, params.Position, test.ShouldResemble, r3.Vector{X: 5, Y: -3, Z: 10})
	test.That(t, params.Rotation, test.ShouldResemble, spatialmath.NewEulerAngles())
	test.That(t, params.RotationDegrees(), test.ShouldResemble, [3]float64{0, 0, 0})
}

func TestExtractRotation(t *testing.T) {
	project := testProject()
	want := &spatialmath.EulerAngles{
		Roll:  utils.DegToRad(10),
		Pitch: utils.DegToRad(-20),
		Yaw:   utils.DegToRad(135),
	}
	rm := want.RotationMatrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			project.CameraTransform.Rows[i][j] = rm.At(i, j)
		}
	}
	params, err := Extract(project)
	test.That(t, err, test.ShouldBeNil)
	got := params.RotationDegrees()
	test.That(t, got[0], test.ShouldAlmostEqual, 10, 1e-6)
	test.That(t, got[1], test.ShouldAlmostEqual, -20, 1e-6)
	test.That(t, got[2], test.ShouldAlmostEqual, 135, 1e-6)
}

func TestExtractIdempotent(t *testing.T) {
	project := testProject()
	first, err := Extract(project)
	test.That(t, err, test.ShouldBeNil)
	second, err := Extract(project)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, first, test.ShouldResemble, second)
}

func TestExtractErrors(t *testing.T) {
	_, err := Extract(nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, fspy.ErrMalformedProject), test.ShouldBeTrue)

	project := testProject()
	project.ImageHeight = 0
	_, err = Extract(project)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, fspy.ErrMalformedProject), test.ShouldBeTrue)

	project = testProject()
	project.HorizontalFieldOfView = 4
	_, err = Extract(project)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidIntrinsics), test.ShouldBeTrue)

	project = testProject()
	project.CameraTransform.Rows = project.CameraTransform.Rows[:3]
	_, err = Extract(project)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, fspy.ErrMalformedProject), test.ShouldBeTrue)
}
