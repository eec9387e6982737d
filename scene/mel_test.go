package scene

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/fsync3d/fsync/camera"
	"github.com/fsync3d/fsync/spatialmath"
	"github.com/fsync3d/fsync/utils"
)

func testParams() *camera.Parameters {
	return &camera.Parameters{
		AspectRatio:     1.7778,
		FOVDegrees:      57.2958,
		FocalLength35mm: 39.0504,
		Position:        r3.Vector{X: 5, Y: -3, Z: 10},
		Rotation: &spatialmath.EulerAngles{
			Roll:  utils.DegToRad(10),
			Pitch: utils.DegToRad(-20),
			Yaw:   utils.DegToRad(135),
		},
	}
}

func TestScript(t *testing.T) {
	script, err := Script(Config{ImagePath: "/footage/shot.0001.png"}, testParams())
	test.That(t, err, test.ShouldBeNil)

	for _, want := range []string{
		`-focalLength 39.050400`,
		`rename $cam[0] "Projection_Camera"`,
		`".translateX") 5.000000;`,
		`".translateY") -3.000000;`,
		`".translateZ") 10.000000;`,
		`".rotateX") 10.000000;`,
		`".rotateY") -20.000000;`,
		`".rotateZ") 135.000000;`,
		`surfaceShader -name "Projection_Shader"`,
		`".fileTextureName") "/footage/shot.0001.png";`,
		`".useFrameExtension") 0;`,
		`".projType") 8;`,
		`($camXform + ".worldInverseMatrix[0]") ($proj + ".placementMatrix");`,
		`($camShape + ".message") ($proj + ".linkedCamera");`,
		`-empty -name "Projection_Shader_SG"`,
	} {
		test.That(t, script, test.ShouldContainSubstring, want)
	}
}

func TestScriptCustomNames(t *testing.T) {
	cfg := Config{
		CameraName: "ShotCam",
		ShaderName: "ShotShader",
		ImagePath:  "/footage/plate.jpg",
	}
	script, err := Script(cfg, testParams())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, script, test.ShouldContainSubstring, `rename $cam[0] "ShotCam"`)
	test.That(t, script, test.ShouldContainSubstring, `-name "ShotShader_projection"`)
	test.That(t, script, test.ShouldNotContainSubstring, "Projection_Camera")
}

func TestScriptImageSequence(t *testing.T) {
	cfg := Config{
		ImagePath:     "/footage/shot.0001.png",
		ImageSequence: true,
		FrameOffset:   101,
	}
	script, err := Script(cfg, testParams())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, script, test.ShouldContainSubstring, `".useFrameExtension") 1;`)
	test.That(t, script, test.ShouldContainSubstring, `".frameOffset") -100.000000;`)
}

func TestScriptErrors(t *testing.T) {
	_, err := Script(Config{ImagePath: "x.png"}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "parameters are nil")

	_, err = Script(Config{}, testParams())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "image path")
}

func TestApplyToSelected(t *testing.T) {
	snippet := ApplyToSelected(Config{})
	test.That(t, snippet, test.ShouldContainSubstring, `hyperShade -assign "Projection_Shader";`)
	test.That(t, strings.Count(snippet, "\n"), test.ShouldBeGreaterThan, 3)

	snippet = ApplyToSelected(Config{ShaderName: "ShotShader"})
	test.That(t, snippet, test.ShouldContainSubstring, `hyperShade -assign "ShotShader";`)
}
