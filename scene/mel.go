// Package scene generates the Maya MEL commands that build a projection camera and projection
// shader from extracted camera parameters. Emitting a script keeps the importer independent of
// any host application session; the script is what a user runs inside Maya.
package scene

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/fsync3d/fsync/camera"
)

// Default node names used when the config leaves them empty.
const (
	DefaultCameraName = "Projection_Camera"
	DefaultShaderName = "Projection_Shader"
)

// Config names the scene nodes and selects image-sequence behavior.
type Config struct {
	CameraName string
	ShaderName string
	// ImagePath is the footage the shader projects, a single frame or the first frame of a
	// sequence.
	ImagePath     string
	ImageSequence bool
	// FrameOffset is the sequence's start frame; playback maps it onto the timeline as
	// -FrameOffset + 1.
	FrameOffset float64
}

func (cfg *Config) cameraName() string {
	if cfg.CameraName == "" {
		return DefaultCameraName
	}
	return cfg.CameraName
}

func (cfg *Config) shaderName() string {
	if cfg.ShaderName == "" {
		return DefaultShaderName
	}
	return cfg.ShaderName
}

// Script returns a MEL script that creates the projection camera and the shader network: a
// surface shader fed by a perspective projection node that re-projects the footage through the
// camera's inverse world transform.
func Script(cfg Config, params *camera.Parameters) (string, error) {
	if params == nil {
		return "", errors.New("camera parameters are nil")
	}
	if cfg.ImagePath == "" {
		return "", errors.New("image path is required")
	}
	camName := cfg.cameraName()
	shaderName := cfg.shaderName()

	var b strings.Builder
	b.WriteString("// generated by fsync\n")

	rot := params.RotationDegrees()
	fmt.Fprintf(&b, "string $cam[] = `camera -focalLength %.6f -aspectRatio %.6f`;\n",
		params.FocalLength35mm, params.AspectRatio)
	fmt.Fprintf(&b, "string $camShape = $cam[1];\n")
	fmt.Fprintf(&b, "string $camXform = `rename $cam[0] %q`;\n", camName)
	fmt.Fprintf(&b, "setAttr ($camXform + \".translateX\") %.6f;\n", params.Position.X)
	fmt.Fprintf(&b, "setAttr ($camXform + \".translateY\") %.6f;\n", params.Position.Y)
	fmt.Fprintf(&b, "setAttr ($camXform + \".translateZ\") %.6f;\n", params.Position.Z)
	fmt.Fprintf(&b, "setAttr ($camXform + \".rotateX\") %.6f;\n", rot[0])
	fmt.Fprintf(&b, "setAttr ($camXform + \".rotateY\") %.6f;\n", rot[1])
	fmt.Fprintf(&b, "setAttr ($camXform + \".rotateZ\") %.6f;\n", rot[2])

	fmt.Fprintf(&b, "string $shader = `shadingNode -asShader surfaceShader -name %q`;\n", shaderName)
	fmt.Fprintf(&b, "string $file = `shadingNode -asTexture -isColorManaged file -name %q`;\n",
		shaderName+"_file")
	fmt.Fprintf(&b, "setAttr -type \"string\" ($file + \".fileTextureName\") %q;\n", cfg.ImagePath)
	fmt.Fprintf(&b, "expression -s ($file + \".frameExtension = frame\") -o $file -ae true -uc all;\n")
	fmt.Fprintf(&b, "setAttr ($file + \".wrapU\") 0;\n")
	fmt.Fprintf(&b, "setAttr ($file + \".wrapV\") 0;\n")
	writeImageSequence(&b, cfg)

	fmt.Fprintf(&b, "string $proj = `shadingNode -asUtility projection -name %q`;\n",
		shaderName+"_projection")
	// projType 8 is perspective projection
	fmt.Fprintf(&b, "setAttr ($proj + \".projType\") 8;\n")
	fmt.Fprintf(&b, "connectAttr -force ($file + \".outColor\") ($proj + \".image\");\n")
	fmt.Fprintf(&b, "connectAttr -force ($camXform + \".worldInverseMatrix[0]\") ($proj + \".placementMatrix\");\n")
	fmt.Fprintf(&b, "connectAttr -force ($camShape + \".message\") ($proj + \".linkedCamera\");\n")
	fmt.Fprintf(&b, "connectAttr -force ($proj + \".outColor\") ($shader + \".outColor\");\n")

	fmt.Fprintf(&b, "string $sg = `sets -renderable true -noSurfaceShader true -empty -name %q`;\n",
		shaderName+"_SG")
	fmt.Fprintf(&b, "connectAttr -force ($shader + \".outColor\") ($sg + \".surfaceShader\");\n")
	return b.String(), nil
}

func writeImageSequence(b *strings.Builder, cfg Config) {
	if !cfg.ImageSequence {
		fmt.Fprintf(b, "setAttr ($file + \".useFrameExtension\") 0;\n")
		return
	}
	fmt.Fprintf(b, "setAttr ($file + \".useFrameExtension\") 1;\n")
	fmt.Fprintf(b, "setAttr ($file + \".frameOffset\") %.6f;\n", -cfg.FrameOffset+1)
}

// ApplyToSelected returns a MEL snippet that assigns the projection shader to every mesh in the
// current selection.
func ApplyToSelected(cfg Config) string {
	var b strings.Builder
	b.WriteString("string $sel[] = `ls -selection -long`;\n")
	b.WriteString("for ($obj in $sel) {\n")
	b.WriteString("    select -replace $obj;\n")
	fmt.Fprintf(&b, "    hyperShade -assign %q;\n", cfg.shaderName())
	b.WriteString("}\n")
	return b.String()
}
