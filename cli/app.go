// Package cli implements the fsync command line interface.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// Flags.
const (
	sceneFlagImage         = "image"
	sceneFlagCameraName    = "camera-name"
	sceneFlagShaderName    = "shader-name"
	sceneFlagImageSequence = "image-sequence"
	sceneFlagFrameOffset   = "frame-offset"
	sceneFlagOut           = "out"
)

var app = &cli.App{
	Name:            "fsync",
	Usage:           "import fSpy camera tracking data for projection mapping",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "info",
			Usage:     "print the camera parameters derived from an fSpy project file",
			ArgsUsage: "<project.json>",
			Action:    InfoAction,
		},
		{
			Name:      "scene",
			Usage:     "emit a Maya MEL script that builds the projection camera and shader",
			ArgsUsage: "<project.json>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     sceneFlagImage,
					Required: true,
					Usage:    "footage the shader projects, a frame or the first file of a sequence",
				},
				&cli.StringFlag{
					Name:  sceneFlagCameraName,
					Usage: "name of the projection camera node",
				},
				&cli.StringFlag{
					Name:  sceneFlagShaderName,
					Usage: "name of the projection shader node",
				},
				&cli.BoolFlag{
					Name:  sceneFlagImageSequence,
					Usage: "treat the footage as an image sequence",
				},
				&cli.Float64Flag{
					Name:  sceneFlagFrameOffset,
					Usage: "start frame of the image sequence",
					Value: 1,
				},
				&cli.PathFlag{
					Name:  sceneFlagOut,
					Usage: "write the script to `FILE` instead of stdout",
				},
			},
			Action: SceneAction,
		},
		{
			Name:      "watch",
			Usage:     "watch a project file and report refreshed parameters on every change",
			ArgsUsage: "<project.json>",
			Action:    WatchAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
