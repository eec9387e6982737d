package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/edaniels/golog"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	goutils "go.viam.com/utils"

	"github.com/fsync3d/fsync/camera"
	"github.com/fsync3d/fsync/fspy"
	"github.com/fsync3d/fsync/scene"
)

func printf(w io.Writer, format string, a ...interface{}) {
	_, err := fmt.Fprintf(w, format+"\n", a...)
	goutils.UncheckedError(err)
}

func projectArg(c *cli.Context) (string, error) {
	if c.Args().Len() != 1 {
		return "", errors.Errorf("must provide exactly one project file, got %d args", c.Args().Len())
	}
	return c.Args().First(), nil
}

func extractFromFile(path string) (*camera.Parameters, error) {
	project, err := fspy.ReadProjectFromFile(path)
	if err != nil {
		return nil, err
	}
	return camera.Extract(project)
}

func printParameters(w io.Writer, params *camera.Parameters) {
	rot := params.RotationDegrees()
	printf(w, "aspect ratio:\t%.4f", params.AspectRatio)
	printf(w, "field of view:\t%.4f deg", params.FOVDegrees)
	printf(w, "focal length:\t%.4f mm", params.FocalLength35mm)
	printf(w, "position:\t(%.4f, %.4f, %.4f)", params.Position.X, params.Position.Y, params.Position.Z)
	printf(w, "rotation:\t(%.4f, %.4f, %.4f) deg", rot[0], rot[1], rot[2])
}

// InfoAction is the corresponding action for 'info'.
func InfoAction(c *cli.Context) error {
	path, err := projectArg(c)
	if err != nil {
		return err
	}
	params, err := extractFromFile(path)
	if err != nil {
		return err
	}
	printParameters(c.App.Writer, params)
	return nil
}

// SceneAction is the corresponding action for 'scene'.
func SceneAction(c *cli.Context) error {
	path, err := projectArg(c)
	if err != nil {
		return err
	}
	params, err := extractFromFile(path)
	if err != nil {
		return err
	}
	script, err := scene.Script(scene.Config{
		CameraName:    c.String(sceneFlagCameraName),
		ShaderName:    c.String(sceneFlagShaderName),
		ImagePath:     c.String(sceneFlagImage),
		ImageSequence: c.Bool(sceneFlagImageSequence),
		FrameOffset:   c.Float64(sceneFlagFrameOffset),
	}, params)
	if err != nil {
		return err
	}
	if out := c.Path(sceneFlagOut); out != "" {
		return errors.Wrap(os.WriteFile(out, []byte(script), 0o640), "error writing script")
	}
	printf(c.App.Writer, "%s", script)
	return nil
}

// WatchAction is the corresponding action for 'watch'. It reports refreshed camera parameters
// every time the tracking tool rewrites the project file, until the context is canceled.
func WatchAction(c *cli.Context) error {
	path, err := projectArg(c)
	if err != nil {
		return err
	}
	logger := golog.NewDevelopmentLogger("fsync")
	if c.Bool("debug") {
		logger = golog.NewDebugLogger("fsync")
	}

	params, err := extractFromFile(path)
	if err != nil {
		return err
	}
	printParameters(c.App.Writer, params)

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer goutils.UncheckedErrorFunc(watcher.Close)
	// watch the directory; most tools replace the file on save rather than write in place
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	logger.Infow("watching project file", "path", abs)

	for {
		select {
		case <-c.Context.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != abs {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Debugw("project file changed", "op", event.Op.String())
			params, err := extractFromFile(path)
			if err != nil {
				logger.Errorw("extraction failed", "error", err)
				continue
			}
			printParameters(c.App.Writer, params)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("watch error", "error", err)
		}
	}
}
