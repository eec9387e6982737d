// Package fspy reads the camera-tracking project files that the fSpy photogrammetry tool
// exports as JSON.
package fspy

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// ErrMalformedProject is returned when a project record is missing required fields or does not
// have the expected shape.
var ErrMalformedProject = errors.New("malformed fSpy project")

// Point2D is an image-plane point in relative image coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform is a 4x4 row-major homogeneous matrix given as four rows of four values.
type Transform struct {
	Rows [][]float64 `json:"rows"`
}

// Project mirrors the camera parameters block of an fSpy JSON export. Records are read once
// per extraction and never mutated.
type Project struct {
	ImageWidth            float64    `json:"imageWidth"`
	ImageHeight           float64    `json:"imageHeight"`
	HorizontalFieldOfView float64    `json:"horizontalFieldOfView"`
	VerticalFieldOfView   float64    `json:"verticalFieldOfView"`
	RelativeFocalLength   float64    `json:"relativeFocalLength"`
	PrincipalPoint        *Point2D   `json:"principalPoint"`
	CameraTransform       *Transform `json:"cameraTransform"`
}

// CheckValid verifies that every field the importer needs made it into the decode. Fields the
// importer merely passes through (principal point, vertical FOV) may be absent.
func (p *Project) CheckValid() error {
	if p == nil {
		return errors.Wrap(ErrMalformedProject, "project is nil")
	}
	if p.ImageWidth == 0 || p.ImageHeight == 0 {
		return errors.Wrapf(ErrMalformedProject,
			"missing or zero image dimensions (%v, %v)", p.ImageWidth, p.ImageHeight)
	}
	if p.HorizontalFieldOfView == 0 {
		return errors.Wrap(ErrMalformedProject, "missing horizontalFieldOfView")
	}
	if p.CameraTransform == nil {
		return errors.Wrap(ErrMalformedProject, "missing cameraTransform")
	}
	if len(p.CameraTransform.Rows) != 4 {
		return errors.Wrapf(ErrMalformedProject,
			"cameraTransform has %d rows, need exactly 4", len(p.CameraTransform.Rows))
	}
	for i, row := range p.CameraTransform.Rows {
		if len(row) != 4 {
			return errors.Wrapf(ErrMalformedProject,
				"cameraTransform row %d has %d values, need exactly 4", i, len(row))
		}
	}
	return nil
}

// ReadProject decodes and validates an fSpy project from r.
func ReadProject(r io.Reader) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading project data")
	}
	project := &Project{}
	if err := json.Unmarshal(data, project); err != nil {
		return nil, errors.Wrapf(ErrMalformedProject, "error parsing JSON: %s", err)
	}
	if err := project.CheckValid(); err != nil {
		return nil, err
	}
	return project, nil
}

// ReadProjectFromFile reads an fSpy project from a JSON file on disk. The content decides
// validity, not the file extension.
func ReadProjectFromFile(path string) (*Project, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening project file")
	}
	defer utils.UncheckedErrorFunc(f.Close)
	return ReadProject(f)
}
