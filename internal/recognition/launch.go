package recognition

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/face-attendance/internal/facematch"
	"github.com/kozaktomas/face-attendance/internal/fingerprint"
)

// CameraOpener opens the capture device with the given index
type CameraOpener func(device int) (Camera, error)

// DisplayOpener creates the window frames are shown in
type DisplayOpener func(title string) Display

// Devices describes how to reach the camera and the display.
type Devices struct {
	CameraIndex int
	WindowTitle string
	OpenCamera  CameraOpener
	OpenDisplay DisplayOpener
}

// Start opens the camera, then the display, and runs a session until it stops.
// When the camera cannot be opened no display is created and an error wrapping
// ErrCameraOpen is returned.
func Start(ctx context.Context, dev Devices, extractor fingerprint.Extractor, matcher *facematch.Matcher, marker Marker, opts Options) error {
	cam, err := dev.OpenCamera(dev.CameraIndex)
	if err != nil {
		if !errors.Is(err, ErrCameraOpen) {
			err = fmt.Errorf("%w: device %d: %w", ErrCameraOpen, dev.CameraIndex, err)
		}
		return err
	}

	display := dev.OpenDisplay(dev.WindowTitle)
	return NewSession(cam, display, extractor, matcher, marker, opts).Run(ctx)
}
