// Package camera adapts OpenCV (gocv) capture devices and windows to the recognition loop.
package camera

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/kozaktomas/face-attendance/internal/recognition"
)

// Capture is an open video device
type Capture struct {
	device int
	vc     *gocv.VideoCapture
}

// Open opens the video device with the given index.
// Failures wrap recognition.ErrCameraOpen.
func Open(device int) (*Capture, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %w", recognition.ErrCameraOpen, device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: device %d", recognition.ErrCameraOpen, device)
	}
	return &Capture{device: device, vc: vc}, nil
}

// Read grabs the next frame. The caller must Close it.
func (c *Capture) Read() (recognition.Frame, error) {
	mat := gocv.NewMat()
	if ok := c.vc.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("%w: device %d", recognition.ErrFrameRead, c.device)
	}
	return &Frame{mat: mat}, nil
}

func (c *Capture) Close() error {
	return c.vc.Close()
}
