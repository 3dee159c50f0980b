package recognition

import (
	"errors"
	"fmt"
)

var (
	// ErrCameraOpen means the capture device could not be opened. Fatal.
	ErrCameraOpen = errors.New("unable to access the camera")
	// ErrFrameRead means a frame could not be read from an open device. Fatal.
	ErrFrameRead = errors.New("unable to read frame")
)

// ExtractionError is a per-frame failure to detect or embed faces. The loop logs it,
// shows the frame unannotated and carries on. Finding no faces is not an error.
type ExtractionError struct {
	Stage string // "encode" or "extract"
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("face %s failed: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must stop the capture loop.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCameraOpen) || errors.Is(err, ErrFrameRead)
}
