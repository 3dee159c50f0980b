package camera

import (
	"gocv.io/x/gocv"

	"github.com/kozaktomas/face-attendance/internal/recognition"
)

// Window is the live video window
type Window struct {
	w *gocv.Window
}

// NewWindow opens a window with the given title
func NewWindow(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

// Show displays a frame. Frames from other sources are ignored.
func (w *Window) Show(frame recognition.Frame) {
	f, ok := frame.(*Frame)
	if !ok {
		return
	}
	w.w.IMShow(f.mat)
}

// WaitKey waits up to delayMillis for a key press and returns its code, or -1
func (w *Window) WaitKey(delayMillis int) int {
	return w.w.WaitKey(delayMillis)
}

func (w *Window) Close() error {
	return w.w.Close()
}
