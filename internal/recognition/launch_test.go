package recognition

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestStart_CameraOpenFailureCreatesNoDisplay(t *testing.T) {
	tests := []struct {
		name    string
		openErr error
	}{
		{"wrapped sentinel", fmt.Errorf("%w: device 0", ErrCameraOpen)},
		{"plain driver error", errors.New("v4l2: no such device")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			displays := 0
			dev := Devices{
				CameraIndex: 0,
				WindowTitle: "test",
				OpenCamera: func(device int) (Camera, error) {
					return nil, tt.openErr
				},
				OpenDisplay: func(title string) Display {
					displays++
					return &fakeDisplay{}
				},
			}
			ext := &fakeExtractor{}

			err := Start(context.Background(), dev, ext, enrolled(), &countingMarker{}, Options{Logger: quietLogger()})
			if !errors.Is(err, ErrCameraOpen) {
				t.Fatalf("expected ErrCameraOpen, got %v", err)
			}
			if !IsFatal(err) {
				t.Errorf("expected camera open failure to be fatal")
			}
			if displays != 0 {
				t.Errorf("expected no display to be created, got %d", displays)
			}
		})
	}
}

func TestStart_RunsSessionOnOpenedDevices(t *testing.T) {
	cam := &fakeCamera{frames: []*fakeFrame{{id: 1}}}
	display := &fakeDisplay{keys: []int{'q'}}
	var openedDevice int
	var openedTitle string
	dev := Devices{
		CameraIndex: 2,
		WindowTitle: "Face Recognition Attendance",
		OpenCamera: func(device int) (Camera, error) {
			openedDevice = device
			return cam, nil
		},
		OpenDisplay: func(title string) Display {
			openedTitle = title
			return display
		},
	}

	err := Start(context.Background(), dev, &fakeExtractor{}, enrolled(), &countingMarker{}, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
	if openedDevice != 2 {
		t.Errorf("expected camera 2 to be opened, got %d", openedDevice)
	}
	if openedTitle != "Face Recognition Attendance" {
		t.Errorf("unexpected window title %q", openedTitle)
	}
	if len(display.shown) != 1 {
		t.Errorf("expected 1 frame shown, got %d", len(display.shown))
	}
	if !cam.closed || !display.closed {
		t.Errorf("expected camera and display to be released")
	}
}
