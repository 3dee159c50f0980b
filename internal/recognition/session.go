// Package recognition runs the capture loop: read a frame, find faces, match them against
// the enrolled identities, record attendance and show the annotated frame.
package recognition

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/kozaktomas/face-attendance/internal/constants"
	"github.com/kozaktomas/face-attendance/internal/facematch"
	"github.com/kozaktomas/face-attendance/internal/fingerprint"
)

// Frame is one captured image
type Frame interface {
	// Encode returns the frame shrunk by scale as JPEG, in the channel order the
	// extractor expects.
	Encode(scale int) ([]byte, error)
	// DrawFace draws a box and its label in full-frame coordinates.
	DrawFace(box image.Rectangle, label string)
	Close() error
}

// Camera produces frames
type Camera interface {
	Read() (Frame, error)
	Close() error
}

// Display shows frames and reports key presses
type Display interface {
	Show(frame Frame)
	// WaitKey waits up to delayMillis for a key press and returns its code, or -1.
	WaitKey(delayMillis int) int
	Close() error
}

// Marker records attendance for a recognized name
type Marker interface {
	Mark(name string) bool
}

// State of the capture loop. There is no pause; STOPPED is final.
type State int

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	default:
		return "STOPPED"
	}
}

// LabeledFace is a detected face after matching
type LabeledFace struct {
	Box   image.Rectangle // full-frame coordinates
	Match facematch.Result
}

// FrameReport describes what happened to one frame
type FrameReport struct {
	Faces []LabeledFace
	Err   error // *ExtractionError when detection failed for this frame
}

// Options tune a Session. Zero values fall back to defaults.
type Options struct {
	Scale  int // downscale factor, defaults to constants.DefaultFrameScale
	Logger *slog.Logger
}

// Session owns the camera and display for the duration of Run.
type Session struct {
	camera    Camera
	display   Display
	extractor fingerprint.Extractor
	matcher   *facematch.Matcher
	marker    Marker
	scale     int
	logger    *slog.Logger
	state     State
}

// NewSession wires the loop together. The camera and display must already be open;
// Run closes them.
func NewSession(camera Camera, display Display, extractor fingerprint.Extractor, matcher *facematch.Matcher, marker Marker, opts Options) *Session {
	if opts.Scale <= 0 {
		opts.Scale = constants.DefaultFrameScale
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		camera:    camera,
		display:   display,
		extractor: extractor,
		matcher:   matcher,
		marker:    marker,
		scale:     opts.Scale,
		logger:    opts.Logger,
		state:     StateStopped,
	}
}

// State returns the current loop state
func (s *Session) State() State {
	return s.state
}

// Run loops until the quit key is pressed, ctx is cancelled, or the camera fails.
// A camera failure is returned wrapped in ErrFrameRead; the other stops return nil.
// Camera and display are released in every case.
func (s *Session) Run(ctx context.Context) error {
	defer s.release()

	s.state = StateRunning
	s.logger.Info("Starting video capture", "known_faces", s.matcher.Len(), "threshold", s.matcher.Threshold())

	for s.state == StateRunning {
		if ctx.Err() != nil {
			s.logger.Info("Interrupted, exiting program.")
			s.state = StateStopped
			break
		}

		frame, err := s.camera.Read()
		if err != nil {
			s.state = StateStopped
			s.logger.Error("Unable to read frame. Exiting.", "error", err)
			if errors.Is(err, ErrFrameRead) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrFrameRead, err)
		}

		s.ProcessFrame(ctx, frame)
		s.display.Show(frame)
		if err := frame.Close(); err != nil {
			s.logger.Debug("Failed to release frame", "error", err)
		}

		if key := s.display.WaitKey(constants.KeyPollMillis); key >= 0 && key&0xFF == constants.QuitKey {
			s.logger.Info("Exiting program.")
			s.state = StateStopped
		}
	}

	return nil
}

// ProcessFrame detects, matches, records and annotates one frame.
// Extraction failures are logged and leave the frame unannotated.
func (s *Session) ProcessFrame(ctx context.Context, frame Frame) FrameReport {
	var report FrameReport

	data, err := frame.Encode(s.scale)
	if err != nil {
		report.Err = &ExtractionError{Stage: "encode", Err: err}
		s.logger.Error("Error during face recognition", "error", report.Err)
		return report
	}

	faces, err := s.extractor.ExtractFaces(ctx, data)
	if err != nil {
		report.Err = &ExtractionError{Stage: "extract", Err: err}
		s.logger.Error("Error during face recognition", "error", report.Err)
		return report
	}

	s.logger.Debug("Detected faces", "count", len(faces))

	report.Faces = make([]LabeledFace, 0, len(faces))
	for _, f := range faces {
		result := s.matcher.Match(f.Embedding)
		if result.Matched {
			s.marker.Mark(result.Name)
		}

		box := facematch.ScaleRect(f.Box, s.scale)
		frame.DrawFace(box, result.Name)
		report.Faces = append(report.Faces, LabeledFace{Box: box, Match: result})
	}

	return report
}

func (s *Session) release() {
	s.state = StateStopped
	if err := s.display.Close(); err != nil {
		s.logger.Warn("Failed to close window", "error", err)
	}
	if err := s.camera.Close(); err != nil {
		s.logger.Warn("Failed to release camera", "error", err)
	}
}
