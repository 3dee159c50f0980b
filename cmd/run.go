package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kozaktomas/face-attendance/internal/attendance"
	"github.com/kozaktomas/face-attendance/internal/camera"
	"github.com/kozaktomas/face-attendance/internal/config"
	"github.com/kozaktomas/face-attendance/internal/constants"
	"github.com/kozaktomas/face-attendance/internal/enrollment"
	"github.com/kozaktomas/face-attendance/internal/facematch"
	"github.com/kozaktomas/face-attendance/internal/recognition"
	"github.com/spf13/cobra"
)

func openCamera(device int) (recognition.Camera, error) {
	cam, err := camera.Open(device)
	if err != nil {
		return nil, err
	}
	return cam, nil
}

func openWindow(title string) recognition.Display {
	return camera.NewWindow(title)
}

func runAttendance(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor, err := newExtractor(cfg, logger)
	if err != nil {
		return err
	}
	defer extractor.Close()

	loaded, err := enrollment.NewLoader(extractor, logger, os.Stderr).Load(ctx, cfg.Enrollment.Dir)
	if err != nil {
		return err
	}
	if len(loaded.Entries) == 0 {
		logger.Warn("No known faces loaded, every face will be labeled Unknown", "dir", cfg.Enrollment.Dir)
	} else {
		logger.Info("Known identities", "names", loaded.Names())
	}

	matcher := facematch.NewMatcher(loaded.Entries, cfg.MatchThreshold())
	recorder := attendance.NewRecorder(cfg.Attendance.Dir, attendance.WithLogger(logger))

	devices := recognition.Devices{
		CameraIndex: cfg.Capture.Device,
		WindowTitle: constants.WindowTitle,
		OpenCamera:  openCamera,
		OpenDisplay: openWindow,
	}
	return recognition.Start(ctx, devices, extractor, matcher, recorder, recognition.Options{
		Scale:  cfg.Capture.Scale,
		Logger: logger,
	})
}
