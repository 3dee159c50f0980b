package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/kozaktomas/face-attendance/internal/config"
	"github.com/kozaktomas/face-attendance/internal/fingerprint"
	"github.com/kozaktomas/face-attendance/internal/fingerprint/dlib"
)

// newLogger creates the process logger. Every line carries the run id so output
// from one session can be picked out of a shared log.
func newLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()})
	logger := slog.New(handler).With("run", uuid.NewString())
	slog.SetDefault(logger)
	return logger
}

// newExtractor picks the face embedding backend: the HTTP service when EMBEDDING_URL
// is set, the local dlib models otherwise.
func newExtractor(cfg *config.Config, logger *slog.Logger) (fingerprint.Extractor, error) {
	if cfg.Embedding.URL != "" {
		logger.Info("Using face embedding service", "url", cfg.Embedding.URL)
		return fingerprint.NewFaceClient(cfg.Embedding.URL), nil
	}

	logger.Info("Loading dlib face models", "dir", cfg.Embedding.ModelsDir)
	ext, err := dlib.New(cfg.Embedding.ModelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize face recognizer: %w", err)
	}
	return ext, nil
}
