package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kozaktomas/face-attendance/internal/constants"
)

type Config struct {
	Enrollment EnrollmentConfig
	Capture    CaptureConfig
	Matching   MatchingConfig
	Attendance AttendanceConfig
	Embedding  EmbeddingConfig
	Logging    LoggingConfig
}

type EnrollmentConfig struct {
	Dir string // directory of reference images, defaults to known_faces
}

type CaptureConfig struct {
	Device int // camera index, defaults to 0
	Scale  int // linear downscale factor before detection, defaults to 4
}

type MatchingConfig struct {
	Threshold float64 // max Euclidean distance for a match, 0 means the backend default
}

type AttendanceConfig struct {
	Dir string // where attendance_YYYY-MM-DD.csv files are written, defaults to "."
}

type EmbeddingConfig struct {
	URL       string // face embedding service; when empty the local dlib models are used
	ModelsDir string // dlib model directory, defaults to models
}

type LoggingConfig struct {
	Level string
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envNonNegativeInt is envInt that also accepts zero (camera index 0 is valid).
func envNonNegativeInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Enrollment: EnrollmentConfig{
			Dir: envString("KNOWN_FACES_DIR", constants.DefaultKnownFacesDir),
		},
		Capture: CaptureConfig{
			Device: envNonNegativeInt("CAMERA_DEVICE", constants.DefaultCameraDevice),
			Scale:  envInt("FRAME_SCALE", constants.DefaultFrameScale),
		},
		Matching: MatchingConfig{
			Threshold: envFloat("MATCH_THRESHOLD", 0),
		},
		Attendance: AttendanceConfig{
			Dir: envString("ATTENDANCE_DIR", "."),
		},
		Embedding: EmbeddingConfig{
			URL:       os.Getenv("EMBEDDING_URL"),
			ModelsDir: envString("FACE_MODELS_DIR", "models"),
		},
		Logging: LoggingConfig{
			Level: envString("LOG_LEVEL", "info"),
		},
	}
}

// MatchThreshold returns the configured threshold, or the default of the selected
// embedding backend when none was set: 0.6 for dlib descriptors, 1.0 for the
// normalized service embeddings.
func (c *Config) MatchThreshold() float64 {
	if c.Matching.Threshold > 0 {
		return c.Matching.Threshold
	}
	if c.Embedding.URL != "" {
		return constants.DefaultServiceMatchThreshold
	}
	return constants.DefaultMatchThreshold
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
