// Package attendance keeps the daily attendance log: one CSV file per day with at most
// one row per person.
//
// The file name uses an ISO date (attendance_2024-03-15.csv) while rows use day-month-year
// (alice,15-03-2024,09:12:44). Existing logs and the tools reading them depend on both.
package attendance

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kozaktomas/face-attendance/internal/constants"
)

// Recorder appends attendance rows. It is not safe for concurrent use and assumes it is
// the only writer of its directory.
type Recorder struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Recorder
type Option func(*Recorder)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithLogger sets the logger used by Mark
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// NewRecorder creates a recorder writing day files into dir.
func NewRecorder(dir string, opts ...Option) *Recorder {
	r := &Recorder{
		dir:    dir,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FileName returns the attendance file name for the day of t
func FileName(t time.Time) string {
	return "attendance_" + t.Format(constants.FileDateLayout) + ".csv"
}

// Path returns the full path of the attendance file for the day of t
func (r *Recorder) Path(t time.Time) string {
	return filepath.Join(r.dir, FileName(t))
}

// Record makes sure name has a row for today. It returns true when a new row was appended
// and false when today's row already existed.
func (r *Recorder) Record(name string) (bool, error) {
	now := r.now()
	path := r.Path(now)

	if err := ensureFile(path); err != nil {
		return false, err
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read attendance file: %w", err)
	}

	today := now.Format(constants.RowDateLayout)
	prefix := []byte(name + "," + today)
	for _, line := range bytes.Split(existing, []byte("\n")) {
		if bytes.HasPrefix(line, prefix) {
			return false, nil
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open attendance file: %w", err)
	}
	defer file.Close()

	row := fmt.Sprintf("%s,%s,%s\n", name, today, now.Format(constants.RowTimeLayout))
	if _, err := file.WriteString(row); err != nil {
		return false, fmt.Errorf("failed to write attendance row: %w", err)
	}

	return true, nil
}

// Mark is Record for the capture loop: errors are logged and swallowed so a broken
// attendance file never stops recognition.
func (r *Recorder) Mark(name string) bool {
	added, err := r.Record(name)
	if err != nil {
		r.logger.Error("Error in marking attendance", "name", name, "error", err)
		return false
	}
	if added {
		r.logger.Info("Attendance marked", "name", name)
	}
	return added
}

// ensureFile creates the attendance file with its header row if it does not exist yet.
func ensureFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("failed to create attendance file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(constants.AttendanceHeader + "\n"); err != nil {
		return fmt.Errorf("failed to write attendance header: %w", err)
	}
	return nil
}
