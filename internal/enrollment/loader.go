// Package enrollment builds the list of known identities from a directory of reference images.
package enrollment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/kozaktomas/face-attendance/internal/constants"
	"github.com/kozaktomas/face-attendance/internal/facematch"
	"github.com/kozaktomas/face-attendance/internal/fingerprint"
)

var (
	// ErrNoFace means the reference image contains no detectable face
	ErrNoFace = errors.New("no face detected")
	// ErrMultipleFaces means the reference image contains more than one face.
	// Such images are rejected because it is ambiguous which face the name belongs to.
	ErrMultipleFaces = errors.New("more than one face detected")
)

// Skipped records a reference image that did not produce an entry
type Skipped struct {
	File   string
	Reason error
}

// Result is the outcome of loading an enrollment directory
type Result struct {
	Entries []facematch.Entry
	Skipped []Skipped
}

// Names returns the names of the loaded entries in load order
func (r *Result) Names() []string {
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Name
	}
	return names
}

type Loader struct {
	extractor fingerprint.Extractor
	logger    *slog.Logger
	progress  io.Writer
}

// NewLoader creates a loader. Progress bar output goes to progress; pass nil to disable it.
func NewLoader(extractor fingerprint.Extractor, logger *slog.Logger, progress io.Writer) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Loader{
		extractor: extractor,
		logger:    logger,
		progress:  progress,
	}
}

// IsImageFile reports whether name has one of the accepted extensions (case-sensitive).
func IsImageFile(name string) bool {
	for _, ext := range constants.ImageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// NameFromFile returns the identity name for a reference image: the file name without extension.
// Leading dots belong to the name, so ".jpg" is the name ".jpg" with no extension.
func NameFromFile(fileName string) string {
	ext := filepath.Ext(strings.TrimLeft(fileName, "."))
	return strings.TrimSuffix(fileName, ext)
}

// isFile reports whether de is a regular file, following symlinks.
// A dangling symlink counts as a file so the read error is reported when it is loaded.
func isFile(dir string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, de.Name()))
	if err != nil {
		return true
	}
	return info.Mode().IsRegular()
}

// Load reads every image in dir (sorted by file name) and extracts one embedding per image.
// Per-file problems are logged and recorded in Result.Skipped; only a failure to list the
// directory is returned as an error.
func (l *Loader) Load(ctx context.Context, dir string) (*Result, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read enrollment directory %s: %w", dir, err)
	}

	var files []string
	for _, de := range dirEntries {
		if !IsImageFile(de.Name()) || !isFile(dir, de) {
			continue
		}
		files = append(files, de.Name())
	}

	l.logger.Info("Loading known faces...", "dir", dir, "images", len(files))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(l.progress),
		progressbar.OptionSetDescription("Loading known faces"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
	)

	result := &Result{}
	for _, fileName := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := l.loadFile(ctx, filepath.Join(dir, fileName))
		bar.Add(1)
		if err != nil {
			l.logger.Warn("Skipping enrollment image", "file", fileName, "reason", err)
			result.Skipped = append(result.Skipped, Skipped{File: fileName, Reason: err})
			continue
		}

		result.Entries = append(result.Entries, *entry)
		l.logger.Info("Loaded known face", "file", fileName, "name", entry.Name)
	}
	bar.Finish()
	fmt.Fprintln(l.progress)

	l.logger.Info("Known faces loaded", "entries", len(result.Entries), "skipped", len(result.Skipped))
	return result, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) (*facematch.Entry, error) {
	name := NameFromFile(filepath.Base(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	jpegData, err := fingerprint.PrepareJPEG(data, constants.MaxImageSize)
	if err != nil {
		return nil, err
	}

	faces, err := l.extractor.ExtractFaces(ctx, jpegData)
	if err != nil {
		return nil, fmt.Errorf("face extraction failed: %w", err)
	}

	switch len(faces) {
	case 0:
		return nil, ErrNoFace
	case 1:
		return &facematch.Entry{Name: name, Embedding: faces[0].Embedding}, nil
	default:
		return nil, fmt.Errorf("%w (%d faces)", ErrMultipleFaces, len(faces))
	}
}
