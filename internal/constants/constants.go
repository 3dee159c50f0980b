// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Face matching constants
const (
	// DefaultMatchThreshold is the maximum Euclidean distance between two face
	// embeddings for them to be considered the same person.
	// Lower values = stricter matching
	DefaultMatchThreshold = 0.6

	// DefaultServiceMatchThreshold is the maximum Euclidean distance between two
	// unit-length embeddings from the face embedding service. It equals a cosine
	// distance of 0.5.
	DefaultServiceMatchThreshold = 1.0

	// UnknownName is the label for faces that match no enrolled identity
	UnknownName = "Unknown"
)

// Capture constants
const (
	// DefaultCameraDevice is the index of the default video capture device
	DefaultCameraDevice = 0

	// DefaultFrameScale is the linear factor frames are shrunk by before detection.
	// Bounding boxes are scaled back up by the same factor for drawing.
	DefaultFrameScale = 4

	// QuitKey terminates the capture loop when pressed in the display window
	QuitKey = 'q'

	// KeyPollMillis is how long the display waits for a key press each frame
	KeyPollMillis = 1

	// WindowTitle is the title of the live video window
	WindowTitle = "Face Recognition Attendance"
)

// Enrollment constants
const (
	// DefaultKnownFacesDir is the default directory of enrollment images
	DefaultKnownFacesDir = "known_faces"

	// MaxImageSize is the maximum dimension (width or height) for enrollment images
	MaxImageSize = 1920

	// JPEGQuality is used whenever an image is re-encoded for the extractor
	JPEGQuality = 90
)

// ImageExtensions lists the enrollment file suffixes that are loaded.
// Matching is case-sensitive.
var ImageExtensions = []string{".jpg", ".jpeg", ".png"}

// Attendance log constants
const (
	// AttendanceHeader is the first line of every attendance file
	AttendanceHeader = "Name,Date,Time"

	// FileDateLayout formats the date in the attendance file name (ISO)
	FileDateLayout = "2006-01-02"

	// RowDateLayout formats the date inside attendance rows (day-month-year).
	// It differs from FileDateLayout; existing logs depend on both formats.
	RowDateLayout = "02-01-2006"

	// RowTimeLayout formats the time of day inside attendance rows
	RowTimeLayout = "15:04:05"
)
