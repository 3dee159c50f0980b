package fingerprint

import (
	"context"
	"image"

	"github.com/kozaktomas/face-attendance/internal/facematch"
)

// Face is a single face found in an image
type Face struct {
	Box       image.Rectangle // pixel coordinates in the image that was analysed
	Embedding facematch.Embedding
	Score     float64 // detector confidence, 0 when the backend does not report one
}

// Extractor detects faces in a JPEG image and computes one embedding per face.
// An image without faces yields an empty slice and a nil error.
type Extractor interface {
	ExtractFaces(ctx context.Context, jpegData []byte) ([]Face, error)
	Close() error
}
