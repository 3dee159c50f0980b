// Package dlib provides a local face extractor backed by dlib's ResNet face model.
// It needs cgo and the dlib model files (shape_predictor_5_face_landmarks.dat,
// dlib_face_recognition_resnet_model_v1.dat, mmod_human_face_detector.dat).
package dlib

import (
	"context"
	"fmt"

	"github.com/Kagami/go-face"

	"github.com/kozaktomas/face-attendance/internal/facematch"
	"github.com/kozaktomas/face-attendance/internal/fingerprint"
)

// Extractor detects faces and computes 128-dimensional descriptors with go-face.
type Extractor struct {
	rec *face.Recognizer
}

// New loads the models from modelsDir.
func New(modelsDir string) (*Extractor, error) {
	rec, err := face.NewRecognizer(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load face models from %s: %w", modelsDir, err)
	}
	return &Extractor{rec: rec}, nil
}

// ExtractFaces runs detection and descriptor extraction on a JPEG image.
// The context is only checked before the call; dlib cannot be interrupted.
func (e *Extractor) ExtractFaces(ctx context.Context, jpegData []byte) ([]fingerprint.Face, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found, err := e.rec.Recognize(jpegData)
	if err != nil {
		return nil, fmt.Errorf("dlib recognition failed: %w", err)
	}

	faces := make([]fingerprint.Face, len(found))
	for i, f := range found {
		faces[i] = fingerprint.Face{
			Box:       f.Rectangle,
			Embedding: facematch.FromFloat32(f.Descriptor[:]),
		}
	}
	return faces, nil
}

func (e *Extractor) Close() error {
	e.rec.Close()
	return nil
}
