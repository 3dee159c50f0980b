package camera

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/kozaktomas/face-attendance/internal/facematch"
)

var green = color.RGBA{R: 0, G: 255, B: 0, A: 0}

const (
	boxThickness   = 2
	labelScale     = 0.75
	labelThickness = 2
)

// Frame is a BGR image straight from the capture device
type Frame struct {
	mat gocv.Mat
}

// Encode shrinks the frame by scale and encodes it as JPEG. OpenCV's encoder takes BGR
// input and writes a standard (RGB) JPEG, which is what both extractor backends decode.
func (f *Frame) Encode(scale int) ([]byte, error) {
	if f.mat.Empty() {
		return nil, errors.New("empty frame")
	}

	src := f.mat
	if scale > 1 {
		small := gocv.NewMat()
		defer small.Close()
		factor := 1 / float64(scale)
		gocv.Resize(f.mat, &small, image.Point{}, factor, factor, gocv.InterpolationLinear)
		src = small
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, src)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	defer buf.Close()

	// The native buffer is freed on Close, so copy it out.
	return append([]byte(nil), buf.GetBytes()...), nil
}

// DrawFace draws a green box with the label above its top-left corner.
// Hershey fonts are ASCII only, so the label is folded first.
func (f *Frame) DrawFace(box image.Rectangle, label string) {
	gocv.Rectangle(&f.mat, box, green, boxThickness)
	gocv.PutText(&f.mat, facematch.DisplayLabel(label), facematch.LabelOrigin(box), gocv.FontHersheySimplex, labelScale, green, labelThickness)
}

func (f *Frame) Close() error {
	return f.mat.Close()
}
