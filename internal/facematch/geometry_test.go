package facematch

import (
	"image"
	"testing"
)

func TestScaleRect(t *testing.T) {
	tests := []struct {
		name     string
		rect     image.Rectangle
		factor   int
		expected image.Rectangle
	}{
		{
			name:     "quarter frame scaled by 4",
			rect:     image.Rect(10, 20, 30, 40),
			factor:   4,
			expected: image.Rect(40, 80, 120, 160),
		},
		{
			name:     "factor 1 is identity",
			rect:     image.Rect(10, 20, 30, 40),
			factor:   1,
			expected: image.Rect(10, 20, 30, 40),
		},
		{
			name:     "zero factor is identity",
			rect:     image.Rect(10, 20, 30, 40),
			factor:   0,
			expected: image.Rect(10, 20, 30, 40),
		},
		{
			name:     "empty rect",
			rect:     image.Rectangle{},
			factor:   4,
			expected: image.Rectangle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScaleRect(tt.rect, tt.factor)
			if result != tt.expected {
				t.Errorf("ScaleRect(%v, %d) = %v, want %v", tt.rect, tt.factor, result, tt.expected)
			}
		})
	}
}

func TestLabelOrigin(t *testing.T) {
	result := LabelOrigin(image.Rect(40, 80, 120, 160))
	expected := image.Pt(40, 70)
	if result != expected {
		t.Errorf("LabelOrigin() = %v, want %v", result, expected)
	}
}
