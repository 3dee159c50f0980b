package facematch

import (
	"math"
	"testing"

	"github.com/kozaktomas/face-attendance/internal/constants"
)

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        Embedding
		b        Embedding
		expected float64
	}{
		{"identical", Embedding{1, 2, 3}, Embedding{1, 2, 3}, 0},
		{"3-4-5 triangle", Embedding{0, 0}, Embedding{3, 4}, 5},
		{"unit apart", Embedding{0, 0, 0}, Embedding{0, 1, 0}, 1},
		{"length mismatch", Embedding{0, 0}, Embedding{0, 0, 0}, math.Inf(1)},
		{"empty", Embedding{}, Embedding{}, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EuclideanDistance(tt.a, tt.b)
			if math.IsInf(tt.expected, 1) {
				if !math.IsInf(result, 1) {
					t.Errorf("EuclideanDistance() = %v, want +Inf", result)
				}
				return
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("EuclideanDistance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func testEntries() []Entry {
	return []Entry{
		{Name: "alice", Embedding: Embedding{0, 0, 0}},
		{Name: "bob", Embedding: Embedding{1, 0, 0}},
		{Name: "carol", Embedding: Embedding{0, 2, 0}},
	}
}

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher(testEntries(), 0.6)

	tests := []struct {
		name          string
		query         Embedding
		expectedName  string
		expectedIndex int
		matched       bool
	}{
		{"exact alice", Embedding{0, 0, 0}, "alice", 0, true},
		{"near bob", Embedding{0.9, 0.1, 0}, "bob", 1, true},
		{"at threshold is accepted", Embedding{0, 0, 0.6}, "alice", 0, true},
		{"nearest beyond threshold", Embedding{0, 0, 0.61}, "Unknown", 0, false},
		{"far from everyone", Embedding{5, 5, 5}, "Unknown", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Match(tt.query)
			if result.Name != tt.expectedName {
				t.Errorf("Match() name = %q, want %q", result.Name, tt.expectedName)
			}
			if result.Index != tt.expectedIndex {
				t.Errorf("Match() index = %d, want %d", result.Index, tt.expectedIndex)
			}
			if result.Matched != tt.matched {
				t.Errorf("Match() matched = %v, want %v", result.Matched, tt.matched)
			}
		})
	}
}

func TestMatcher_NearestWinsOverEarlierWithinThreshold(t *testing.T) {
	// Both entries are within the threshold; the nearer one must win even though
	// the other comes first.
	m := NewMatcher([]Entry{
		{Name: "first", Embedding: Embedding{0.5, 0}},
		{Name: "second", Embedding: Embedding{0.1, 0}},
	}, 0.6)

	result := m.Match(Embedding{0, 0})
	if result.Name != "second" {
		t.Errorf("expected nearest entry 'second', got %q", result.Name)
	}
	if math.Abs(result.Distance-0.1) > 1e-9 {
		t.Errorf("expected distance 0.1, got %v", result.Distance)
	}
}

func TestMatcher_TieGoesToFirstEntry(t *testing.T) {
	m := NewMatcher([]Entry{
		{Name: "alice", Embedding: Embedding{1, 0}},
		{Name: "alice", Embedding: Embedding{-1, 0}},
	}, 1.5)

	result := m.Match(Embedding{0, 0})
	if result.Index != 0 {
		t.Errorf("expected tie to resolve to index 0, got %d", result.Index)
	}
}

func TestMatcher_NoEntries(t *testing.T) {
	m := NewMatcher(nil, 0.6)

	result := m.Match(Embedding{0, 0, 0})
	if result.Name != "Unknown" {
		t.Errorf("expected 'Unknown', got %q", result.Name)
	}
	if result.Index != -1 {
		t.Errorf("expected index -1, got %d", result.Index)
	}
	if result.Matched {
		t.Error("expected no match with empty enrollment")
	}
}

func TestMatcher_DimensionMismatchIsUnknown(t *testing.T) {
	m := NewMatcher(testEntries(), 0.6)

	result := m.Match(Embedding{0, 0})
	if result.Matched {
		t.Errorf("expected mismatched dimensions not to match, got %+v", result)
	}
}

func TestFromFloat32(t *testing.T) {
	result := FromFloat32([]float32{0.5, -1, 2})
	expected := Embedding{0.5, -1, 2}
	if len(result) != len(expected) {
		t.Fatalf("FromFloat32() length = %d, want %d", len(result), len(expected))
	}
	for i := range result {
		if result[i] != expected[i] {
			t.Errorf("FromFloat32()[%d] = %v, want %v", i, result[i], expected[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Embedding
		expected Embedding
	}{
		{"scales to unit length", Embedding{3, 0, 4}, Embedding{0.6, 0, 0.8}},
		{"unit vector unchanged", Embedding{0, 1}, Embedding{0, 1}},
		{"zero vector stays zero", Embedding{0, 0}, Embedding{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d values, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("Normalize(%v)[%d] = %f, want %f", tt.input, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	in := Embedding{3, 0, 4}
	Normalize(in)
	if in[0] != 3 || in[2] != 4 {
		t.Errorf("expected input to be left alone, got %v", in)
	}
}

func TestServiceThreshold_MatchesCosineHalf(t *testing.T) {
	// On unit vectors cosine distance 0.5 is an angle of 60 degrees and L2 distance 1.0.
	at := func(deg float64) Embedding {
		rad := deg * math.Pi / 180
		return Normalize(Embedding{math.Cos(rad), math.Sin(rad)})
	}
	m := NewMatcher([]Entry{{Name: "alice", Embedding: at(0)}}, constants.DefaultServiceMatchThreshold)

	if got := m.Match(at(55)); !got.Matched || got.Name != "alice" {
		t.Errorf("expected 55-degree neighbour to match, got %+v", got)
	}
	if got := m.Match(at(65)); got.Matched {
		t.Errorf("expected 65-degree neighbour to be Unknown, got %+v", got)
	}
}
