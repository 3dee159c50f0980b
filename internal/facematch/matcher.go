package facematch

import (
	"github.com/kozaktomas/face-attendance/internal/constants"
)

// Matcher performs a linear nearest-neighbour scan over the enrolled entries.
// A face is accepted only when its nearest entry is within the threshold.
type Matcher struct {
	entries   []Entry
	threshold float64
}

// NewMatcher creates a matcher over entries. The slice is not copied and must not
// be modified afterwards.
func NewMatcher(entries []Entry, threshold float64) *Matcher {
	return &Matcher{
		entries:   entries,
		threshold: threshold,
	}
}

// Len returns the number of enrolled entries
func (m *Matcher) Len() int {
	return len(m.entries)
}

// Threshold returns the acceptance threshold
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match finds the nearest entry for an embedding. Ties go to the earliest entry.
func (m *Matcher) Match(e Embedding) Result {
	result := Result{Name: constants.UnknownName, Index: -1}
	if len(m.entries) == 0 {
		return result
	}

	best := -1
	bestDistance := 0.0
	for i := range m.entries {
		d := EuclideanDistance(e, m.entries[i].Embedding)
		if best == -1 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	result.Index = best
	result.Distance = bestDistance
	if bestDistance <= m.threshold {
		result.Matched = true
		result.Name = m.entries[best].Name
	}
	return result
}
