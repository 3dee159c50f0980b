// Package facematch matches detected face embeddings against the enrolled identities.
// It is shared between the capture loop and the enroll command.
package facematch

// Embedding is a fixed-length vector summarizing a face's identity-relevant features
type Embedding []float64

// Entry is one enrolled identity. Names are not unique: two reference images with
// the same stem produce two entries.
type Entry struct {
	Name      string
	Embedding Embedding
}

// Result is the outcome of matching one detected face
type Result struct {
	Name     string  // enrolled name, or constants.UnknownName
	Index    int     // index of the nearest entry, -1 if there were no entries
	Distance float64 // distance to the nearest entry
	Matched  bool    // nearest entry is within the acceptance threshold
}

// FromFloat32 converts an embedding produced by a float32 model into an Embedding
func FromFloat32(v []float32) Embedding {
	out := make(Embedding, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
