package predict

// StaticClassifier returns a fixed label (or error) for every input.
// Used by tests and previews in place of a trained artifact.
type StaticClassifier struct {
	Label int
	Err   error
}

func (s StaticClassifier) Predict(Features) (int, error) {
	return s.Label, s.Err
}
