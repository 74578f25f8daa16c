package pool

// Question is a single practice problem from the question bank.
// Questions are immutable once loaded.
type Question struct {
	// Problem is the prompt shown to the learner.
	Problem string

	// Answer is the expected answer text.
	Answer string

	// Solution is the worked solution shown after grading.
	Solution string

	// Level is the difficulty label, e.g. "Level 3".
	Level string

	// Topic is the subject label, e.g. "Algebra".
	Topic string
}
