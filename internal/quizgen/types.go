package quizgen

import "strings"

// OptionLabels are the four choice labels every question carries.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is one multiple-choice quiz question. Generated once per
// assessment and immutable while that assessment runs.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string `json:"question"`

	// Options holds exactly 4 labeled choices, e.g. "A. The hidden layer".
	Options []string `json:"options"`

	// Correct is the label of the right choice: "A", "B", "C" or "D".
	Correct string `json:"correct"`

	// Explanation says why the correct choice is right. Shown with the
	// scored results.
	Explanation string `json:"explanation"`
}

// NormalizeLabel reduces an answer to its canonical label form:
// trimmed, uppercased, stripped of a trailing dot ("b." -> "B").
func NormalizeLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	return s
}

// ValidLabel reports whether s normalizes to one of the four labels.
func ValidLabel(s string) bool {
	n := NormalizeLabel(s)
	for _, l := range OptionLabels {
		if n == l {
			return true
		}
	}
	return false
}
