package quizgen

import (
	"fmt"
	"strings"
)

// ValidateQuestion checks one question for structural soundness:
// non-empty text, exactly four non-empty options, and a correct label
// in A-D. It does not judge content quality.
func ValidateQuestion(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != len(OptionLabels) {
		return fmt.Errorf("question has %d options, want %d", len(q.Options), len(OptionLabels))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %s is empty", OptionLabels[i])
		}
	}
	if !ValidLabel(q.Correct) {
		return fmt.Errorf("correct label %q is not one of A-D", q.Correct)
	}
	return nil
}

// ValidateSet applies ValidateQuestion across a whole question set.
func ValidateSet(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("question set is empty")
	}
	for i, q := range qs {
		if err := ValidateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
