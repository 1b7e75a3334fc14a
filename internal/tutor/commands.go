package tutor

import "strings"

// Command is the coarse classification of a user turn.
type Command int

const (
	// CommandNone means the input is free-form text (a question).
	CommandNone Command = iota
	CommandContinue
	CommandQuiz
	CommandReview
	CommandExit
)

// Command token sets. These are the single source of truth for turn
// classification; every component that needs to detect "is this a
// continue-style command" goes through this table.
var (
	exitSet     = tokenSet("exit", "quit", "q")
	continueSet = tokenSet("c", "continue", "继续", "开始", "好的", "ok", "yes")
	quizSet     = tokenSet("测验", "test", "测试")
	reviewSet   = tokenSet("回顾", "review", "back")

	// restartKeywords are matched by containment, not exact membership,
	// so "please restart quiz" still triggers a restart.
	restartKeywords = []string{"restart quiz", "重新测验"}
)

func tokenSet(tokens ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// normalize trims surrounding whitespace and lowercases the input.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Classify maps raw user text to a Command. Pure and total: every input
// maps to exactly one command, unknown input classifies as CommandNone.
func Classify(text string) Command {
	n := normalize(text)
	switch {
	case member(exitSet, n):
		return CommandExit
	case member(continueSet, n):
		return CommandContinue
	case member(quizSet, n):
		return CommandQuiz
	case member(reviewSet, n):
		return CommandReview
	default:
		return CommandNone
	}
}

func member(set map[string]struct{}, token string) bool {
	_, ok := set[token]
	return ok
}

// IsContinue reports whether the input is a continue-style command.
func IsContinue(text string) bool {
	return member(continueSet, normalize(text))
}

// IsCommand reports whether the input is any recognized command token.
// Free-form questions return false.
func IsCommand(text string) bool {
	return Classify(text) != CommandNone
}

// IsRestartQuiz reports whether the input asks for a quiz restart.
func IsRestartQuiz(text string) bool {
	n := normalize(text)
	for _, kw := range restartKeywords {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}
