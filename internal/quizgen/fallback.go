package quizgen

// DefaultQuestions returns the fixed question set used when generation
// produces nothing usable. The set is deliberately generic so a quiz
// can still run end to end.
func DefaultQuestions() []Question {
	return []Question{
		{
			Text:        "Which of the topics covered so far did the course introduce first?",
			Options:     []string{"The opening topic of the outline", "The most recent topic", "A topic not in the outline", "None were introduced"},
			Correct:     "A",
			Explanation: "Lecture progression follows the outline order, so the opening topic comes first.",
		},
		{
			Text:        "What should you do if a quiz question seems unrelated to the material?",
			Options:     []string{"Skip the rest of the quiz", "Answer with your best guess and review afterwards", "Restart the course", "Ignore the question"},
			Correct:     "B",
			Explanation: "A best-effort answer still feeds the review step, which highlights weak areas.",
		},
		{
			Text:        "After finishing a quiz, how can you try it again?",
			Options:     []string{"You cannot", "Type 'restart quiz'", "Close and reopen the session", "Answer the last question twice"},
			Correct:     "B",
			Explanation: "The phrase 'restart quiz' clears the previous attempt and starts a fresh one.",
		},
	}
}

// PlaceholderQuestion covers the case where a quiz is requested before
// any topic has been taught.
func PlaceholderQuestion() Question {
	return Question{
		Text:        "No course material has been covered yet. What should you do next?",
		Options:     []string{"Take another quiz", "Continue the lecture to cover some material first", "Review the empty outline", "Exit the session"},
		Correct:     "B",
		Explanation: "Quizzes draw on covered topics, so the lecture needs to progress before a quiz is useful.",
	}
}
