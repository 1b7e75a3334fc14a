package tutor

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"exit", CommandExit},
		{"quit", CommandExit},
		{"Q", CommandExit},
		{"  EXIT  ", CommandExit},
		{"c", CommandContinue},
		{"continue", CommandContinue},
		{"继续", CommandContinue},
		{"开始", CommandContinue},
		{"好的", CommandContinue},
		{"ok", CommandContinue},
		{"yes", CommandContinue},
		{"测验", CommandQuiz},
		{"test", CommandQuiz},
		{"测试", CommandQuiz},
		{"回顾", CommandReview},
		{"review", CommandReview},
		{"back", CommandReview},
		{"what is a goroutine?", CommandNone},
		{"", CommandNone},
		{"continue please", CommandNone},
		{"testing", CommandNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsRestartQuiz(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"restart quiz", true},
		{"RESTART QUIZ", true},
		{"please restart quiz now", true},
		{"重新测验", true},
		{"我想重新测验一次", true},
		{"restart", false},
		{"quiz", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsRestartQuiz(tt.input); got != tt.want {
			t.Errorf("IsRestartQuiz(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsContinue(t *testing.T) {
	if !IsContinue("  Continue ") {
		t.Error("whitespace and case should not matter")
	}
	if IsContinue("continue the lecture") {
		t.Error("membership is exact, not containment")
	}
}

func TestPendingQuestion(t *testing.T) {
	msgs := []Message{
		UserMessage("what is a pointer?"),
		AssistantMessage(AgentQA, "a pointer is ..."),
		UserMessage("continue"),
		UserMessage("   "),
	}
	q, ok := PendingQuestion(msgs)
	if !ok || q != "what is a pointer?" {
		t.Errorf("got (%q, %v), want the question before the commands", q, ok)
	}

	if _, ok := PendingQuestion([]Message{UserMessage("c")}); ok {
		t.Error("a lone continue command is not a pending question")
	}
	if _, ok := PendingQuestion(nil); ok {
		t.Error("empty transcript has no pending question")
	}
}
