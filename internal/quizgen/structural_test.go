package quizgen

import "testing"

func TestValidateQuestion(t *testing.T) {
	valid := Question{
		Text:    "What is 2+2?",
		Options: []string{"3", "4", "5", "22"},
		Correct: "B",
	}

	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
	}{
		{name: "valid", mutate: func(q *Question) {}},
		{name: "empty text", mutate: func(q *Question) { q.Text = "  " }, wantErr: true},
		{name: "too few options", mutate: func(q *Question) { q.Options = q.Options[:3] }, wantErr: true},
		{name: "too many options", mutate: func(q *Question) { q.Options = append(q.Options, "6") }, wantErr: true},
		{name: "blank option", mutate: func(q *Question) { q.Options[2] = "" }, wantErr: true},
		{name: "bad label", mutate: func(q *Question) { q.Correct = "E" }, wantErr: true},
		{name: "missing label", mutate: func(q *Question) { q.Correct = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			q.Options = append([]string(nil), valid.Options...)
			tt.mutate(&q)
			err := ValidateQuestion(q)
			if tt.wantErr && err == nil {
				t.Errorf("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSet(t *testing.T) {
	if err := ValidateSet(nil); err == nil {
		t.Error("empty set should be rejected")
	}
	if err := ValidateSet(DefaultQuestions()); err != nil {
		t.Errorf("default questions should validate: %v", err)
	}
	if err := ValidateQuestion(PlaceholderQuestion()); err != nil {
		t.Errorf("placeholder question should validate: %v", err)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "A"},
		{" b ", "B"},
		{"C.", "C"},
		{"d", "D"},
		{"", ""},
		{"AB", "AB"},
	}
	for _, tt := range tests {
		if got := NormalizeLabel(tt.in); got != tt.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
