package quizgen

import (
	"regexp"
	"strings"
)

var (
	questionRe = regexp.MustCompile(`^(?:Question\s*\d+|问题\s*\d+|Q\d+|\d+)[\.:：)]\s*(.+)$`)
	optionRe   = regexp.MustCompile(`^([A-Da-d])[\.:：)]\s*(.+)$`)
	correctRe  = regexp.MustCompile(`(?i)^(?:correct answer|answer|正确答案)[\s:：]*([A-Da-d])\b`)
	explainRe  = regexp.MustCompile(`(?i)^(?:explanation|解析|解释)[\s:：]*(.+)$`)
)

// ParseText recovers questions from free-form quiz text. Providers that
// ignore the structured output instruction still tend to emit a
// recognizable numbered layout, which this parser accepts line by line.
// Questions that end up structurally incomplete are dropped.
func ParseText(text string) []Question {
	var (
		out []Question
		cur *Question
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Correct = NormalizeLabel(cur.Correct)
		if ValidateQuestion(*cur) == nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := questionRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &Question{Text: strings.TrimSpace(m[1])}
			continue
		}
		if cur == nil {
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil && len(cur.Options) < len(OptionLabels) {
			cur.Options = append(cur.Options, strings.TrimSpace(m[2]))
			continue
		}
		if m := correctRe.FindStringSubmatch(line); m != nil {
			cur.Correct = m[1]
			continue
		}
		if m := explainRe.FindStringSubmatch(line); m != nil {
			cur.Explanation = strings.TrimSpace(m[1])
			continue
		}
	}
	flush()
	return out
}
