package quizgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTextNumberedLayout(t *testing.T) {
	text := `Here are your quiz questions:

Question 1: What is a variable?
A. A named storage location
B. A loop construct
C. A file on disk
D. A compiler flag
Correct answer: A
Explanation: A variable names a storage location for a value.

Question 2: Which keyword defines a function in many languages?
A) import
B) func
C) return
D) break
Correct answer: B
Explanation: Declarations use a function keyword such as func.`

	qs := ParseText(text)
	require.Len(t, qs, 2)
	require.Equal(t, "What is a variable?", qs[0].Text)
	require.Equal(t, "A named storage location", qs[0].Options[0])
	require.Equal(t, "A", qs[0].Correct)
	require.Equal(t, "B", qs[1].Correct)
	require.Equal(t, "Declarations use a function keyword such as func.", qs[1].Explanation)
}

func TestParseTextChineseMarkers(t *testing.T) {
	text := `问题 1：变量是什么？
A. 可变的命名存储
B. 循环结构
C. 磁盘文件
D. 编译选项
正确答案：A
解析：变量命名一块可变的存储。`

	qs := ParseText(text)
	require.Len(t, qs, 1)
	require.Equal(t, "变量是什么？", qs[0].Text)
	require.Equal(t, "A", qs[0].Correct)
	require.NotEmpty(t, qs[0].Explanation)
}

func TestParseTextDropsIncomplete(t *testing.T) {
	text := `Question 1: Only two options here
A. First
B. Second
Correct answer: A

Question 2: Missing answer marker
A. One
B. Two
C. Three
D. Four`

	qs := ParseText(text)
	require.Empty(t, qs)
}

func TestParseTextIgnoresPreamble(t *testing.T) {
	text := `Sure! I generated one question for you.
Note that option labels are letters.

1. What holds a value?
a) A variable
b) A comment
c) Whitespace
d) A keyword
Answer: a
Explanation: Values live in variables.`

	qs := ParseText(text)
	require.Len(t, qs, 1)
	require.Equal(t, "What holds a value?", qs[0].Text)
	require.Equal(t, "A", qs[0].Correct)
}

func TestParseTextEmpty(t *testing.T) {
	require.Empty(t, ParseText(""))
	require.Empty(t, ParseText("no questions in this text at all"))
}
