package interview

import (
	"fmt"
	"strings"
)

// InputType describes how an answer to a question should be captured.
type InputType string

const (
	InputText        InputType = "text"
	InputNumber      InputType = "number"
	InputSelect      InputType = "select"
	InputMultiSelect InputType = "multi_select"
)

// Question is one immutable entry of a question bank.
type Question struct {
	Key         string
	Prompt      string
	InputType   InputType
	Options     []string
	Placeholder string
}

// QuestionBank is an ordered list of questions. The order defines the
// interview sequence.
type QuestionBank []Question

// Format renders the question for display. Select questions get a
// 1-based numbered option list, and the placeholder is appended as a hint.
func (q Question) Format() string {
	var b strings.Builder
	b.WriteString(q.Prompt)

	switch q.InputType {
	case InputSelect:
		if len(q.Options) > 0 {
			b.WriteString("\n\nOptions:")
			for i, opt := range q.Options {
				b.WriteString(fmt.Sprintf("\n%d. %s", i+1, opt))
			}
		}
	case InputMultiSelect:
		if len(q.Options) > 0 {
			b.WriteString("\n\nSelect one or more (separate with commas):")
			for i, opt := range q.Options {
				b.WriteString(fmt.Sprintf("\n%d. %s", i+1, opt))
			}
		}
	}

	if q.Placeholder != "" {
		b.WriteString(fmt.Sprintf("\n\n(Hint: %s)", q.Placeholder))
	}

	return b.String()
}
