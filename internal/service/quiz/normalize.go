package quiz

import (
	"fmt"
	"strings"
)

// Defaults applied during normalization when the model left a field
// blank. These strings are part of the export format.
const (
	defaultExplanation   = "Based on the document content."
	defaultShortAnswer   = "Answer based on document content"
	defaultCorrectAnswer = "Not specified"
)

// normalize applies the per-type repair rules to a draft and produces
// a well-formed Question. Drafts with empty question text are discarded
// (reported as ok=false). Unrecognized type tags get the MCQ repair.
func (d *draft) normalize() (Question, bool) {
	if d.question == "" {
		return Question{}, false
	}

	switch d.qtype {
	case TypeTrueFalse:
		d.options = []string{"True", "False"}
		switch strings.ToLower(d.answer) {
		case "true":
			d.answer = "True"
		case "false":
			d.answer = "False"
		default:
			d.answer = "True"
		}
	case TypeShortAnswer:
		d.options = nil
		if d.answer == "" {
			d.answer = defaultShortAnswer
		}
	default:
		// mcq, and anything the model invented
		d.qtype = TypeMCQ
		for len(d.options) < 4 {
			d.options = append(d.options, fmt.Sprintf("Option %d", len(d.options)+1))
		}
		if d.answer == "" {
			d.answer = d.options[0]
		}
	}

	if d.explanation == "" {
		d.explanation = defaultExplanation
	}
	if d.answer == "" {
		d.answer = defaultCorrectAnswer
	}

	return Question{
		Question:      d.question,
		Type:          d.qtype,
		Options:       d.options,
		CorrectAnswer: d.answer,
		Explanation:   d.explanation,
	}, true
}
