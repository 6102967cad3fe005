package quiz

import (
	"reflect"
	"testing"
)

func TestSplitBlocks_NoSeparator(t *testing.T) {
	blocks := SplitBlocks("  just one block of text\nwith two lines  ")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0] != "just one block of text\nwith two lines" {
		t.Fatalf("block not trimmed: %q", blocks[0])
	}
}

func TestSplitBlocks_Blank(t *testing.T) {
	if blocks := SplitBlocks("   \n\t\n"); blocks != nil {
		t.Fatalf("expected no blocks for blank input, got %v", blocks)
	}
}

func TestSplitBlocks_DropsEmptySegments(t *testing.T) {
	raw := "first\n===NEXT===\n   \n===NEXT===\nsecond\n===NEXT==="
	blocks := SplitBlocks(raw)
	want := []string{"first", "second"}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("expected %v, got %v", want, blocks)
	}
}

func TestParse_WellFormedMCQ(t *testing.T) {
	raw := "QUESTION 1: What is X?\nTYPE: mcq\nOPTIONS: A) Paris | B) Rome | C) Berlin | D) Madrid\nANSWER: A\nEXPLANATION: Because."
	qs := Parse(raw, 1)
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.Question != "What is X?" {
		t.Fatalf("unexpected question: %q", q.Question)
	}
	if q.Type != TypeMCQ {
		t.Fatalf("unexpected type: %q", q.Type)
	}
	want := []string{"Paris", "Rome", "Berlin", "Madrid"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Fatalf("unexpected options: %v", q.Options)
	}
	if q.CorrectAnswer != "Paris" {
		t.Fatalf("unexpected answer: %q", q.CorrectAnswer)
	}
	if q.Explanation != "Because." {
		t.Fatalf("unexpected explanation: %q", q.Explanation)
	}
}

func TestParseBlock_TooFewLines(t *testing.T) {
	if _, ok := parseBlock("QUESTION: Lonely?\nTYPE: mcq"); ok {
		t.Fatalf("expected block with 2 lines to be rejected")
	}
}

func TestParseBlock_LastQuestionLineWins(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: first\nQUESTION 1: second\nTYPE: mcq\nANSWER: x")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.question != "second" {
		t.Fatalf("expected later QUESTION line to win, got %q", d.question)
	}
}

func TestParseBlock_QuestionWithoutColon(t *testing.T) {
	d, ok := parseBlock("QUESTION one without a colon\nTYPE: short_answer\nANSWER: anything")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.question != "QUESTION one without a colon" {
		t.Fatalf("expected verbatim line, got %q", d.question)
	}
}

func TestParseBlock_ValueContainingColons(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: What time is it: now or later?\nTYPE: short_answer\nEXPLANATION: see chapter 3: timing\nANSWER: now")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.question != "What time is it: now or later?" {
		t.Fatalf("first colon must split, got %q", d.question)
	}
	if d.explanation != "see chapter 3: timing" {
		t.Fatalf("unexpected explanation: %q", d.explanation)
	}
}

func TestParseBlock_OptionCleanup(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"paren labels", "OPTIONS: A) one | B) two", []string{"one", "two"}},
		{"dot labels", "OPTIONS: A. one | B. two", []string{"one", "two"}},
		{"long dot prefix kept", "OPTIONS: e.g. something | 1. two", []string{"g. something", "two"}},
		{"unlabeled kept", "OPTIONS: plain | bare", []string{"plain", "bare"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := parseBlock("QUESTION 1: q?\n" + tt.line + "\nANSWER: x")
			if !ok {
				t.Fatalf("expected parseable block")
			}
			if !reflect.DeepEqual(d.options, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, d.options)
			}
		})
	}
}

func TestParseBlock_OptionsWithoutPipeIgnored(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: q?\nOPTIONS: just one option, no pipes\nANSWER: x")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.options != nil {
		t.Fatalf("expected options untouched, got %v", d.options)
	}
}

func TestParseBlock_AnswerLetterMapping(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: q?\nOPTIONS: A) one | B) two | C) three | D) four\nANSWER: c")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.answer != "three" {
		t.Fatalf("expected lowercase letter mapped to option, got %q", d.answer)
	}
}

func TestParseBlock_AnswerLetterOutOfRange(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: q?\nOPTIONS: A) one | B) two\nANSWER: D")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.answer != "one" {
		t.Fatalf("expected fallback to first option, got %q", d.answer)
	}
}

func TestParseBlock_AnswerLetterNoOptions(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: q?\nTYPE: mcq\nANSWER: B")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.answer != "Option A" {
		t.Fatalf("expected placeholder answer, got %q", d.answer)
	}
}

func TestParseBlock_AnswerVerbatimForNonMCQ(t *testing.T) {
	d, ok := parseBlock("QUESTION 1: q?\nTYPE: true_false\nANSWER: A")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.answer != "A" {
		t.Fatalf("expected verbatim answer for non-mcq type, got %q", d.answer)
	}
}

func TestParseBlock_UnknownLinesIgnored(t *testing.T) {
	d, ok := parseBlock("some preamble the model added\nQUESTION 1: q?\nDIFFICULTY: hard\nANSWER: x")
	if !ok {
		t.Fatalf("expected parseable block")
	}
	if d.question != "q?" || d.answer != "x" {
		t.Fatalf("unknown lines interfered with parsing: %+v", d)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if qs := Parse("", 5); len(qs) != 0 {
		t.Fatalf("expected no questions for empty input, got %d", len(qs))
	}
}

func TestParse_ShortfallKeepsValidQuestions(t *testing.T) {
	block := "QUESTION 1: q?\nTYPE: true_false\nANSWER: True"
	raw := block + "\n===NEXT===\n" + block + "\n===NEXT===\n" + block + "\n===NEXT===\ngarbage"
	qs := Parse(raw, 5)
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions from 3 valid blocks, got %d", len(qs))
	}
}

func TestParse_DiscardsEmptyQuestionText(t *testing.T) {
	raw := "QUESTION:\nTYPE: mcq\nOPTIONS: A) a | B) b | C) c | D) d\nANSWER: A"
	if qs := Parse(raw, 1); len(qs) != 0 {
		t.Fatalf("expected empty-question block to be discarded, got %d questions", len(qs))
	}
}
