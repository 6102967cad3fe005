package prompt

import (
	"fmt"
	"strings"
)

// Summary length presets and their word-count ranges.
const (
	LengthBrief    = "brief"
	LengthStandard = "standard"
	LengthDetailed = "detailed"
)

// Summary output formats.
const (
	FormatParagraphs = "paragraphs"
	FormatBullets    = "bullets"
)

// Difficulty levels for quiz generation.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var lengthSpecs = map[string]string{
	LengthBrief:    "100-200",
	LengthStandard: "200-500",
	LengthDetailed: "500-800",
}

// ValidLength reports whether a summary length preset is known.
func ValidLength(length string) bool {
	_, ok := lengthSpecs[length]
	return ok
}

// ValidFormat reports whether a summary format is known.
func ValidFormat(format string) bool {
	return format == FormatParagraphs || format == FormatBullets
}

// ValidDifficulty reports whether a quiz difficulty is known.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// SummarizerInstructions is the system prompt for summary generation.
const SummarizerInstructions = `You are an expert document summarizer. Your role is to:
1. Read and understand the provided document text
2. Identify the main topics, key points, and important details
3. Generate a clear, concise, and coherent summary
4. Ensure the summary captures the essence of the document
5. Follow the specified length and format requirements
6. Do not cut off mid-sentence - complete all thoughts

When creating summaries:
- For BRIEF summaries (100-200 words): Focus on the absolute main points only
- For STANDARD summaries (200-500 words): Cover main topics with moderate detail
- For DETAILED summaries (500-800 words): Include comprehensive coverage with examples

For BULLET format: Use clear bullet points with one main idea per bullet
For PARAGRAPH format: Write flowing, connected paragraphs`

// QuizInstructions is the system prompt for quiz generation.
const QuizInstructions = `You are an expert quiz creator. Your role is to:
1. Analyze the document content thoroughly
2. Identify key concepts, facts, and important information
3. Create well-structured questions that test comprehension
4. Ensure questions cover different parts of the document
5. Make questions clear, unambiguous, and educational

Question Guidelines:
- MCQ (Multiple Choice): Create 1 correct answer and 3 plausible but incorrect distractors
- True/False: Create statements that are clearly true or false based on the document
- Short Answer: Ask questions that require understanding, not just memorization

Quality Standards:
- Questions should be clear and unambiguous
- Options should be distinct and not overlapping (for MCQ)
- Correct answers must be verifiable from the document
- Explanations should reference specific content from the document
- Avoid trick questions or overly technical language
- Difficulty should match the requested level`

// BuildSummaryPrompt renders the user prompt for a summary request.
func BuildSummaryPrompt(text, length, format string) string {
	formatInstruction := "Format the summary as flowing, well-connected paragraphs."
	if format == FormatBullets {
		formatInstruction = "Format the summary as clear bullet points, one main idea per bullet."
	}

	return fmt.Sprintf(`Please summarize the following document.

**Requirements:**
- Length: %s words (%s)
- Format: %s
- Extract and list the key topics covered

**Document Text:**
%s

**Output Format:**
Provide:
1. The summary (following the length and format requirements)
2. Word count of your summary
3. List of key topics (3-7 topics)

Ensure the summary is complete and doesn't cut off mid-sentence.`, lengthSpecs[length], length, formatInstruction, text)
}

// BuildQuizPrompt renders the user prompt for a quiz request. The
// format contract here (===NEXT=== separators, QUESTION/TYPE/OPTIONS/
// ANSWER/EXPLANATION lines) is what the quiz parser expects back.
func BuildQuizPrompt(text string, numQuestions int, questionTypes []string, difficulty string) string {
	types := strings.Join(questionTypes, ", ")

	return fmt.Sprintf(`Create a quiz with EXACTLY %[1]d questions based on the following document.

**Requirements:**
- Generate ALL %[1]d questions
- Question types to use: %[2]s
- Difficulty level: %[3]s
- Mix the question types if multiple types are specified
- Cover different parts of the document

**Document Text:**
%[4]s

**CRITICAL: You MUST generate ALL %[1]d questions using this EXACT format for EACH question:**

QUESTION 1: [Write the first question here]
TYPE: mcq
OPTIONS: A) first option | B) second option | C) third option | D) fourth option
ANSWER: A
EXPLANATION: [Why A is correct with reference to the document]

===NEXT===

QUESTION 2: [Write the second question here]
TYPE: true_false
OPTIONS: True | False
ANSWER: True
EXPLANATION: [Why this is true with reference to the document]

===NEXT===

[Continue this pattern for ALL %[1]d questions]

**IMPORTANT NOTES:**
- Use "===NEXT===" to separate each question
- For TYPE, use exactly: mcq, true_false, or short_answer
- For MCQ, provide exactly 4 options separated by " | "
- For True/False, use exactly: "True | False"
- For Short Answer, leave OPTIONS blank
- Generate ALL %[1]d questions before stopping`, numQuestions, types, difficulty, text)
}
