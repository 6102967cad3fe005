package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON renders the quiz in its persistable shape: one record per
// question with question, type, options (null for short answer),
// correct_answer and explanation.
func ExportJSON(questions []Question) ([]byte, error) {
	return json.MarshalIndent(questions, "", "  ")
}

// ExportResults renders a plain-text results listing for download,
// matching the layout used by the interactive results view.
func ExportResults(questions []Question, report *ScoreReport) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "Quiz Results\n%s\n", rule)
	fmt.Fprintf(&b, "Score: %d/%d (%.1f%%)\n", report.Correct, report.Total, report.Percentage)
	fmt.Fprintf(&b, "%s\n\n", Feedback(report.Percentage))
	fmt.Fprintf(&b, "%s\nDetailed Results:\n%s\n\n", rule, rule)

	for _, r := range report.Results {
		glyph := "✗"
		if r.Correct {
			glyph = "✓"
		}
		fmt.Fprintf(&b, "\nQuestion %d: %s\n", r.QuestionNum, glyph)
		fmt.Fprintf(&b, "%s\n", questions[r.QuestionNum-1].Question)
		fmt.Fprintf(&b, "Your Answer: %s\n", r.UserAnswer)
		fmt.Fprintf(&b, "Correct Answer: %s\n", r.CorrectAnswer)
		fmt.Fprintf(&b, "Explanation: %s\n\n", r.Explanation)
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 50))
	}
	return b.String()
}
