package quiz

import "strings"

// Score compares user answers against a quiz and builds a report.
// MCQ and true/false answers must match the stored answer exactly;
// a short answer counts as correct when it is non-blank, regardless of
// content. Returns nil when there is nothing to score.
func Score(questions []Question, answers AnswerMap) *ScoreReport {
	if len(questions) == 0 || len(answers) == 0 {
		return nil
	}

	report := &ScoreReport{
		Total:   len(questions),
		Results: make([]QuestionResult, 0, len(questions)),
	}
	for i, q := range questions {
		userAnswer := answers[i]

		var correct bool
		if q.Type == TypeShortAnswer {
			correct = strings.TrimSpace(userAnswer) != ""
		} else {
			correct = userAnswer == q.CorrectAnswer
		}
		if correct {
			report.Correct++
		}

		report.Results = append(report.Results, QuestionResult{
			QuestionNum:   i + 1,
			Correct:       correct,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	report.Percentage = 100 * float64(report.Correct) / float64(report.Total)
	return report
}

// Feedback returns the encouragement line shown with a score.
func Feedback(percentage float64) string {
	switch {
	case percentage >= 90:
		return "🌟 Excellent work!"
	case percentage >= 75:
		return "✨ Great job!"
	case percentage >= 60:
		return "👍 Good effort!"
	case percentage >= 50:
		return "📚 Keep practicing!"
	default:
		return "💪 Don't give up, try again!"
	}
}
