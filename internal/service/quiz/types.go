package quiz

// Question types emitted by the generation model. The parser stores the
// tag verbatim; normalization conflates anything unrecognized into MCQ.
const (
	TypeMCQ         = "mcq"
	TypeTrueFalse   = "true_false"
	TypeShortAnswer = "short_answer"
)

// Question is one normalized quiz question. Instances are created by
// Parse and must not be mutated afterwards; the scorer and the display
// layer reference the assembled slice in place.
type Question struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"` // nil for short_answer
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// draft is the block-scoped working record while a single question
// block is being parsed. It is discarded after normalization.
type draft struct {
	question    string
	qtype       string
	options     []string
	answer      string
	explanation string
}

// AnswerMap maps a 0-based question index to the user's answer. Missing
// entries are scored as an empty answer.
type AnswerMap map[int]string

// QuestionResult is the per-question outcome inside a ScoreReport.
type QuestionResult struct {
	QuestionNum   int    `json:"question_num"` // 1-based
	Correct       bool   `json:"correct"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// ScoreReport aggregates one scoring pass over a quiz.
type ScoreReport struct {
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}
