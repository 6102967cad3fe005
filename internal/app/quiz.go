package app

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pdfquiz/internal/service/agent"
	"pdfquiz/internal/service/prompt"
	"pdfquiz/internal/service/quiz"
	"pdfquiz/internal/service/session"
)

const (
	minQuestions     = 3
	maxQuestions     = 15
	defaultQuestions = 5
)

type quizRequest struct {
	NumQuestions  int      `json:"num_questions"`
	QuestionTypes []string `json:"question_types"`
	Difficulty    string   `json:"difficulty"`
}

// questionView is a question as shown while taking the quiz: no
// correct answer, no explanation.
type questionView struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
}

func viewQuestions(questions []quiz.Question) []questionView {
	views := make([]questionView, 0, len(questions))
	for i, q := range questions {
		views = append(views, questionView{Index: i, Question: q.Question, Type: q.Type, Options: q.Options})
	}
	return views
}

var knownTypes = map[string]bool{
	quiz.TypeMCQ:         true,
	quiz.TypeTrueFalse:   true,
	quiz.TypeShortAnswer: true,
}

// generateQuiz runs the full generation pipeline: prompt, completion,
// tolerant parse, session install. A shortfall is not an error; the
// shorter quiz is returned as-is.
func (h *handlers) generateQuiz(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	req := quizRequest{
		NumQuestions:  defaultQuestions,
		QuestionTypes: []string{quiz.TypeMCQ, quiz.TypeTrueFalse},
		Difficulty:    prompt.DifficultyMedium,
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if req.NumQuestions < minQuestions || req.NumQuestions > maxQuestions {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("num_questions must be between %d and %d", minQuestions, maxQuestions),
		})
	}
	if len(req.QuestionTypes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please select at least one question type."})
	}
	for _, qt := range req.QuestionTypes {
		if !knownTypes[qt] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("unknown question type %q", qt)})
		}
	}
	if req.Difficulty == "" {
		req.Difficulty = prompt.DifficultyMedium
	}
	if !prompt.ValidDifficulty(req.Difficulty) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "difficulty must be easy, medium or hard"})
	}

	raw, err := h.gen.Chat(c.Context(),
		prompt.BuildQuizPrompt(sess.Text(), req.NumQuestions, req.QuestionTypes, req.Difficulty),
		agent.WithSystem(prompt.QuizInstructions),
	)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to generate quiz: %v", err),
		})
	}

	questions := quiz.Parse(raw, req.NumQuestions)
	sess.SetQuiz(questions)

	return c.JSON(fiber.Map{
		"requested": req.NumQuestions,
		"count":     len(questions),
		"questions": viewQuestions(questions),
	})
}

func (h *handlers) getQuiz(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	if sess.State() == session.StateNoQuiz {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no quiz has been generated"})
	}
	questions := sess.Quiz()
	return c.JSON(fiber.Map{
		"state":     sess.State(),
		"count":     len(questions),
		"questions": viewQuestions(questions),
	})
}

// downloadQuiz serves the full quiz records, answers included, as the
// JSON export.
func (h *handlers) downloadQuiz(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	if sess.State() == session.StateNoQuiz {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no quiz has been generated"})
	}
	data, err := quiz.ExportJSON(sess.Quiz())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sess.Filename+"_quiz.json"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

func (h *handlers) resetQuiz(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	sess.ResetQuiz()
	return c.JSON(fiber.Map{"state": sess.State()})
}

func (h *handlers) putAnswer(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid question index"})
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := sess.SetAnswer(index, body.Answer); err != nil {
		return conflictOr(c, err, fiber.StatusBadRequest)
	}
	return c.JSON(fiber.Map{"state": sess.State()})
}

func (h *handlers) submitQuiz(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	report, err := sess.Submit()
	if err != nil {
		return conflictOr(c, err, fiber.StatusBadRequest)
	}
	if report == nil {
		return c.JSON(fiber.Map{"score": nil})
	}
	return c.JSON(fiber.Map{
		"score":    report,
		"feedback": quiz.Feedback(report.Percentage),
	})
}

// downloadResults serves the plain-text results listing.
func (h *handlers) downloadResults(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	report := sess.Report()
	if report == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "quiz has not been submitted"})
	}
	text := quiz.ExportResults(sess.Quiz(), report)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sess.Filename+"_results.txt"))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
