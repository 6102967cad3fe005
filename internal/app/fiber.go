package app

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"pdfquiz/internal/server"
	"pdfquiz/internal/service/agent"
	"pdfquiz/internal/service/session"
)

// Generator is the slice of the agent the handlers need; tests inject
// a stub returning canned completions.
type Generator interface {
	Chat(ctx context.Context, userPrompt string, opts ...agent.ChatOption) (string, error)
}

// handlers carries the collaborators shared by all routes.
type handlers struct {
	gen      Generator
	sessions *session.Registry
}

// NewServer builds the Fiber app and mounts the quiz API routes.
func NewServer(gen Generator, sessions *session.Registry) *fiber.App {
	app := server.New("pdfquiz")
	h := &handlers{gen: gen, sessions: sessions}

	api := app.Group("/api")
	api.Post("/documents", h.uploadDocument)
	api.Delete("/sessions/:id", h.deleteSession)

	api.Post("/sessions/:id/summary", h.generateSummary)
	api.Get("/sessions/:id/summary/download", h.downloadSummary)

	api.Post("/sessions/:id/quiz", h.generateQuiz)
	api.Get("/sessions/:id/quiz", h.getQuiz)
	api.Get("/sessions/:id/quiz/download", h.downloadQuiz)
	api.Post("/sessions/:id/quiz/reset", h.resetQuiz)

	api.Put("/sessions/:id/answers/:index", h.putAnswer)
	api.Post("/sessions/:id/submit", h.submitQuiz)
	api.Get("/sessions/:id/results/download", h.downloadResults)

	return app
}

// session resolves the :id path param, writing a 404 on failure.
func (h *handlers) session(c *fiber.Ctx) (*session.Session, error) {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return s, nil
}

// conflictOr maps session lifecycle errors to 409 and anything else to
// the given fallback status.
func conflictOr(c *fiber.Ctx, err error, fallback int) error {
	status := fallback
	if errors.Is(err, session.ErrNoQuiz) ||
		errors.Is(err, session.ErrAlreadySubmitted) ||
		errors.Is(err, session.ErrIncomplete) {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
