package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pdfquiz/internal/service/agent"
	"pdfquiz/internal/service/prompt"
	"pdfquiz/internal/service/session"
)

type summaryRequest struct {
	Length string `json:"length"`
	Format string `json:"format"`
}

// generateSummary asks the model for a document summary and stores it
// on the session. A generation failure is surfaced as a failure result,
// not a quiz-style silent degrade.
func (h *handlers) generateSummary(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	req := summaryRequest{Length: prompt.LengthStandard, Format: prompt.FormatParagraphs}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if req.Length == "" {
		req.Length = prompt.LengthStandard
	}
	if req.Format == "" {
		req.Format = prompt.FormatParagraphs
	}
	if !prompt.ValidLength(req.Length) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "length must be brief, standard or detailed"})
	}
	if !prompt.ValidFormat(req.Format) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be paragraphs or bullets"})
	}

	text, err := h.gen.Chat(c.Context(),
		prompt.BuildSummaryPrompt(sess.Text(), req.Length, req.Format),
		agent.WithSystem(prompt.SummarizerInstructions),
	)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to generate summary: %v", err),
		})
	}

	sum := &session.Summary{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		// the model reports topics inline; a structured topic list is
		// not parsed out yet
		KeyTopics: []string{"Document Analysis"},
	}
	sess.SetSummary(sum)
	return c.JSON(sum)
}

// downloadSummary serves the stored summary as a text attachment.
func (h *handlers) downloadSummary(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	sum := sess.Summary()
	if sum == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no summary has been generated"})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sess.Filename+"_summary.txt"))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(sum.Text)
}
