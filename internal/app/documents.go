package app

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"pdfquiz/internal/service/pdf"
)

// uploadDocument accepts a multipart PDF upload, validates and extracts
// it, and opens a fresh session around the text.
func (h *handlers) uploadDocument(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file upload"})
	}
	if err := pdf.Validate(header.Filename, header.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	f, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read upload"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read upload"})
	}

	doc, err := pdf.Extract(data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	text, truncated := pdf.Truncate(doc.Text, pdf.DefaultMaxTokens)
	sess := h.sessions.Create(header.Filename, text, doc.PageCount, doc.WordCount, truncated)

	resp := fiber.Map{
		"session_id": sess.ID,
		"filename":   sess.Filename,
		"page_count": sess.PageCount,
		"word_count": sess.WordCount,
		"truncated":  truncated,
	}
	if doc.Warning != "" {
		resp["warning"] = doc.Warning
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// deleteSession is the "clear all and start over" action.
func (h *handlers) deleteSession(c *fiber.Ctx) error {
	h.sessions.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
