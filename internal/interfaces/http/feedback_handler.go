package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/application/usecase"
)

// FeedbackHandler handles feedback submissions (protected).
type FeedbackHandler struct {
	uc *usecase.FeedbackUseCase
}

func NewFeedbackHandler(uc *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Submit stores a feedback message.
// POST /api/feedback
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var in dto.FeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Submit(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine returns the user's own submissions.
// GET /api/feedback
func (h *FeedbackHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListMine(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
