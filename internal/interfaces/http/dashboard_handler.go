package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goitom/finance-api/internal/application/usecase"
)

// DashboardHandler serves the overview figures (protected).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview returns counts, revenue and recent invoices.
// GET /api/dashboard
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
