package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/application/usecase"
)

// SettingsHandler handles settings and organization requests (protected).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetSettings returns the user's settings, creating defaults on first call.
// GET /api/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings overwrites the user's settings.
// PUT /api/settings
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateSettings(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOrganization returns the organization profile.
// GET /api/settings/organization
func (h *SettingsHandler) GetOrganization(c *fiber.Ctx) error {
	out, err := h.uc.GetOrganization(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateOrganization overwrites the organization profile.
// PUT /api/settings/organization
func (h *SettingsHandler) UpdateOrganization(c *fiber.Ctx) error {
	var in dto.OrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateOrganization(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadLogo stores an organization logo from a multipart form (field
// "logo") and records its public URL.
// POST /api/settings/organization/logo
func (h *SettingsHandler) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart field 'logo' required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cannot read uploaded file"})
	}
	defer f.Close()

	out, err := h.uc.UploadLogo(GetUserID(c), fileHeader.Filename, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
