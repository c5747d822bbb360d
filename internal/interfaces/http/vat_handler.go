package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/application/usecase"
)

// VATHandler handles VAT figures and report snapshots (protected).
type VATHandler struct {
	uc  *usecase.VATUseCase
	pdf *billing.PDFUseCase
}

func NewVATHandler(uc *usecase.VATUseCase, pdf *billing.PDFUseCase) *VATHandler {
	return &VATHandler{uc: uc, pdf: pdf}
}

// Summary returns live current-month and year-to-date figures.
// GET /api/vat/summary
func (h *VATHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateReport snapshots the period's totals.
// POST /api/vat/reports
func (h *VATHandler) CreateReport(c *fiber.Ctx) error {
	var in dto.CreateVATReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateReport(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReports returns the user's report snapshots.
// GET /api/vat/reports
func (h *VATHandler) ListReports(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListReports(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetReport returns a report with the invoices of its period.
// GET /api/vat/reports/:id
func (h *VATHandler) GetReport(c *fiber.Ctx) error {
	out, err := h.uc.GetReport(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateReportStatus moves a report to a new status.
// PATCH /api/vat/reports/:id/status
func (h *VATHandler) UpdateReportStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateReportStatus(GetUserID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteReport removes a report snapshot.
// DELETE /api/vat/reports/:id
func (h *VATHandler) DeleteReport(c *fiber.Ctx) error {
	if err := h.uc.DeleteReport(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadReportPDF renders the report document.
// GET /api/vat/reports/:id/pdf
func (h *VATHandler) DownloadReportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadVATReportPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
