package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// BillHandler maneja las peticiones HTTP de facturas.
type BillHandler struct {
	uc      *billing.BillUseCase
	pdf     *billing.PDFUseCase
	metrics *Metrics
	log     *logger.Logger
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *billing.BillUseCase, pdf *billing.PDFUseCase, metrics *Metrics, log *logger.Logger) *BillHandler {
	return &BillHandler{uc: uc, pdf: pdf, metrics: metrics, log: log}
}

// Create godoc
// @Summary      Crear factura
// @Description  Resuelve la tarifa de cada ítem, calcula importes y total y guarda cabecera y
//               líneas en una sola transacción. Cualquier rate/amount enviado en las líneas se ignora.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBillRequest  true  "date (YYYY-MM-DD), sl_number, company_id, bill_items"
// @Success      200   {object}  dto.BillCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		h.metrics.billFailed("invalid_body")
		return invalidBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		h.metrics.billFailed(failureKind(err))
		return writeError(c, h.log, err)
	}
	h.metrics.billCreated()
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura con sus líneas
// @Tags         bills
// @Produce      json
// @Param        id   path  string  true  "id numérico o uuid"
// @Success      200  {object}  dto.BillResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [get]
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	ref, err := dto.ParseRef(c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetBill(c.UserContext(), ref)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         bills
// @Produce      application/pdf
// @Param        id   path  string  true  "id numérico o uuid"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id}/pdf [get]
func (h *BillHandler) DownloadPDF(c *fiber.Ctx) error {
	ref, err := dto.ParseRef(c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	pdf, filename, err := h.pdf.RenderPDF(c.UserContext(), ref)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "persistence"
	}
}
