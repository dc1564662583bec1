package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/usecase"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	ItemUC    *usecase.ItemUseCase
	BillUC    *billing.BillUseCase
	PDFUC     *billing.PDFUseCase
	Metrics   *Metrics
	Log       *logger.Logger
}

// Router registra middlewares comunes, /metrics y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log))
	app.Use(deps.Metrics.Middleware())

	app.Get("/metrics", deps.Metrics.Handler())

	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	itemHandler := NewItemHandler(deps.ItemUC, deps.Log)
	billHandler := NewBillHandler(deps.BillUC, deps.PDFUC, deps.Metrics, deps.Log)

	// Mismas rutas en la raíz (/companies, /items, /bills) y bajo /api.
	for _, r := range []fiber.Router{app, app.Group("/api")} {
		companies := r.Group("/companies")
		companies.Post("/", companyHandler.Create)
		companies.Get("/:id", companyHandler.GetByID)

		items := r.Group("/items")
		items.Post("/", itemHandler.Create)
		items.Get("/:id", itemHandler.GetByID)

		bills := r.Group("/bills")
		bills.Post("/", billHandler.Create)
		bills.Get("/:id", billHandler.GetByID)
		bills.Get("/:id/pdf", billHandler.DownloadPDF)
	}
}
