package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

//go:generate mockgen -source=ports.go -destination=../../mocks/billing_ports_mock.go -package=mocks

// BillingTxRunner ejecuta una función dentro de una transacción con los repos de facturación.
// Si fn retorna error se hace rollback de todo lo escrito.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		itemRepo repository.ItemRepository,
		billRepo repository.BillRepository,
	) error) error
}

// BillCreatedEvent se publica después del commit de una factura.
type BillCreatedEvent struct {
	BillID     int64           `json:"bill_id"`
	BillUUID   string          `json:"bill_uuid"`
	Date       string          `json:"date"`
	SLNumber   int64           `json:"sl_number"`
	CompanyID  int64           `json:"company_id"`
	Total      decimal.Decimal `json:"total"`
	LineCount  int             `json:"line_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// BillPublisher notifica a otros sistemas. Un fallo nunca revierte la factura.
type BillPublisher interface {
	PublishBillCreated(ctx context.Context, evt BillCreatedEvent) error
}

// BillLineForPDF línea con el nombre del ítem resuelto para la representación gráfica.
type BillLineForPDF struct {
	entity.BillLineItem
	ItemName string
}

// BillPDFGenerator genera el PDF de una factura.
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, bill *entity.Bill, company *entity.Company, lines []BillLineForPDF) ([]byte, error)
}
