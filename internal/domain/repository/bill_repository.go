package repository

import (
	"context"

	"github.com/jhoicas/billing-api/internal/domain/entity"
)

//go:generate mockgen -source=bill_repository.go -destination=../../mocks/bill_repository_mock.go -package=mocks

// BillRepository define el puerto de persistencia para Bill y sus líneas.
// Create y CreateLineItem solo deben usarse dentro de una transacción (ver billing.BillingTxRunner).
type BillRepository interface {
	// Create persiste la cabecera y asigna bill.ID.
	Create(ctx context.Context, bill *entity.Bill) error
	// CreateLineItem persiste una línea y asigna line.ID. line.BillID debe estar definido.
	CreateLineItem(ctx context.Context, line *entity.BillLineItem) error
	GetByID(ctx context.Context, id int64) (*entity.Bill, error)
	GetByUUID(ctx context.Context, uuid string) (*entity.Bill, error)
	// GetLineItemsByBillID devuelve las líneas en orden de creación.
	GetLineItemsByBillID(ctx context.Context, billID int64) ([]*entity.BillLineItem, error)
}
