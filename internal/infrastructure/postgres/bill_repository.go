package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación del puerto BillRepository sobre PostgreSQL.
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Para Create/CreateLineItem pasar una tx.
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create inserta la cabecera de la factura y asigna su ID.
func (r *BillRepo) Create(ctx context.Context, b *entity.Bill) error {
	query := `
		INSERT INTO bills (uuid, date, sl_number, company_id, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, b.UUID, b.Date, b.SLNumber, b.CompanyID, b.Total).Scan(&b.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: empresa %d", domain.ErrNotFound, b.CompanyID)
		}
		return persistenceError("insert bill", err)
	}
	return nil
}

// CreateLineItem inserta una línea de la factura y asigna su ID.
func (r *BillRepo) CreateLineItem(ctx context.Context, l *entity.BillLineItem) error {
	query := `
		INSERT INTO bill_items (uuid, bill_id, item_id, quantity, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, l.UUID, l.BillID, l.ItemID, l.Quantity, l.Rate, l.Amount).Scan(&l.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: ítem %d o factura %d", domain.ErrNotFound, l.ItemID, l.BillID)
		}
		return persistenceError("insert bill item", err)
	}
	return nil
}

// GetByID obtiene la cabecera por ID.
func (r *BillRepo) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	return r.getOne(ctx, `SELECT id, uuid, date, sl_number, company_id, total FROM bills WHERE id = $1`, id)
}

// GetByUUID obtiene la cabecera por UUID.
func (r *BillRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Bill, error) {
	return r.getOne(ctx, `SELECT id, uuid, date, sl_number, company_id, total FROM bills WHERE uuid = $1`, uuid)
}

func (r *BillRepo) getOne(ctx context.Context, query string, arg any) (*entity.Bill, error) {
	var b entity.Bill
	err := r.q.QueryRow(ctx, query, arg).Scan(&b.ID, &b.UUID, &b.Date, &b.SLNumber, &b.CompanyID, &b.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("get bill", err)
	}
	return &b, nil
}

// GetLineItemsByBillID devuelve las líneas de una factura en orden de creación.
func (r *BillRepo) GetLineItemsByBillID(ctx context.Context, billID int64) ([]*entity.BillLineItem, error) {
	query := `
		SELECT id, uuid, bill_id, item_id, quantity, rate, amount
		FROM bill_items WHERE bill_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, billID)
	if err != nil {
		return nil, persistenceError("list bill items", err)
	}
	defer rows.Close()

	var list []*entity.BillLineItem
	for rows.Next() {
		var l entity.BillLineItem
		if err := rows.Scan(&l.ID, &l.UUID, &l.BillID, &l.ItemID, &l.Quantity, &l.Rate, &l.Amount); err != nil {
			return nil, persistenceError("scan bill item", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceError("list bill items", err)
	}
	return list, nil
}
