package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository sobre SQLite.
type BillRepo struct {
	q querier
}

// NewBillRepository recibe *sql.DB o *sql.Tx. Para escribir usar la tx de Store.RunBilling.
func NewBillRepository(q querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create inserta la cabecera y asigna su ID.
func (r *BillRepo) Create(ctx context.Context, b *entity.Bill) error {
	query, args, err := qb.Insert("bills").
		Columns("uuid", "date", "sl_number", "company_id", "total").
		Values(b.UUID, b.Date.Format(entity.BillStoredLayout), b.SLNumber, b.CompanyID, b.Total.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return persistenceError("build insert bill", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&b.ID); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: empresa %d", domain.ErrNotFound, b.CompanyID)
		}
		return persistenceError("insert bill", err)
	}
	return nil
}

// CreateLineItem inserta una línea y asigna su ID.
func (r *BillRepo) CreateLineItem(ctx context.Context, l *entity.BillLineItem) error {
	query, args, err := qb.Insert("bill_items").
		Columns("uuid", "bill_id", "item_id", "quantity", "rate", "amount").
		Values(l.UUID, l.BillID, l.ItemID, l.Quantity, l.Rate.String(), l.Amount.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return persistenceError("build insert bill item", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&l.ID); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: ítem %d o factura %d", domain.ErrNotFound, l.ItemID, l.BillID)
		}
		return persistenceError("insert bill item", err)
	}
	return nil
}

// GetByID obtiene la cabecera por ID.
func (r *BillRepo) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

// GetByUUID obtiene la cabecera por UUID.
func (r *BillRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Bill, error) {
	return r.getOne(ctx, sq.Eq{"uuid": uuid})
}

func (r *BillRepo) getOne(ctx context.Context, where sq.Eq) (*entity.Bill, error) {
	query, args, err := qb.Select("id", "uuid", "date", "sl_number", "company_id", "total").
		From("bills").
		Where(where).
		ToSql()
	if err != nil {
		return nil, persistenceError("build get bill", err)
	}
	var (
		b    entity.Bill
		date string
	)
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.UUID, &date, &b.SLNumber, &b.CompanyID, &b.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("get bill", err)
	}
	if b.Date, err = time.Parse(entity.BillStoredLayout, date); err != nil {
		return nil, persistenceError("parse bill date", err)
	}
	return &b, nil
}

// GetLineItemsByBillID devuelve las líneas en orden de creación.
func (r *BillRepo) GetLineItemsByBillID(ctx context.Context, billID int64) ([]*entity.BillLineItem, error) {
	query, args, err := qb.Select("id", "uuid", "bill_id", "item_id", "quantity", "rate", "amount").
		From("bill_items").
		Where(sq.Eq{"bill_id": billID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, persistenceError("build list bill items", err)
	}
	rows, err := r.q.QueryContext(ctx, query, args...)
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
