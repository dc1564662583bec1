package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre SQLite.
type ItemRepo struct {
	q querier
}

// NewItemRepository recibe *sql.DB o *sql.Tx.
func NewItemRepository(q querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste el ítem y asigna su ID.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query, args, err := qb.Insert("items").
		Columns("uuid", "item_name", "rate").
		Values(item.UUID, item.Name, item.Rate.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return persistenceError("build insert item", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return persistenceError("insert item", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

// GetByUUID obtiene un ítem por UUID.
func (r *ItemRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Item, error) {
	return r.getOne(ctx, sq.Eq{"uuid": uuid})
}

func (r *ItemRepo) getOne(ctx context.Context, where sq.Eq) (*entity.Item, error) {
	query, args, err := qb.Select("id", "uuid", "item_name", "rate").From("items").Where(where).ToSql()
	if err != nil {
		return nil, persistenceError("build get item", err)
	}
	var it entity.Item
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&it.ID, &it.UUID, &it.Name, &it.Rate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("get item", err)
	}
	return &it, nil
}
