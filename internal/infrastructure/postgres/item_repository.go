package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem y asigna su ID.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `INSERT INTO items (uuid, item_name, rate) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, query, item.UUID, item.Name, item.Rate).Scan(&item.ID); err != nil {
		return persistenceError("insert item", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT id, uuid, item_name, rate FROM items WHERE id = $1`, id)
}

// GetByUUID obtiene un ítem por UUID.
func (r *ItemRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT id, uuid, item_name, rate FROM items WHERE uuid = $1`, uuid)
}

func (r *ItemRepo) getOne(ctx context.Context, query string, arg any) (*entity.Item, error) {
	var it entity.Item
	if err := r.q.QueryRow(ctx, query, arg).Scan(&it.ID, &it.UUID, &it.Name, &it.Rate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("get item", err)
	}
	return &it, nil
}
