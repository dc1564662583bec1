package repository

import (
	"context"

	"github.com/jhoicas/billing-api/internal/domain/entity"
)

//go:generate mockgen -source=item_repository.go -destination=../../mocks/item_repository_mock.go -package=mocks

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	// Create persiste el ítem y asigna item.ID.
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	GetByUUID(ctx context.Context, uuid string) (*entity.Item, error)
}
