package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// ItemUseCase registra y consulta ítems del catálogo.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso con el puerto de persistencia.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create registra un ítem. item_name y rate son obligatorios; rate >= 0.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemCreatedResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate %s no puede ser negativo", domain.ErrInvalidInput, in.Rate)
	}
	item := &entity.Item{
		UUID: entity.NewUUID(),
		Name: in.ItemName,
		Rate: *in.Rate,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("crear ítem: %w", err)
	}
	return &dto.ItemCreatedResponse{
		ItemID:   item.ID,
		ItemUUID: item.UUID,
		Message:  "Ítem creado correctamente",
	}, nil
}

// GetByID obtiene un ítem por id o uuid. domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, ref dto.EntityRef) (*dto.ItemResponse, error) {
	var (
		item *entity.Item
		err  error
	)
	if ref.IsUUID() {
		item, err = uc.repo.GetByUUID(ctx, ref.UUID)
	} else {
		item, err = uc.repo.GetByID(ctx, ref.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("obtener ítem %s: %w", ref, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, ref)
	}
	return &dto.ItemResponse{ID: item.ID, UUID: item.UUID, ItemName: item.Name, Rate: item.Rate}, nil
}
