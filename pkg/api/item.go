package api

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para registrar un ítem del catálogo.
// Rate es puntero para distinguir "ausente" de cero.
type CreateItemRequest struct {
	ItemName string           `json:"item_name" validate:"required,max=200"`
	Rate     *decimal.Decimal `json:"rate" validate:"required"`
}

// Normalize elimina espacios en los extremos del nombre.
func (r *CreateItemRequest) Normalize() {
	r.ItemName = strings.TrimSpace(r.ItemName)
}

// ItemCreatedResponse salida de POST /items.
type ItemCreatedResponse struct {
	ItemID   int64  `json:"item_id"`
	ItemUUID string `json:"item_uuid"`
	Message  string `json:"message"`
}

// ItemResponse salida de GET /items/:id.
type ItemResponse struct {
	ID       int64           `json:"id"`
	UUID     string          `json:"uuid"`
	ItemName string          `json:"item_name"`
	Rate     decimal.Decimal `json:"rate"`
}
