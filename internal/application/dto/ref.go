package dto

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/jhoicas/billing-api/internal/domain"
)

// EntityRef identifica una entidad por id numérico o por uuid (exactamente uno de los dos).
type EntityRef struct {
	ID   int64
	UUID string
}

// IsUUID indica si la referencia es por uuid.
func (r EntityRef) IsUUID() bool { return r.UUID != "" }

func (r EntityRef) String() string {
	if r.IsUUID() {
		return r.UUID
	}
	return strconv.FormatInt(r.ID, 10)
}

// ParseRef interpreta el parámetro :id de una ruta.
func ParseRef(raw string) (EntityRef, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n <= 0 {
			return EntityRef{}, fmt.Errorf("%w: id %d debe ser positivo", domain.ErrInvalidInput, n)
		}
		return EntityRef{ID: n}, nil
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return EntityRef{}, fmt.Errorf("%w: id %q no es numérico ni uuid", domain.ErrInvalidInput, raw)
	}
	return EntityRef{UUID: u.String()}, nil
}
