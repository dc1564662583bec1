package entity

import "github.com/google/uuid"

// NewUUID genera el identificador opaco (UUID v4) de una entidad.
// Es independiente del id numérico que asigna el motor de almacenamiento.
func NewUUID() string {
	return uuid.New().String()
}
