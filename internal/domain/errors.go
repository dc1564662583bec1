package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con %w para añadir contexto; los handlers HTTP
// los comparan con errors.Is para elegir el código de estado.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrPersistence  = errors.New("error de persistencia")
)
