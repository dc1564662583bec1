// Package api define el contrato JSON de la API de facturación. Lo usan el servidor
// (internal/application/dto) y los clientes (pkg/client).
package api

import "github.com/shopspring/decimal"

func init() {
	// rate, amount y total viajan como números JSON: {"rate":50.5}, no {"rate":"50.5"}.
	// Al decodificar se aceptan ambas formas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Códigos de error de ErrorResponse.
const (
	CodeValidation  = "VALIDATION"
	CodeInvalidBody = "INVALID_BODY"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
