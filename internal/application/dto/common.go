// Package dto expone a los casos de uso el contrato de pkg/api más lo que solo usa el servidor
// (validación y referencias por id o uuid).
package dto

import "github.com/jhoicas/billing-api/pkg/api"

type (
	ErrorResponse  = api.ErrorResponse
	HealthResponse = api.HealthResponse

	CreateCompanyRequest   = api.CreateCompanyRequest
	CompanyCreatedResponse = api.CompanyCreatedResponse
	CompanyResponse        = api.CompanyResponse

	CreateItemRequest   = api.CreateItemRequest
	ItemCreatedResponse = api.ItemCreatedResponse
	ItemResponse        = api.ItemResponse

	BillItemRequest      = api.BillItemRequest
	CreateBillRequest    = api.CreateBillRequest
	BillCreatedResponse  = api.BillCreatedResponse
	BillHeaderResponse   = api.BillHeaderResponse
	BillLineItemResponse = api.BillLineItemResponse
	BillResponse         = api.BillResponse
)
