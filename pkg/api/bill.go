package api

import "github.com/shopspring/decimal"

// BillItemRequest una línea de la factura. La tarifa siempre se toma del catálogo.
type BillItemRequest struct {
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// CreateBillRequest entrada para crear una factura con sus líneas.
type CreateBillRequest struct {
	Date      string            `json:"date" validate:"required"`
	SLNumber  *int64            `json:"sl_number" validate:"required"`
	CompanyID int64             `json:"company_id" validate:"required,gt=0"`
	BillItems []BillItemRequest `json:"bill_items" validate:"required,min=1,dive"`
}

// BillCreatedResponse salida de POST /bills.
type BillCreatedResponse struct {
	BillID   int64           `json:"bill_id"`
	BillUUID string          `json:"bill_uuid"`
	Total    decimal.Decimal `json:"total"`
	Message  string          `json:"message"`
}

// BillHeaderResponse cabecera de una factura.
type BillHeaderResponse struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	Date      string          `json:"date"`
	SLNumber  int64           `json:"sl_number"`
	CompanyID int64           `json:"company_id"`
	Total     decimal.Decimal `json:"total"`
}

// BillLineItemResponse una línea persistida de la factura.
type BillLineItemResponse struct {
	ID       int64           `json:"id"`
	UUID     string          `json:"uuid"`
	BillID   int64           `json:"bill_id"`
	ItemID   int64           `json:"item_id"`
	Quantity int64           `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// BillResponse salida de GET /bills/:id.
type BillResponse struct {
	Bill      BillHeaderResponse     `json:"bill"`
	BillItems []BillLineItemResponse `json:"bill_items"`
}
