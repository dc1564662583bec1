package client

import (
	"fmt"

	"github.com/jhoicas/billing-api/pkg/api"
)

// DraftLine una línea en edición. ItemName es solo para mostrar; no viaja a la API.
type DraftLine struct {
	ItemID   int64
	ItemName string
	Quantity int64
}

// BillDraft es el estado local de un formulario mientras se compone una factura.
// Cada vista crea el suyo; no hay estado compartido entre vistas.
type BillDraft struct {
	Date      string
	SLNumber  int64
	CompanyID int64
	lines     []DraftLine
}

// NewBillDraft crea un borrador vacío.
func NewBillDraft(date string, slNumber, companyID int64) *BillDraft {
	return &BillDraft{Date: date, SLNumber: slNumber, CompanyID: companyID}
}

// AddLine agrega una línea al final.
func (d *BillDraft) AddLine(itemID int64, itemName string, quantity int64) {
	d.lines = append(d.lines, DraftLine{ItemID: itemID, ItemName: itemName, Quantity: quantity})
}

// RemoveLine quita la línea en la posición i.
func (d *BillDraft) RemoveLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("línea %d fuera de rango (hay %d)", i, len(d.lines))
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

// Lines devuelve una copia de las líneas en orden.
func (d *BillDraft) Lines() []DraftLine {
	out := make([]DraftLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Request arma el cuerpo de POST /api/bills. No valida: la API es la fuente de verdad.
func (d *BillDraft) Request() api.CreateBillRequest {
	sl := d.SLNumber
	items := make([]api.BillItemRequest, 0, len(d.lines))
	for _, l := range d.lines {
		items = append(items, api.BillItemRequest{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return api.CreateBillRequest{Date: d.Date, SLNumber: &sl, CompanyID: d.CompanyID, BillItems: items}
}
