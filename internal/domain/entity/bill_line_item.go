package entity

import "github.com/shopspring/decimal"

// BillLineItem representa una línea de la factura.
// Rate es una copia de la tarifa del Item en el momento de crear la factura;
// cambios posteriores en el Item no la afectan.
type BillLineItem struct {
	ID       int64
	UUID     string
	BillID   int64
	ItemID   int64
	Quantity int64
	Rate     decimal.Decimal
	Amount   decimal.Decimal
}

// NewBillLineItem construye la línea calculando Amount = Quantity * Rate.
func NewBillLineItem(item *Item, quantity int64) *BillLineItem {
	return &BillLineItem{
		UUID:     NewUUID(),
		ItemID:   item.ID,
		Quantity: quantity,
		Rate:     item.Rate,
		Amount:   item.Rate.Mul(decimal.NewFromInt(quantity)),
	}
}

// SumAmounts devuelve la suma de Amount de las líneas.
func SumAmounts(lines []*BillLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
