package entity

import "github.com/shopspring/decimal"

// Item representa una entrada del catálogo con su tarifa unitaria (>= 0).
type Item struct {
	ID   int64
	UUID string
	Name string
	Rate decimal.Decimal
}
