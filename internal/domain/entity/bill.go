package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formatos de fecha de la factura.
const (
	BillDateLayout   = "2006-01-02"          // formato aceptado en la entrada (YYYY-MM-DD)
	BillStoredLayout = "2006-01-02 15:04:05" // formato almacenado (fecha + 00:00:00)
)

// Bill representa la cabecera de una factura.
// Total es derivado: suma de Amount de sus líneas al momento de crearla.
type Bill struct {
	ID        int64
	UUID      string
	Date      time.Time
	SLNumber  int64 // número de serie externo, sin unicidad
	CompanyID int64
	Total     decimal.Decimal
}

// ParseBillDate interpreta la fecha de forma estricta (YYYY-MM-DD, sin zona horaria).
func ParseBillDate(s string) (time.Time, error) {
	return time.Parse(BillDateLayout, s)
}
