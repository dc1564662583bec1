package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0,00",
		"150":       "150,00",
		"1234.5":    "1.234,50",
		"1234567.5": "1.234.567,50",
		"-1000":     "-1.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateBillPDF(t *testing.T) {
	bill := &entity.Bill{
		ID: 1, UUID: entity.NewUUID(), SLNumber: 1001, CompanyID: 1,
		Date:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Total: decimal.RequireFromString("150.0"),
	}
	company := &entity.Company{ID: 1, Name: "Acme", Address: "Calle 1", Phone: "555", City: "Cali", State: "VAC", Zipcode: "760001"}
	lines := []appbilling.BillLineForPDF{{
		BillLineItem: entity.BillLineItem{ID: 1, BillID: 1, ItemID: 1, Quantity: 3,
			Rate: decimal.RequireFromString("50.0"), Amount: decimal.RequireFromString("150.0")},
		ItemName: "Rice",
	}}

	out, err := NewMarotoPDFGenerator().GenerateBillPDF(context.Background(), bill, company, lines)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
