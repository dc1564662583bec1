package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-api/pkg/api"
	"github.com/jhoicas/billing-api/pkg/client"
)

func newServer(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_CreateItem(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"rate":50`)
		assert.NotContains(t, string(raw), `"rate":"`)

		var in api.CreateItemRequest
		require.NoError(t, json.Unmarshal(raw, &in))
		assert.Equal(t, "Rice", in.ItemName)
		require.NotNil(t, in.Rate)
		assert.True(t, in.Rate.Equal(decimal.RequireFromString("50.0")))

		writeJSON(w, http.StatusOK, api.ItemCreatedResponse{ItemID: 7, ItemUUID: "u-7", Message: "ok"})
	})

	out, err := c.CreateItem(context.Background(), "Rice", decimal.RequireFromString("50.0"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ItemID)
	assert.Equal(t, "u-7", out.ItemUUID)
}

func TestClient_GetItem_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items/99", r.URL.Path)
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Code: client.CodeNotFound, Message: "ítem no encontrado"})
	})

	_, err := c.GetItem(context.Background(), 99)
	require.Error(t, err)
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, apiErr.IsValidation())
	assert.Equal(t, client.CodeNotFound, apiErr.Code)
	assert.Equal(t, "ítem no encontrado", apiErr.Message)
}

func TestClient_CreateBill_Validation(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Code: client.CodeValidation, Message: "campos inválidos"})
	})

	d := client.NewBillDraft("2024-01-15", 1, 1)
	_, err := c.CreateBill(context.Background(), d.Request())
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, client.CodeValidation, apiErr.Code)
}

func TestClient_NonJSONError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.GetBill(context.Background(), 1)
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Code)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_GetBill(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bills/3", r.URL.Path)
		writeJSON(w, http.StatusOK, api.BillResponse{
			Bill: api.BillHeaderResponse{ID: 3, Date: "2024-01-15", SLNumber: 1, CompanyID: 1, Total: decimal.NewFromInt(150)},
			BillItems: []api.BillLineItemResponse{
				{ID: 1, BillID: 3, ItemID: 1, Quantity: 3, Rate: decimal.NewFromInt(50), Amount: decimal.NewFromInt(150)},
			},
		})
	})

	out, err := c.GetBill(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, out.Bill.Total.Equal(decimal.NewFromInt(150)))
	require.Len(t, out.BillItems, 1)
	assert.Equal(t, int64(3), out.BillItems[0].Quantity)
}

func TestBillDraft(t *testing.T) {
	d := client.NewBillDraft("2024-01-15", 0, 4)
	d.AddLine(1, "Rice", 3)
	d.AddLine(2, "Oil", 1)
	d.AddLine(1, "Rice", 2)

	require.NoError(t, d.RemoveLine(1))
	assert.Error(t, d.RemoveLine(5))
	assert.Error(t, d.RemoveLine(-1))

	lines := d.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Rice", lines[0].ItemName)
	assert.Equal(t, int64(2), lines[1].Quantity)

	lines[0].Quantity = 100
	assert.Equal(t, int64(3), d.Lines()[0].Quantity, "Lines devuelve una copia")

	req := d.Request()
	require.NotNil(t, req.SLNumber)
	assert.Equal(t, int64(0), *req.SLNumber)
	assert.Equal(t, int64(4), req.CompanyID)
	assert.Equal(t, []api.BillItemRequest{{ItemID: 1, Quantity: 3}, {ItemID: 1, Quantity: 2}}, req.BillItems)
}
