// Package client es un cliente sin estado de la API de facturación, pensado para la
// capa de presentación (formularios) y herramientas como cmd/seed. No reintenta.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-api/pkg/api"
)

// Códigos de error devueltos por la API.
const (
	CodeValidation  = api.CodeValidation
	CodeInvalidBody = api.CodeInvalidBody
	CodeNotFound    = api.CodeNotFound
	CodeInternal    = api.CodeInternal
)

// APIError respuesta no 2xx de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("billing api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound indica un 404.
func (e *APIError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// IsValidation indica una entrada rechazada (400).
func (e *APIError) IsValidation() bool { return e.Status == http.StatusBadRequest }

// AsAPIError extrae un *APIError de err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// Client habla con la API por HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client por defecto (timeout de 10s).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New construye el cliente para baseURL (p. ej. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CreateCompany registra una empresa.
func (c *Client) CreateCompany(ctx context.Context, in api.CreateCompanyRequest) (*api.CompanyCreatedResponse, error) {
	var out api.CompanyCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/companies", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCompany obtiene una empresa por id.
func (c *Client) GetCompany(ctx context.Context, id int64) (*api.CompanyResponse, error) {
	var out api.CompanyResponse
	if err := c.do(ctx, http.MethodGet, "/api/companies/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateItem registra un ítem con su tarifa.
func (c *Client) CreateItem(ctx context.Context, name string, rate decimal.Decimal) (*api.ItemCreatedResponse, error) {
	var out api.ItemCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/items", api.CreateItemRequest{ItemName: name, Rate: &rate}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetItem obtiene un ítem por id. Un ítem inexistente devuelve *APIError con IsNotFound().
func (c *Client) GetItem(ctx context.Context, id int64) (*api.ItemResponse, error) {
	var out api.ItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/items/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBill envía la factura; la API calcula importes y total.
func (c *Client) CreateBill(ctx context.Context, in api.CreateBillRequest) (*api.BillCreatedResponse, error) {
	var out api.BillCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/bills", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBill obtiene la factura con sus líneas.
func (c *Client) GetBill(ctx context.Context, id int64) (*api.BillResponse, error) {
	var out api.BillResponse
	if err := c.do(ctx, http.MethodGet, "/api/bills/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("billing api: codificar request: %w", err)
		}
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("billing api: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("billing api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("billing api: decodificar respuesta: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body api.ErrorResponse
	if json.Unmarshal(raw, &body) == nil && body.Code != "" {
		apiErr.Code, apiErr.Message = body.Code, body.Message
		return apiErr
	}
	apiErr.Code = http.StatusText(resp.StatusCode)
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
