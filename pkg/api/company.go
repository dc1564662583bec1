package api

import "strings"

// CreateCompanyRequest entrada para registrar una empresa. Todos los campos son obligatorios.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=300"`
	Phone   string `json:"phone" validate:"required,max=50"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Zipcode string `json:"zipcode" validate:"required,max=20"`
}

// Normalize elimina espacios en los extremos para que un campo en blanco cuente como vacío.
func (r *CreateCompanyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Zipcode = strings.TrimSpace(r.Zipcode)
}

// CompanyCreatedResponse salida de POST /companies.
type CompanyCreatedResponse struct {
	CompanyID   int64  `json:"company_id"`
	CompanyUUID string `json:"company_uuid"`
	Message     string `json:"message"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID      int64  `json:"id"`
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}
