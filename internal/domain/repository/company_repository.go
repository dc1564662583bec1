package repository

import (
	"context"

	"github.com/jhoicas/billing-api/internal/domain/entity"
)

//go:generate mockgen -source=company_repository.go -destination=../../mocks/company_repository_mock.go -package=mocks

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los Get devuelven (nil, nil) si no existe.
type CompanyRepository interface {
	// Create persiste la empresa y asigna company.ID.
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByUUID(ctx context.Context, uuid string) (*entity.Company, error)
}
