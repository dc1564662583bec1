package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una empresa. Los seis campos son obligatorios y se guardan tal cual
// (sin espacios en los extremos). Devuelve domain.ErrInvalidInput nombrando los faltantes.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyCreatedResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	company := &entity.Company{
		UUID:    entity.NewUUID(),
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		City:    in.City,
		State:   in.State,
		Zipcode: in.Zipcode,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("crear empresa: %w", err)
	}
	return &dto.CompanyCreatedResponse{
		CompanyID:   company.ID,
		CompanyUUID: company.UUID,
		Message:     "Empresa creada correctamente",
	}, nil
}

// GetByID obtiene una empresa por id o uuid. domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, ref dto.EntityRef) (*dto.CompanyResponse, error) {
	var (
		company *entity.Company
		err     error
	)
	if ref.IsUUID() {
		company, err = uc.repo.GetByUUID(ctx, ref.UUID)
	} else {
		company, err = uc.repo.GetByID(ctx, ref.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("obtener empresa %s: %w", ref, err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, ref)
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:      c.ID,
		UUID:    c.UUID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		City:    c.City,
		State:   c.State,
		Zipcode: c.Zipcode,
	}
}
