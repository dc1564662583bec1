package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, uuid, name, address, phone, city, state, zipcode`

// Create persiste una nueva empresa y asigna su ID.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO company (uuid, name, address, phone, city, state, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.UUID, c.Name, c.Address, c.Phone, c.City, c.State, c.Zipcode).Scan(&c.ID)
	if err != nil {
		return persistenceError("insert company", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM company WHERE id = $1`, id)
}

// GetByUUID obtiene una empresa por UUID.
func (r *CompanyRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM company WHERE uuid = $1`, uuid)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.UUID, &c.Name, &c.Address, &c.Phone, &c.City, &c.State, &c.Zipcode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("get company", err)
	}
	return &c, nil
}
