package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre SQLite.
type CompanyRepo struct {
	q querier
}

// NewCompanyRepository recibe *sql.DB o *sql.Tx.
func NewCompanyRepository(q querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste la empresa y asigna su ID.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query, args, err := qb.Insert("company").
		Columns("uuid", "name", "address", "phone", "city", "state", "zipcode").
		Values(c.UUID, c.Name, c.Address, c.Phone, c.City, c.State, c.Zipcode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return persistenceError("build insert company", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&c.ID); err != nil {
		return persistenceError("insert company", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

// GetByUUID obtiene una empresa por UUID.
func (r *CompanyRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Company, error) {
	return r.getOne(ctx, sq.Eq{"uuid": uuid})
}

func (r *CompanyRepo) getOne(ctx context.Context, where sq.Eq) (*entity.Company, error) {
	query, args, err := qb.Select("id", "uuid", "name", "address", "phone", "city", "state", "zipcode").
		From("company").
		Where(where).
		ToSql()
	if err != nil {
		return nil, persistenceError("build get company", err)
	}
	var c entity.Company
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.UUID, &c.Name, &c.Address, &c.Phone, &c.City, &c.State, &c.Zipcode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("get company", err)
	}
	return &c, nil
}
