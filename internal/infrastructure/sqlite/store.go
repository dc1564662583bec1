// Package sqlite implementa los puertos de persistencia sobre SQLite (driver puro Go, sin CGO).
// Es el backend de desarrollo y de pruebas; en producción se usa postgres.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ billing.BillingTxRunner = (*Store)(nil)

// querier es el subconjunto común de *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// qb construye las consultas con placeholders "?".
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Store agrupa la conexión y expone los repositorios.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path, activa llaves foráneas y aplica el esquema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de la base: %w", err)
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor: SQLite serializa las escrituras de todos modos.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	return s.db.Close()
}

// Companies devuelve el repositorio de empresas fuera de transacción.
func (s *Store) Companies() *CompanyRepo { return NewCompanyRepository(s.db) }

// Items devuelve el repositorio de ítems fuera de transacción.
func (s *Store) Items() *ItemRepo { return NewItemRepository(s.db) }

// Bills devuelve el repositorio de facturas fuera de transacción (solo lecturas).
func (s *Store) Bills() *BillRepo { return NewBillRepository(s.db) }

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// RunBilling inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) RunBilling(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	itemRepo repository.ItemRepository,
	billRepo repository.BillRepository,
) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return persistenceError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewCompanyRepository(tx), NewItemRepository(tx), NewBillRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return persistenceError("commit transaction", err)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var se *msqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
