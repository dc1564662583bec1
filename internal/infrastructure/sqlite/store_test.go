package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/internal/infrastructure/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "billing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCompanyRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := openStore(t).Companies()

	c := &entity.Company{UUID: entity.NewUUID(), Name: "Acme", Address: "Calle 1", Phone: "555", City: "Cali", State: "VAC", Zipcode: "760001"}
	require.NoError(t, repo.Create(ctx, c))
	assert.Positive(t, c.ID)

	byID, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, byID)

	byUUID, err := repo.GetByUUID(ctx, c.UUID)
	require.NoError(t, err)
	assert.Equal(t, c, byUUID)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepo_KeepsDecimalRate(t *testing.T) {
	ctx := context.Background()
	repo := openStore(t).Items()

	it := &entity.Item{UUID: entity.NewUUID(), Name: "Rice", Rate: decimal.RequireFromString("50.10")}
	require.NoError(t, repo.Create(ctx, it))

	got, err := repo.GetByID(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Rice", got.Name)
	assert.True(t, got.Rate.Equal(it.Rate), "rate %s", got.Rate)
}

func TestItemRepo_RejectsNegativeRate(t *testing.T) {
	repo := openStore(t).Items()
	err := repo.Create(context.Background(), &entity.Item{UUID: entity.NewUUID(), Name: "X", Rate: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestRunBilling_CommitAndRead(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	company := &entity.Company{UUID: entity.NewUUID(), Name: "Acme", Address: "a", Phone: "p", City: "c", State: "s", Zipcode: "z"}
	require.NoError(t, store.Companies().Create(ctx, company))
	rice := &entity.Item{UUID: entity.NewUUID(), Name: "Rice", Rate: decimal.RequireFromString("50.0")}
	require.NoError(t, store.Items().Create(ctx, rice))

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	bill := &entity.Bill{UUID: entity.NewUUID(), Date: date, SLNumber: 7, CompanyID: company.ID}
	err := store.RunBilling(ctx, func(_ repository.CompanyRepository, _ repository.ItemRepository, bills repository.BillRepository) error {
		line := entity.NewBillLineItem(rice, 3)
		bill.Total = line.Amount
		if err := bills.Create(ctx, bill); err != nil {
			return err
		}
		line.BillID = bill.ID
		return bills.CreateLineItem(ctx, line)
	})
	require.NoError(t, err)

	got, err := store.Bills().GetByUUID(ctx, bill.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, int64(7), got.SLNumber)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(150)))

	lines, err := store.Bills().GetLineItemsByBillID(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, rice.ID, lines[0].ItemID)
	assert.True(t, lines[0].Amount.Equal(decimal.NewFromInt(150)))
}

func TestRunBilling_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	company := &entity.Company{UUID: entity.NewUUID(), Name: "Acme", Address: "a", Phone: "p", City: "c", State: "s", Zipcode: "z"}
	require.NoError(t, store.Companies().Create(ctx, company))

	bill := &entity.Bill{UUID: entity.NewUUID(), Date: time.Now().UTC().Truncate(24 * time.Hour), CompanyID: company.ID}
	boom := errors.New("boom")
	err := store.RunBilling(ctx, func(_ repository.CompanyRepository, _ repository.ItemRepository, bills repository.BillRepository) error {
		if err := bills.Create(ctx, bill); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Bills().GetByUUID(ctx, bill.UUID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBillRepo_ForeignKeysAreNotFound(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	err := store.RunBilling(ctx, func(_ repository.CompanyRepository, _ repository.ItemRepository, bills repository.BillRepository) error {
		return bills.Create(ctx, &entity.Bill{UUID: entity.NewUUID(), Date: time.Now().UTC(), CompanyID: 404})
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
