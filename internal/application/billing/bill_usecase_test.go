package billing_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/billing-api/internal/mocks"
	"github.com/jhoicas/billing-api/pkg/logger"
)

type fixture struct {
	store     *sqlite.Store
	raw       *sql.DB
	uc        *billing.BillUseCase
	companyID int64
	rice      *entity.Item
	oil       *entity.Item
}

func newFixture(t *testing.T, publisher billing.BillPublisher) *fixture {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "billing.db")
	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// Conexión aparte para leer y tocar tablas sin pasar por los repositorios.
	raw, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	company := &entity.Company{UUID: entity.NewUUID(), Name: "Acme", Address: "a", Phone: "p", City: "c", State: "s", Zipcode: "z"}
	require.NoError(t, store.Companies().Create(ctx, company))
	rice := &entity.Item{UUID: entity.NewUUID(), Name: "Rice", Rate: decimal.RequireFromString("50.0")}
	require.NoError(t, store.Items().Create(ctx, rice))
	oil := &entity.Item{UUID: entity.NewUUID(), Name: "Oil", Rate: decimal.RequireFromString("12.25")}
	require.NoError(t, store.Items().Create(ctx, oil))

	return &fixture{
		store:     store,
		raw:       raw,
		uc:        billing.NewBillUseCase(store, store.Bills(), publisher, logger.Nop()),
		companyID: company.ID,
		rice:      rice,
		oil:       oil,
	}
}

func (f *fixture) request(lines ...dto.BillItemRequest) dto.CreateBillRequest {
	sl := int64(1001)
	return dto.CreateBillRequest{Date: "2024-01-15", SLNumber: &sl, CompanyID: f.companyID, BillItems: lines}
}

func (f *fixture) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, f.raw.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// assertNoBills verifica que no quedó ninguna cabecera ni línea escrita.
func (f *fixture) assertNoBills(t *testing.T) {
	t.Helper()
	assert.Zero(t, f.count(t, "bills"), "bills")
	assert.Zero(t, f.count(t, "bill_items"), "bill_items")
}

func TestCreate_RiceScenario(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 3}))
	require.NoError(t, err)
	assert.Positive(t, out.BillID)
	assert.NotEmpty(t, out.BillUUID)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("150.0")), "total %s", out.Total)

	got, err := f.uc.GetBill(ctx, dto.EntityRef{ID: out.BillID})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", got.Bill.Date)
	assert.Equal(t, int64(1001), got.Bill.SLNumber)
	assert.Equal(t, f.companyID, got.Bill.CompanyID)
	require.Len(t, got.BillItems, 1)
	line := got.BillItems[0]
	assert.Equal(t, out.BillID, line.BillID)
	assert.Equal(t, int64(3), line.Quantity)
	assert.True(t, line.Rate.Equal(decimal.RequireFromString("50.0")))
	assert.True(t, line.Amount.Equal(decimal.RequireFromString("150.0")))
}

func TestCreate_TotalIsSumOfLinesInInputOrder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.request(
		dto.BillItemRequest{ItemID: f.oil.ID, Quantity: 2},
		dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1},
		dto.BillItemRequest{ItemID: f.oil.ID, Quantity: 4},
	))
	require.NoError(t, err)
	// 2*12.25 + 1*50 + 4*12.25
	assert.True(t, out.Total.Equal(decimal.RequireFromString("123.5")), "total %s", out.Total)

	got, err := f.uc.GetBill(ctx, dto.EntityRef{UUID: out.BillUUID})
	require.NoError(t, err)
	require.Len(t, got.BillItems, 3)

	sum := decimal.Zero
	for _, l := range got.BillItems {
		assert.True(t, l.Amount.Equal(l.Rate.Mul(decimal.NewFromInt(l.Quantity))))
		sum = sum.Add(l.Amount)
	}
	assert.True(t, sum.Equal(got.Bill.Total))

	assert.Equal(t, []int64{f.oil.ID, f.rice.ID, f.oil.ID},
		[]int64{got.BillItems[0].ItemID, got.BillItems[1].ItemID, got.BillItems[2].ItemID})
	assert.Less(t, got.BillItems[0].ID, got.BillItems[1].ID)
	assert.Less(t, got.BillItems[1].ID, got.BillItems[2].ID)
}

func TestCreate_MissingItemWritesNothing(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.Create(context.Background(), f.request(
		dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1},
		dto.BillItemRequest{ItemID: 999, Quantity: 1},
	))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "999")
	f.assertNoBills(t)
}

func TestCreate_UnknownCompany(t *testing.T) {
	f := newFixture(t, nil)
	req := f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1})
	req.CompanyID = 404

	_, err := f.uc.Create(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrNotFound)
	f.assertNoBills(t)
}

func TestCreate_ValidationWritesNothing(t *testing.T) {
	f := newFixture(t, nil)

	cases := map[string]func(r *dto.CreateBillRequest){
		"cantidad cero":     func(r *dto.CreateBillRequest) { r.BillItems[0].Quantity = 0 },
		"cantidad negativa": func(r *dto.CreateBillRequest) { r.BillItems[0].Quantity = -2 },
		"fecha dd-mm-yyyy":  func(r *dto.CreateBillRequest) { r.Date = "15-01-2024" },
		"fecha imposible":   func(r *dto.CreateBillRequest) { r.Date = "2024-02-30" },
		"fecha con hora":    func(r *dto.CreateBillRequest) { r.Date = "2024-01-15T00:00:00Z" },
		"sin líneas":        func(r *dto.CreateBillRequest) { r.BillItems = nil },
		"sin sl_number":     func(r *dto.CreateBillRequest) { r.SLNumber = nil },
		"empresa cero":      func(r *dto.CreateBillRequest) { r.CompanyID = 0 },
		"ítem cero":         func(r *dto.CreateBillRequest) { r.BillItems[0].ItemID = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1})
			mutate(&req)
			_, err := f.uc.Create(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	f.assertNoBills(t)
}

func TestCreate_LaterRateChangeKeepsBillSnapshot(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 3}))
	require.NoError(t, err)
	assert.Equal(t, 1, f.count(t, "bills"))
	assert.Equal(t, 1, f.count(t, "bill_items"))

	_, err = f.raw.Exec("UPDATE items SET rate = ? WHERE id = ?", "75.5", f.rice.ID)
	require.NoError(t, err)
	item, err := f.store.Items().GetByID(ctx, f.rice.ID)
	require.NoError(t, err)
	require.True(t, item.Rate.Equal(decimal.RequireFromString("75.5")))

	got, err := f.uc.GetBill(ctx, dto.EntityRef{ID: out.BillID})
	require.NoError(t, err)
	require.Len(t, got.BillItems, 1)
	assert.True(t, got.BillItems[0].Rate.Equal(decimal.RequireFromString("50.0")), "rate %s", got.BillItems[0].Rate)
	assert.True(t, got.BillItems[0].Amount.Equal(decimal.RequireFromString("150.0")))
	assert.True(t, got.Bill.Total.Equal(decimal.RequireFromString("150.0")))
}

func TestCreate_DuplicateItemsAreSeparateLines(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	out, err := f.uc.Create(ctx, f.request(
		dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1},
		dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 2},
	))
	require.NoError(t, err)

	got, err := f.uc.GetBill(ctx, dto.EntityRef{ID: out.BillID})
	require.NoError(t, err)
	assert.Len(t, got.BillItems, 2)
	assert.True(t, got.Bill.Total.Equal(decimal.NewFromInt(150)))
}

func TestCreate_PublishesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockBillPublisher(ctrl)
	f := newFixture(t, pub)

	var evt billing.BillCreatedEvent
	pub.EXPECT().PublishBillCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e billing.BillCreatedEvent) error {
			evt = e
			return nil
		})

	out, err := f.uc.Create(context.Background(), f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 3}))
	require.NoError(t, err)
	assert.Equal(t, out.BillID, evt.BillID)
	assert.Equal(t, out.BillUUID, evt.BillUUID)
	assert.Equal(t, "2024-01-15", evt.Date)
	assert.Equal(t, 1, evt.LineCount)
	assert.True(t, evt.Total.Equal(out.Total))
}

func TestCreate_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockBillPublisher(ctrl)
	f := newFixture(t, pub)
	pub.EXPECT().PublishBillCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker caído"))

	out, err := f.uc.Create(context.Background(), f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1}))
	require.NoError(t, err)

	got, err := f.uc.GetBill(context.Background(), dto.EntityRef{ID: out.BillID})
	require.NoError(t, err)
	assert.Len(t, got.BillItems, 1)
}

func TestCreate_StalledPublisherDoesNotHoldResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockBillPublisher(ctrl)
	f := newFixture(t, pub)

	pub.EXPECT().PublishBillCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ billing.BillCreatedEvent) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "el envío debe tener plazo")
			assert.WithinDuration(t, time.Now().Add(billing.PublishTimeout), deadline, 100*time.Millisecond)
			<-ctx.Done()
			return ctx.Err()
		})

	reqCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	out, err := f.uc.Create(reqCtx, f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 3}))
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Positive(t, out.BillID)
	assert.Less(t, elapsed, billing.PublishTimeout+time.Second)
}

func TestCreate_PublishFailureLogsWithSingleComponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockBillPublisher(ctrl)
	f := newFixture(t, pub)
	pub.EXPECT().PublishBillCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker caído"))

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})
	uc := billing.NewBillUseCase(f.store, f.store.Bills(), pub, log)

	_, err := uc.Create(context.Background(), f.request(dto.BillItemRequest{ItemID: f.rice.ID, Quantity: 1}))
	require.NoError(t, err)

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	assert.Equal(t, 1, strings.Count(line, `"component":`), line)
	assert.Contains(t, line, `"component":"billing"`)
	assert.Contains(t, line, "broker caído")
}

func TestCreate_NoPublishOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockBillPublisher(ctrl)
	f := newFixture(t, pub)
	// Sin EXPECT: cualquier llamada al publisher hace fallar el test.

	_, err := f.uc.Create(context.Background(), f.request(dto.BillItemRequest{ItemID: 999, Quantity: 1}))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_PersistenceErrorFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := mocks.NewMockBillingTxRunner(ctrl)
	companies := mocks.NewMockCompanyRepository(ctrl)
	items := mocks.NewMockItemRepository(ctrl)
	bills := mocks.NewMockBillRepository(ctrl)

	tx.EXPECT().RunBilling(gomock.Any(), gomock.Any()).DoAndReturn(runWith(companies, items, bills))

	companies.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&entity.Company{ID: 1}, nil)
	items.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&entity.Item{ID: 5, Rate: decimal.NewFromInt(2)}, nil)
	bills.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("insert bill: %w: %w", domain.ErrPersistence, errors.New("disk full")))

	uc := billing.NewBillUseCase(tx, bills, nil, logger.Nop())
	sl := int64(1)
	_, err := uc.Create(context.Background(), dto.CreateBillRequest{
		Date: "2024-01-15", SLNumber: &sl, CompanyID: 1,
		BillItems: []dto.BillItemRequest{{ItemID: 5, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

type billingFn = func(repository.CompanyRepository, repository.ItemRepository, repository.BillRepository) error

// runWith simula una transacción entregando los repos dados al callback.
func runWith(c repository.CompanyRepository, i repository.ItemRepository, b repository.BillRepository) func(context.Context, billingFn) error {
	return func(_ context.Context, fn billingFn) error { return fn(c, i, b) }
}

func TestGetBill_Missing(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.GetBill(context.Background(), dto.EntityRef{ID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.GetBill(context.Background(), dto.EntityRef{UUID: entity.NewUUID()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
