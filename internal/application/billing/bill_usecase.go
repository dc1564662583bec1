package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// PublishTimeout tope del envío de bill.created tras confirmar la factura. El cliente
// ya tiene su factura; el evento no puede retrasar la respuesta más que esto.
const PublishTimeout = time.Second

// BillUseCase crea y consulta facturas.
type BillUseCase struct {
	txRunner  BillingTxRunner
	billRepo  repository.BillRepository
	publisher BillPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewBillUseCase construye el caso de uso. billRepo se usa solo para lecturas fuera de transacción.
func NewBillUseCase(txRunner BillingTxRunner, billRepo repository.BillRepository, publisher BillPublisher, log *logger.Logger) *BillUseCase {
	return &BillUseCase{
		txRunner:  txRunner,
		billRepo:  billRepo,
		publisher: publisher,
		log:       log.Component("billing"),
		now:       time.Now,
	}
}

// Create valida la entrada, resuelve la tarifa de cada ítem, calcula montos y total y
// persiste cabecera y líneas en una sola transacción.
//
// Retorna:
//   - domain.ErrInvalidInput si la fecha no es YYYY-MM-DD o la forma del request es inválida.
//   - domain.ErrNotFound     si la empresa o algún ítem no existe (no se escribe nada).
//   - domain.ErrPersistence  si falla el almacenamiento (no se escribe nada).
func (uc *BillUseCase) Create(ctx context.Context, in dto.CreateBillRequest) (*dto.BillCreatedResponse, error) {
	date, err := entity.ParseBillDate(strings.TrimSpace(in.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date %q debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, in.Date)
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		UUID:      entity.NewUUID(),
		Date:      date,
		SLNumber:  *in.SLNumber,
		CompanyID: in.CompanyID,
	}
	var lines []*entity.BillLineItem

	err = uc.txRunner.RunBilling(ctx, func(
		companyRepo repository.CompanyRepository,
		itemRepo repository.ItemRepository,
		billRepo repository.BillRepository,
	) error {
		company, err := companyRepo.GetByID(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return fmt.Errorf("%w: empresa %d", domain.ErrNotFound, in.CompanyID)
		}

		// Las tarifas se leen dentro de la tx: el snapshot y la escritura son consistentes.
		lines = make([]*entity.BillLineItem, 0, len(in.BillItems))
		for _, li := range in.BillItems {
			item, err := itemRepo.GetByID(ctx, li.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("%w: ítem %d", domain.ErrNotFound, li.ItemID)
			}
			lines = append(lines, entity.NewBillLineItem(item, li.Quantity))
		}
		bill.Total = entity.SumAmounts(lines)

		if err := billRepo.Create(ctx, bill); err != nil {
			return err
		}
		for _, l := range lines {
			l.BillID = bill.ID
			if err := billRepo.CreateLineItem(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}

	uc.publishCreated(ctx, bill, len(lines))

	return &dto.BillCreatedResponse{
		BillID:   bill.ID,
		BillUUID: bill.UUID,
		Total:    bill.Total,
		Message:  "Factura creada correctamente",
	}, nil
}

func (uc *BillUseCase) publishCreated(ctx context.Context, bill *entity.Bill, lineCount int) {
	if uc.publisher == nil {
		return
	}
	evt := BillCreatedEvent{
		BillID:     bill.ID,
		BillUUID:   bill.UUID,
		Date:       bill.Date.Format(entity.BillDateLayout),
		SLNumber:   bill.SLNumber,
		CompanyID:  bill.CompanyID,
		Total:      bill.Total,
		LineCount:  lineCount,
		OccurredAt: uc.now().UTC(),
	}
	// La factura ya está confirmada: la cancelación del request no corta el envío,
	// pero el envío tiene su propio plazo.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()
	if err := uc.publisher.PublishBillCreated(pubCtx, evt); err != nil {
		uc.log.Warn().Err(err).Str("bill_uuid", bill.UUID).Msg("no se pudo publicar bill.created")
	}
}

// GetBill devuelve la cabecera y sus líneas en orden de creación. domain.ErrNotFound si no existe.
func (uc *BillUseCase) GetBill(ctx context.Context, ref dto.EntityRef) (*dto.BillResponse, error) {
	bill, err := findBill(ctx, uc.billRepo, ref)
	if err != nil {
		return nil, err
	}
	lines, err := uc.billRepo.GetLineItemsByBillID(ctx, bill.ID)
	if err != nil {
		return nil, fmt.Errorf("obtener líneas de la factura %d: %w", bill.ID, err)
	}
	return toBillResponse(bill, lines), nil
}

func findBill(ctx context.Context, repo repository.BillRepository, ref dto.EntityRef) (*entity.Bill, error) {
	var (
		bill *entity.Bill
		err  error
	)
	if ref.IsUUID() {
		bill, err = repo.GetByUUID(ctx, ref.UUID)
	} else {
		bill, err = repo.GetByID(ctx, ref.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("obtener factura %s: %w", ref, err)
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, ref)
	}
	return bill, nil
}

func toBillResponse(b *entity.Bill, lines []*entity.BillLineItem) *dto.BillResponse {
	out := &dto.BillResponse{
		Bill: dto.BillHeaderResponse{
			ID:        b.ID,
			UUID:      b.UUID,
			Date:      b.Date.Format(entity.BillDateLayout),
			SLNumber:  b.SLNumber,
			CompanyID: b.CompanyID,
			Total:     b.Total,
		},
		BillItems: make([]dto.BillLineItemResponse, 0, len(lines)),
	}
	for _, l := range lines {
		out.BillItems = append(out.BillItems, dto.BillLineItemResponse{
			ID:       l.ID,
			UUID:     l.UUID,
			BillID:   l.BillID,
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			Rate:     l.Rate,
			Amount:   l.Amount,
		})
	}
	return out
}
