package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	billRepo    repository.BillRepository
	companyRepo repository.CompanyRepository
	itemRepo    repository.ItemRepository
	generator   BillPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	billRepo repository.BillRepository,
	companyRepo repository.CompanyRepository,
	itemRepo repository.ItemRepository,
	generator BillPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		billRepo:    billRepo,
		companyRepo: companyRepo,
		itemRepo:    itemRepo,
		generator:   generator,
	}
}

// RenderPDF recupera la factura con su empresa y líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) RenderPDF(ctx context.Context, ref dto.EntityRef) (pdfBytes []byte, filename string, err error) {
	bill, err := findBill(ctx, uc.billRepo, ref)
	if err != nil {
		return nil, "", err
	}

	company, err := uc.companyRepo.GetByID(ctx, bill.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", fmt.Errorf("%w: empresa %d de la factura %d", domain.ErrNotFound, bill.CompanyID, bill.ID)
	}

	raw, err := uc.billRepo.GetLineItemsByBillID(ctx, bill.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	names := make(map[int64]string, len(raw))
	lines := make([]BillLineForPDF, 0, len(raw))
	for _, l := range raw {
		name, ok := names[l.ItemID]
		if !ok {
			name = fmt.Sprintf("Ítem %d", l.ItemID) // fallback
			if item, iErr := uc.itemRepo.GetByID(ctx, l.ItemID); iErr == nil && item != nil {
				name = item.Name
			}
			names[l.ItemID] = name
		}
		lines = append(lines, BillLineForPDF{BillLineItem: *l, ItemName: name})
	}

	pdfBytes, err = uc.generator.GenerateBillPDF(ctx, bill, company, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%d_%s.pdf", bill.SLNumber, bill.Date.Format("20060102")), nil
}
