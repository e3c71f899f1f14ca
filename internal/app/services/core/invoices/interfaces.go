package invoices

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

type InvoiceUsecase interface {
	SearchInvoices(ctx context.Context, request *requests.SearchInvoice) ([]fhir_dto.Invoice, int, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*fhir_dto.Invoice, error)
}
