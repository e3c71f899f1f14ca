package invoices

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	invoiceUsecaseInstance InvoiceUsecase
	onceInvoiceUsecase     sync.Once
)

type invoiceUsecase struct {
	FHIRBackend contracts.FHIRBackend
	Log         *zap.Logger
}

func NewInvoiceUsecase(fhirBackend contracts.FHIRBackend, logger *zap.Logger) InvoiceUsecase {
	onceInvoiceUsecase.Do(func() {
		invoiceUsecaseInstance = &invoiceUsecase{
			FHIRBackend: fhirBackend,
			Log:         logger,
		}
	})
	return invoiceUsecaseInstance
}

func (uc *invoiceUsecase) SearchInvoices(ctx context.Context, request *requests.SearchInvoice) ([]fhir_dto.Invoice, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invoiceUsecase.SearchInvoices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	if request.Patient != "" {
		params.Set(constvars.URLQueryParamPatient, request.Patient)
	}
	if request.Status != "" {
		params.Set(constvars.URLQueryParamStatus, request.Status)
	}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(request.Pagination.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa(request.Pagination.Offset()))

	bundle, err := uc.FHIRBackend.SearchResources(ctx, constvars.ResourceInvoice, params)
	if err != nil {
		return nil, 0, err
	}

	invoices, err := utils.DecodeBundleEntries[fhir_dto.Invoice](bundle)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceInvoice)
	}
	return invoices, bundle.Total, nil
}

func (uc *invoiceUsecase) GetInvoiceByID(ctx context.Context, invoiceID string) (*fhir_dto.Invoice, error) {
	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceInvoice, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice := new(fhir_dto.Invoice)
	if err := json.Unmarshal(raw, invoice); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceInvoice)
	}
	return invoice, nil
}
