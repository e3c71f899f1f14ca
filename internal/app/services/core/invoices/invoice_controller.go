package invoices

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceController struct {
	Log            *zap.Logger
	InvoiceUsecase InvoiceUsecase
}

func NewInvoiceController(logger *zap.Logger, invoiceUsecase InvoiceUsecase) *InvoiceController {
	return &InvoiceController{
		Log:            logger,
		InvoiceUsecase: invoiceUsecase,
	}
}

func (ic *InvoiceController) SearchInvoices(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchInvoice{
		Patient:    r.URL.Query().Get(constvars.URLQueryParamPatient),
		Status:     r.URL.Query().Get(constvars.URLQueryParamStatus),
		Pagination: utils.BuildPaginationRequest(r),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ic.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	invoices, total, err := ic.InvoiceUsecase.SearchInvoices(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ic.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, "invoices"), pagination, invoices)
}

func (ic *InvoiceController) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, constvars.URLParamInvoiceID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	invoice, err := ic.InvoiceUsecase.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		utils.BuildErrorResponse(ic.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, "invoice"), invoice)
}
