package payments

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const stripeSignatureHeader = "Stripe-Signature"

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, constvars.URLParamInvoiceID)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	intent, err := pc.PaymentUsecase.CreatePaymentIntentForInvoice(ctx, invoiceID)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		constvars.CreatePaymentIntentSuccessMessage, intent)
}

func (pc *PaymentController) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := pc.PaymentUsecase.HandleWebhookEvent(ctx, payload, r.Header.Get(stripeSignatureHeader)); err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		constvars.PaymentWebhookSuccessMessage, nil)
}
