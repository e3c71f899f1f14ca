package medications

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
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase MedicationUsecase
}

func NewMedicationController(logger *zap.Logger, medicationUsecase MedicationUsecase) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
	}
}

func (mc *MedicationController) SearchMedicationRequests(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchMedicationRequest{
		Patient:    r.URL.Query().Get(constvars.URLQueryParamPatient),
		Status:     r.URL.Query().Get(constvars.URLQueryParamStatus),
		Intent:     r.URL.Query().Get(constvars.URLQueryParamIntent),
		Pagination: utils.BuildPaginationRequest(r),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(mc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medicationRequests, total, err := mc.MedicationUsecase.SearchMedicationRequests(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(mc.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, "medication requests"), pagination, medicationRequests)
}

func (mc *MedicationController) GetMedicationRequestByID(w http.ResponseWriter, r *http.Request) {
	medicationRequestID := chi.URLParam(r, constvars.URLParamMedicationRequestID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medicationRequest, err := mc.MedicationUsecase.GetMedicationRequestByID(ctx, medicationRequestID)
	if err != nil {
		utils.BuildErrorResponse(mc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, "medication request"), medicationRequest)
}

func (mc *MedicationController) CreateMedicationRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicationRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(mc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(mc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medicationRequest, err := mc.MedicationUsecase.CreateMedicationRequest(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(mc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		fmt.Sprintf(constvars.CreateResourceSuccessMessage, "medication request"), medicationRequest)
}

func (mc *MedicationController) DeleteMedicationRequest(w http.ResponseWriter, r *http.Request) {
	medicationRequestID := chi.URLParam(r, constvars.URLParamMedicationRequestID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := mc.MedicationUsecase.DeleteMedicationRequest(ctx, medicationRequestID); err != nil {
		utils.BuildErrorResponse(mc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DeleteResourceSuccessMessage, "medication request"), nil)
}
