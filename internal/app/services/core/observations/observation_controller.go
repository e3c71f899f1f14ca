package observations

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

type ObservationController struct {
	Log                *zap.Logger
	ObservationUsecase ObservationUsecase
}

func NewObservationController(logger *zap.Logger, observationUsecase ObservationUsecase) *ObservationController {
	return &ObservationController{
		Log:                logger,
		ObservationUsecase: observationUsecase,
	}
}

func (oc *ObservationController) SearchObservations(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchObservation{
		Patient:    r.URL.Query().Get(constvars.URLQueryParamPatient),
		Category:   r.URL.Query().Get(constvars.URLQueryParamCategory),
		Code:       r.URL.Query().Get(constvars.URLQueryParamCode),
		Pagination: utils.BuildPaginationRequest(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	observations, total, err := oc.ObservationUsecase.SearchObservations(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(oc.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, "observations"), pagination, observations)
}

func (oc *ObservationController) GetObservationByID(w http.ResponseWriter, r *http.Request) {
	observationID := chi.URLParam(r, constvars.URLParamObservationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	observation, err := oc.ObservationUsecase.GetObservationByID(ctx, observationID)
	if err != nil {
		utils.BuildErrorResponse(oc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, "observation"), observation)
}

func (oc *ObservationController) CreateObservation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateObservation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(oc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(oc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	observation, err := oc.ObservationUsecase.CreateObservation(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(oc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		fmt.Sprintf(constvars.CreateResourceSuccessMessage, "observation"), observation)
}

func (oc *ObservationController) DeleteObservation(w http.ResponseWriter, r *http.Request) {
	observationID := chi.URLParam(r, constvars.URLParamObservationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := oc.ObservationUsecase.DeleteObservation(ctx, observationID); err != nil {
		utils.BuildErrorResponse(oc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DeleteResourceSuccessMessage, "observation"), nil)
}
