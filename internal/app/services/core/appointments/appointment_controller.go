package appointments

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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ac *AppointmentController) SearchAppointments(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchAppointment{
		Patient:      r.URL.Query().Get(constvars.URLQueryParamPatient),
		Practitioner: r.URL.Query().Get(constvars.URLQueryParamPractitioner),
		Status:       r.URL.Query().Get(constvars.URLQueryParamStatus),
		Date:         r.URL.Query().Get(constvars.URLQueryParamDate),
		Pagination:   utils.BuildPaginationRequest(r),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointments, total, err := ac.AppointmentUsecase.SearchAppointments(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, "appointments"), pagination, appointments)
}

func (ac *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ac.AppointmentUsecase.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, "appointment"), appointment)
}

func (ac *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ac.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		fmt.Sprintf(constvars.CreateResourceSuccessMessage, "appointment"), appointment)
}

func (ac *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.UpdateAppointmentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ac.AppointmentUsecase.UpdateAppointmentStatus(ctx, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		constvars.UpdateAppointmentStatusSuccessMessage, appointment)
}

func (ac *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ac.AppointmentUsecase.DeleteAppointment(ctx, appointmentID); err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DeleteResourceSuccessMessage, "appointment"), nil)
}
