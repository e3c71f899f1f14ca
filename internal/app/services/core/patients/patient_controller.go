package patients

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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (pc *PatientController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchPatient{
		Name:       r.URL.Query().Get(constvars.URLQueryParamName),
		Identifier: r.URL.Query().Get(constvars.URLQueryParamIdentifier),
		Gender:     r.URL.Query().Get(constvars.URLQueryParamGender),
		Birthdate:  r.URL.Query().Get(constvars.URLQueryParamBirthdate),
		Pagination: utils.BuildPaginationRequest(r),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patients, total, err := pc.PatientUsecase.SearchPatients(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, "patients"), pagination, patients)
}

func (pc *PatientController) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := pc.PatientUsecase.GetPatientByID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, "patient"), patient)
}

func (pc *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := pc.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		fmt.Sprintf(constvars.CreateResourceSuccessMessage, "patient"), patient)
}

func (pc *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if request.ID == "" {
		request.ID = patientID
	}
	if request.ID != patientID {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrFHIRResourceIDMismatch(nil))
		return
	}

	utils.SanitizeUpdatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := pc.PatientUsecase.UpdatePatient(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.UpdateResourceSuccessMessage, "patient"), patient)
}

func (pc *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := pc.PatientUsecase.DeletePatient(ctx, patientID); err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DeleteResourceSuccessMessage, "patient"), nil)
}
