package practitioners

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

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase PractitionerUsecase
}

func NewPractitionerController(logger *zap.Logger, practitionerUsecase PractitionerUsecase) *PractitionerController {
	return &PractitionerController{
		Log:                 logger,
		PractitionerUsecase: practitionerUsecase,
	}
}

func (pc *PractitionerController) SearchPractitioners(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchPractitioner{
		Name:       r.URL.Query().Get(constvars.URLQueryParamName),
		Specialty:  r.URL.Query().Get(constvars.URLQueryParamSpecialty),
		Active:     r.URL.Query().Get(constvars.URLQueryParamActive),
		Pagination: utils.BuildPaginationRequest(r),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	practitioners, total, err := pc.PractitionerUsecase.SearchPractitioners(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, "practitioners"), pagination, practitioners)
}

func (pc *PractitionerController) GetPractitionerByID(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, constvars.URLParamPractitionerID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	practitioner, err := pc.PractitionerUsecase.GetPractitionerByID(ctx, practitionerID)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, "practitioner"), practitioner)
}

func (pc *PractitionerController) CreatePractitioner(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePractitioner)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePractitionerRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	practitioner, err := pc.PractitionerUsecase.CreatePractitioner(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		fmt.Sprintf(constvars.CreateResourceSuccessMessage, "practitioner"), practitioner)
}

func (pc *PractitionerController) UpdatePractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, constvars.URLParamPractitionerID)

	request := new(requests.UpdatePractitioner)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if request.ID == "" {
		request.ID = practitionerID
	}
	if request.ID != practitionerID {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrFHIRResourceIDMismatch(nil))
		return
	}

	utils.SanitizeUpdatePractitionerRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(pc.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	practitioner, err := pc.PractitionerUsecase.UpdatePractitioner(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.UpdateResourceSuccessMessage, "practitioner"), practitioner)
}

func (pc *PractitionerController) DeletePractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, constvars.URLParamPractitionerID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := pc.PractitionerUsecase.DeletePractitioner(ctx, practitionerID); err != nil {
		utils.BuildErrorResponse(pc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DeleteResourceSuccessMessage, "practitioner"), nil)
}
