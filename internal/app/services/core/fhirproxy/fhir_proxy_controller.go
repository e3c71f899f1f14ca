package fhirproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FHIRProxyController struct {
	Log              *zap.Logger
	FHIRProxyUsecase FHIRProxyUsecase
}

func NewFHIRProxyController(logger *zap.Logger, fhirProxyUsecase FHIRProxyUsecase) *FHIRProxyController {
	return &FHIRProxyController{
		Log:              logger,
		FHIRProxyUsecase: fhirProxyUsecase,
	}
}

func (fc *FHIRProxyController) Search(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	paginationRequest := utils.BuildPaginationRequest(r)

	params := r.URL.Query()
	params.Del(constvars.URLQueryParamPage)
	params.Del(constvars.URLQueryParamPageSize)
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(paginationRequest.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa((paginationRequest.Page-1)*paginationRequest.PageSize))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := fc.FHIRProxyUsecase.Search(ctx, resourceType, params)
	if err != nil {
		utils.BuildErrorResponse(fc.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(bundle.Total, paginationRequest.Page, paginationRequest.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourcesSuccessMessage, resourceType), pagination, utils.RawBundleEntries(bundle))
}

func (fc *FHIRProxyController) Read(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := fc.FHIRProxyUsecase.Read(ctx, resourceType, resourceID)
	if err != nil {
		utils.BuildErrorResponse(fc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.GetResourceSuccessMessage, resourceType), json.RawMessage(resource))
}

func (fc *FHIRProxyController) Create(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(fc.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := fc.FHIRProxyUsecase.Create(ctx, resourceType, payload)
	if err != nil {
		utils.BuildErrorResponse(fc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated,
		fmt.Sprintf(constvars.CreateResourceSuccessMessage, resourceType), json.RawMessage(resource))
}

func (fc *FHIRProxyController) Update(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(fc.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := fc.FHIRProxyUsecase.Update(ctx, resourceType, resourceID, payload)
	if err != nil {
		utils.BuildErrorResponse(fc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.UpdateResourceSuccessMessage, resourceType), json.RawMessage(resource))
}

func (fc *FHIRProxyController) Delete(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := fc.FHIRProxyUsecase.Delete(ctx, resourceType, resourceID); err != nil {
		utils.BuildErrorResponse(fc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DeleteResourceSuccessMessage, resourceType), nil)
}
