package medplum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

var (
	medplumBackendInstance contracts.FHIRBackend
	onceMedplumBackend     sync.Once
)

type medplumBackend struct {
	BaseUrl      string
	TokenManager *TokenManager
	Client       *http.Client
	Log          *zap.Logger
}

func NewMedplumBackend(internalConfig *config.InternalConfig, tokenManager *TokenManager, logger *zap.Logger) contracts.FHIRBackend {
	onceMedplumBackend.Do(func() {
		timeout := time.Duration(internalConfig.Medplum.TimeoutInSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		medplumBackendInstance = &medplumBackend{
			BaseUrl:      strings.TrimRight(internalConfig.Medplum.BaseUrl, "/") + constvars.FhirR4PathPrefix,
			TokenManager: tokenManager,
			Client:       &http.Client{Timeout: timeout},
			Log:          logger,
		}
	})
	return medplumBackendInstance
}

func (b *medplumBackend) Name() string {
	return "medplum"
}

func (b *medplumBackend) SearchResources(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	b.Log.Info("medplumBackend.SearchResources called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)

	path := "/" + resourceType
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	body, err := b.do(ctx, constvars.MethodGet, path, nil, constvars.StatusOK)
	if err != nil {
		return nil, exceptions.ErrSearchFHIRResource(err, resourceType)
	}

	bundle := new(fhir_dto.Bundle)
	if err := json.Unmarshal(body, bundle); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, resourceType)
	}
	return bundle, nil
}

func (b *medplumBackend) ReadResource(ctx context.Context, resourceType, resourceID string) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	b.Log.Info("medplumBackend.ReadResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)

	body, err := b.do(ctx, constvars.MethodGet, fmt.Sprintf("/%s/%s", resourceType, resourceID), nil, constvars.StatusOK)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (b *medplumBackend) CreateResource(ctx context.Context, resourceType string, payload json.RawMessage) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	b.Log.Info("medplumBackend.CreateResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)

	body, err := b.do(ctx, constvars.MethodPost, "/"+resourceType, payload, constvars.StatusCreated)
	if err != nil {
		return nil, exceptions.ErrCreateFHIRResource(err, resourceType)
	}
	return body, nil
}

func (b *medplumBackend) UpdateResource(ctx context.Context, resourceType, resourceID string, payload json.RawMessage) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	b.Log.Info("medplumBackend.UpdateResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)

	body, err := b.do(ctx, constvars.MethodPut, fmt.Sprintf("/%s/%s", resourceType, resourceID), payload, constvars.StatusOK)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (b *medplumBackend) DeleteResource(ctx context.Context, resourceType, resourceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	b.Log.Info("medplumBackend.DeleteResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)

	_, err := b.do(ctx, constvars.MethodDelete, fmt.Sprintf("/%s/%s", resourceType, resourceID), nil, constvars.StatusOK, constvars.StatusNoContent)
	if err != nil {
		return exceptions.ErrDeleteFHIRResource(err, resourceType)
	}
	return nil
}

func (b *medplumBackend) Ping(ctx context.Context) error {
	_, err := b.TokenManager.GetToken(ctx)
	return err
}

// do performs one authenticated request against the upstream. A 401 despite a
// cached token invalidates the cache and retries exactly once with a fresh
// token; any further failure surfaces as-is.
func (b *medplumBackend) do(ctx context.Context, method, path string, payload json.RawMessage, acceptedStatuses ...int) (json.RawMessage, error) {
	body, status, err := b.doOnce(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	if status == constvars.StatusUnauthorized {
		b.TokenManager.Invalidate()
		body, status, err = b.doOnce(ctx, method, path, payload)
		if err != nil {
			return nil, err
		}
	}

	for _, accepted := range acceptedStatuses {
		if status == accepted {
			return body, nil
		}
	}
	return nil, b.mapUpstreamError(path, status, body)
}

func (b *medplumBackend) doOnce(ctx context.Context, method, path string, payload json.RawMessage) (json.RawMessage, int, error) {
	token, err := b.TokenManager.GetToken(ctx)
	if err != nil {
		return nil, 0, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.BaseUrl+path, reqBody)
	if err != nil {
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, exceptions.ErrMedplumUpstream(err)
	}
	return bodyBytes, resp.StatusCode, nil
}

func (b *medplumBackend) mapUpstreamError(path string, status int, body json.RawMessage) error {
	diagnostics := ""
	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(body, &outcome); err == nil && len(outcome.Issue) > 0 {
		diagnostics = outcome.Issue[0].Diagnostics
	}

	b.Log.Error("medplumBackend upstream error",
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, status),
		zap.String(constvars.LoggingErrorMessageKey, diagnostics),
	)

	if status == constvars.StatusNotFound || status == constvars.StatusGone {
		return exceptions.ErrFHIRResourceNotFound(fmt.Errorf("%s", diagnostics), path)
	}

	if diagnostics == "" {
		diagnostics = fmt.Sprintf("upstream returned status %d", status)
	}
	// Client errors keep their upstream status; everything else is a bad gateway.
	if status >= constvars.StatusBadRequest && status < constvars.StatusInternalServerError {
		return exceptions.WrapWithoutError(status, constvars.ErrClientCannotProcessRequest, diagnostics)
	}
	return exceptions.ErrMedplumUpstream(fmt.Errorf("%s", diagnostics))
}
