package appointments

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

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
	appointmentUsecaseInstance AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	FHIRBackend   contracts.FHIRBackend
	MailerService contracts.MailerService
	Log           *zap.Logger
}

func NewAppointmentUsecase(fhirBackend contracts.FHIRBackend, mailerService contracts.MailerService, logger *zap.Logger) AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			FHIRBackend:   fhirBackend,
			MailerService: mailerService,
			Log:           logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) SearchAppointments(ctx context.Context, request *requests.SearchAppointment) ([]fhir_dto.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.SearchAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	if request.Patient != "" {
		params.Set(constvars.URLQueryParamPatient, request.Patient)
	}
	if request.Practitioner != "" {
		params.Set(constvars.URLQueryParamPractitioner, request.Practitioner)
	}
	if request.Status != "" {
		params.Set(constvars.URLQueryParamStatus, request.Status)
	}
	if request.Date != "" {
		params.Set(constvars.URLQueryParamDate, request.Date)
	}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(request.Pagination.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa(request.Pagination.Offset()))

	bundle, err := uc.FHIRBackend.SearchResources(ctx, constvars.ResourceAppointment, params)
	if err != nil {
		return nil, 0, err
	}

	appointments, err := utils.DecodeBundleEntries[fhir_dto.Appointment](bundle)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceAppointment)
	}
	return appointments, bundle.Total, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error) {
	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment := new(fhir_dto.Appointment)
	if err := json.Unmarshal(raw, appointment); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceAppointment)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	start, err := time.Parse(time.RFC3339, request.Start)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	end, err := time.Parse(time.RFC3339, request.End)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if !start.Before(end) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest,
			constvars.ErrClientCannotProcessRequest, "appointment start must be before end")
	}

	status := request.Status
	if status == "" {
		status = constvars.FhirAppointmentStatusBooked
	}

	resource := &fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		Status:       status,
		Description:  request.Description,
		Start:        request.Start,
		End:          request.End,
		Created:      time.Now().UTC().Format(time.RFC3339),
		Participant: []fhir_dto.AppointmentParticipant{
			{
				Actor:  &fhir_dto.Reference{Reference: request.PatientReference},
				Status: constvars.FhirParticipantStatusAccepted,
			},
			{
				Actor:  &fhir_dto.Reference{Reference: request.PractitionerReference},
				Status: constvars.FhirParticipantStatusAccepted,
			},
		},
	}
	if request.ServiceType != "" {
		resource.ServiceType = []fhir_dto.CodeableConcept{{Text: request.ServiceType}}
	}

	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.CreateResource(ctx, constvars.ResourceAppointment, payload)
	if err != nil {
		return nil, err
	}

	created := new(fhir_dto.Appointment)
	if err := json.Unmarshal(raw, created); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceAppointment)
	}

	if status == constvars.FhirAppointmentStatusBooked && request.PatientEmail != "" {
		uc.enqueueAppointmentEmail(ctx, constvars.MailJobTypeAppointmentBooked, request.PatientEmail, created)
	}
	return created, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, appointmentID),
	)

	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, err
	}

	// Status is patched on the raw resource so fields outside the typed DTO
	// survive the round trip.
	resource := make(map[string]interface{})
	if err := json.Unmarshal(raw, &resource); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceAppointment)
	}
	resource["status"] = request.Status

	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	updatedRaw, err := uc.FHIRBackend.UpdateResource(ctx, constvars.ResourceAppointment, appointmentID, payload)
	if err != nil {
		return nil, err
	}

	updated := new(fhir_dto.Appointment)
	if err := json.Unmarshal(updatedRaw, updated); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceAppointment)
	}

	if request.Status == constvars.FhirAppointmentStatusCancelled && request.PatientEmail != "" {
		uc.enqueueAppointmentEmail(ctx, constvars.MailJobTypeAppointmentCancelled, request.PatientEmail, updated)
	}
	return updated, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, appointmentID),
	)
	return uc.FHIRBackend.DeleteResource(ctx, constvars.ResourceAppointment, appointmentID)
}

// enqueueAppointmentEmail never fails the appointment flow; a broken mail
// queue only costs the notification.
func (uc *appointmentUsecase) enqueueAppointmentEmail(ctx context.Context, jobType, recipient string, appointment *fhir_dto.Appointment) {
	subject := constvars.EmailAppointmentBookedSubject
	bodyFormat := constvars.EmailBodyAppointmentBooked
	if jobType == constvars.MailJobTypeAppointmentCancelled {
		subject = constvars.EmailAppointmentCancelledSubject
		bodyFormat = constvars.EmailBodyAppointmentCancelled
	}

	payload := &requests.EmailPayload{
		Type:    jobType,
		To:      recipient,
		Subject: subject,
		Body:    fmt.Sprintf(bodyFormat, appointment.Start, appointment.ID),
	}
	if err := uc.MailerService.EnqueueEmail(ctx, payload); err != nil {
		uc.Log.Error("appointmentUsecase failed to enqueue notification email",
			zap.String(constvars.LoggingResourceIDKey, appointment.ID),
			zap.String(constvars.LoggingEmailKey, recipient),
			zap.Error(err),
		)
	}
}
