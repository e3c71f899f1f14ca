package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/mockfhir"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeMailer records every enqueued payload and can be told to fail.
type fakeMailer struct {
	enqueued []*requests.EmailPayload
	fail     bool
}

func (f *fakeMailer) EnqueueEmail(ctx context.Context, request *requests.EmailPayload) error {
	if f.fail {
		return errors.New("broker unavailable")
	}
	f.enqueued = append(f.enqueued, request)
	return nil
}

// The usecase is a package singleton; all tests share one instance backed by
// the fixture store.
var (
	testAppointmentUsecase AppointmentUsecase
	testMailer             *fakeMailer
)

func setupAppointmentUsecase(t *testing.T) AppointmentUsecase {
	if testAppointmentUsecase != nil {
		return testAppointmentUsecase
	}

	backend, err := mockfhir.NewMockBackend(zap.NewNop())
	assert.NoError(t, err)

	testMailer = &fakeMailer{}
	testAppointmentUsecase = NewAppointmentUsecase(backend, testMailer, zap.NewNop())
	return testAppointmentUsecase
}

func TestAppointmentUsecase_SearchAppointments(t *testing.T) {
	uc := setupAppointmentUsecase(t)
	ctx := context.Background()

	t.Run("All Appointments", func(t *testing.T) {
		appointments, total, err := uc.SearchAppointments(ctx, &requests.SearchAppointment{
			Pagination: &requests.Pagination{Page: 1, PageSize: 10},
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, appointments, 3)
	})

	t.Run("Filter by Status", func(t *testing.T) {
		appointments, total, err := uc.SearchAppointments(ctx, &requests.SearchAppointment{
			Status:     constvars.FhirAppointmentStatusBooked,
			Pagination: &requests.Pagination{Page: 1, PageSize: 10},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "appointment-001", appointments[0].ID)
	})

	t.Run("Filter by Patient", func(t *testing.T) {
		appointments, total, err := uc.SearchAppointments(ctx, &requests.SearchAppointment{
			Patient:    "Patient/patient-002",
			Pagination: &requests.Pagination{Page: 1, PageSize: 10},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "appointment-002", appointments[0].ID)
	})
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	uc := setupAppointmentUsecase(t)
	ctx := context.Background()

	t.Run("Booked Appointment Enqueues Confirmation", func(t *testing.T) {
		before := len(testMailer.enqueued)

		created, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientReference:      "Patient/patient-001",
			PractitionerReference: "Practitioner/practitioner-001",
			Start:                 "2026-10-01T10:00:00Z",
			End:                   "2026-10-01T10:30:00Z",
			ServiceType:           "Video Consultation",
			PatientEmail:          "sarah.johnson@example.com",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, constvars.FhirAppointmentStatusBooked, created.Status, "status defaults to booked")
		assert.Len(t, created.Participant, 2)

		assert.Len(t, testMailer.enqueued, before+1)
		mail := testMailer.enqueued[len(testMailer.enqueued)-1]
		assert.Equal(t, constvars.MailJobTypeAppointmentBooked, mail.Type)
		assert.Equal(t, "sarah.johnson@example.com", mail.To)
	})

	t.Run("No Email No Notification", func(t *testing.T) {
		before := len(testMailer.enqueued)

		_, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientReference:      "Patient/patient-002",
			PractitionerReference: "Practitioner/practitioner-002",
			Start:                 "2026-10-02T10:00:00Z",
			End:                   "2026-10-02T10:30:00Z",
		})
		assert.NoError(t, err)
		assert.Len(t, testMailer.enqueued, before)
	})

	t.Run("Start Must Be Before End", func(t *testing.T) {
		_, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientReference:      "Patient/patient-001",
			PractitionerReference: "Practitioner/practitioner-001",
			Start:                 "2026-10-01T11:00:00Z",
			End:                   "2026-10-01T10:30:00Z",
		})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Unparseable Start", func(t *testing.T) {
		_, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientReference:      "Patient/patient-001",
			PractitionerReference: "Practitioner/practitioner-001",
			Start:                 "next tuesday",
			End:                   "2026-10-01T10:30:00Z",
		})
		assert.Error(t, err)
	})

	t.Run("Broken Mail Queue Does Not Fail the Booking", func(t *testing.T) {
		testMailer.fail = true
		defer func() { testMailer.fail = false }()

		created, err := uc.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientReference:      "Patient/patient-003",
			PractitionerReference: "Practitioner/practitioner-003",
			Start:                 "2026-10-03T10:00:00Z",
			End:                   "2026-10-03T10:30:00Z",
			PatientEmail:          "amara.okafor@example.com",
		})
		assert.NoError(t, err, "a broken broker only costs the notification")
		assert.NotEmpty(t, created.ID)
	})
}

func TestAppointmentUsecase_UpdateAppointmentStatus(t *testing.T) {
	uc := setupAppointmentUsecase(t)
	ctx := context.Background()

	t.Run("Cancellation Enqueues Notice", func(t *testing.T) {
		before := len(testMailer.enqueued)

		updated, err := uc.UpdateAppointmentStatus(ctx, "appointment-001", &requests.UpdateAppointmentStatus{
			Status:       constvars.FhirAppointmentStatusCancelled,
			PatientEmail: "sarah.johnson@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.FhirAppointmentStatusCancelled, updated.Status)
		assert.Equal(t, "Quarterly check-in", updated.Description, "fields outside the patch survive")

		assert.Len(t, testMailer.enqueued, before+1)
		assert.Equal(t, constvars.MailJobTypeAppointmentCancelled, testMailer.enqueued[len(testMailer.enqueued)-1].Type)
	})

	t.Run("Non-Cancellation Sends Nothing", func(t *testing.T) {
		before := len(testMailer.enqueued)

		updated, err := uc.UpdateAppointmentStatus(ctx, "appointment-002", &requests.UpdateAppointmentStatus{
			Status:       constvars.FhirAppointmentStatusFulfilled,
			PatientEmail: "michael.chen@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.FhirAppointmentStatusFulfilled, updated.Status)
		assert.Len(t, testMailer.enqueued, before)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		_, err := uc.UpdateAppointmentStatus(ctx, "no-such-appointment", &requests.UpdateAppointmentStatus{
			Status: constvars.FhirAppointmentStatusCancelled,
		})
		assert.Error(t, err)
	})
}

func TestAppointmentUsecase_DeleteAppointment(t *testing.T) {
	uc := setupAppointmentUsecase(t)
	ctx := context.Background()

	assert.NoError(t, uc.DeleteAppointment(ctx, "appointment-003"))

	_, err := uc.GetAppointmentByID(ctx, "appointment-003")
	assert.Error(t, err)
}
