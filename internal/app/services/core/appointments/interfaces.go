package appointments

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

type AppointmentUsecase interface {
	SearchAppointments(ctx context.Context, request *requests.SearchAppointment) ([]fhir_dto.Appointment, int, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*fhir_dto.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*fhir_dto.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*fhir_dto.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
