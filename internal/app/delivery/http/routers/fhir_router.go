package routers

import (
	"fmt"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/middlewares"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// attachFHIRRoutes mounts the typed clinical endpoints and, below them, the
// generic passthrough. Static path segments win over the {resource_type}
// parameter, so the typed routes always take precedence.
func attachFHIRRoutes(router chi.Router, mw *middlewares.Middlewares, controllers *Controllers) {
	router.Use(mw.Authenticate)

	router.Route("/patients", func(r chi.Router) {
		r.Get("/", controllers.Patient.SearchPatients)
		r.Post("/", controllers.Patient.CreatePatient)
		r.Get(param(constvars.URLParamPatientID), controllers.Patient.GetPatientByID)
		r.Put(param(constvars.URLParamPatientID), controllers.Patient.UpdatePatient)
		r.Delete(param(constvars.URLParamPatientID), controllers.Patient.DeletePatient)
	})

	router.Route("/practitioners", func(r chi.Router) {
		r.Get("/", controllers.Practitioner.SearchPractitioners)
		r.Post("/", controllers.Practitioner.CreatePractitioner)
		r.Get(param(constvars.URLParamPractitionerID), controllers.Practitioner.GetPractitionerByID)
		r.Put(param(constvars.URLParamPractitionerID), controllers.Practitioner.UpdatePractitioner)
		r.Delete(param(constvars.URLParamPractitionerID), controllers.Practitioner.DeletePractitioner)
	})

	router.Route("/appointments", func(r chi.Router) {
		r.Get("/", controllers.Appointment.SearchAppointments)
		r.Post("/", controllers.Appointment.CreateAppointment)
		r.Get(param(constvars.URLParamAppointmentID), controllers.Appointment.GetAppointmentByID)
		r.Patch(param(constvars.URLParamAppointmentID)+"/status", controllers.Appointment.UpdateAppointmentStatus)
		r.Delete(param(constvars.URLParamAppointmentID), controllers.Appointment.DeleteAppointment)
	})

	router.Route("/observations", func(r chi.Router) {
		r.Get("/", controllers.Observation.SearchObservations)
		r.Post("/", controllers.Observation.CreateObservation)
		r.Get(param(constvars.URLParamObservationID), controllers.Observation.GetObservationByID)
		r.Delete(param(constvars.URLParamObservationID), controllers.Observation.DeleteObservation)
	})

	router.Route("/medications", func(r chi.Router) {
		r.Get("/", controllers.Medication.SearchMedicationRequests)
		r.Post("/", controllers.Medication.CreateMedicationRequest)
		r.Get(param(constvars.URLParamMedicationRequestID), controllers.Medication.GetMedicationRequestByID)
		r.Delete(param(constvars.URLParamMedicationRequestID), controllers.Medication.DeleteMedicationRequest)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Get("/", controllers.Invoice.SearchInvoices)
		r.Get(param(constvars.URLParamInvoiceID), controllers.Invoice.GetInvoiceByID)
	})

	router.Route(param(constvars.URLParamResourceType), func(r chi.Router) {
		r.Get("/", controllers.FHIRProxy.Search)
		r.Post("/", controllers.FHIRProxy.Create)
		r.Get(param(constvars.URLParamResourceID), controllers.FHIRProxy.Read)
		r.Put(param(constvars.URLParamResourceID), controllers.FHIRProxy.Update)
		r.Delete(param(constvars.URLParamResourceID), controllers.FHIRProxy.Delete)
	})
}

func param(name string) string {
	return fmt.Sprintf("/{%s}", name)
}
