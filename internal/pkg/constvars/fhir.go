package constvars

const (
	ResourcePatient            = "Patient"
	ResourcePractitioner       = "Practitioner"
	ResourcePractitionerRole   = "PractitionerRole"
	ResourceAppointment        = "Appointment"
	ResourceObservation        = "Observation"
	ResourceMedicationRequest  = "MedicationRequest"
	ResourceMedication         = "Medication"
	ResourceInvoice            = "Invoice"
	ResourceCoverage           = "Coverage"
	ResourceCommunication      = "Communication"
	ResourceServiceRequest     = "ServiceRequest"
	ResourceOrganization       = "Organization"
	ResourceLocation           = "Location"
	ResourceEncounter          = "Encounter"
	ResourceCondition          = "Condition"
	ResourceAllergyIntolerance = "AllergyIntolerance"
	ResourceImmunization       = "Immunization"
	ResourceDiagnosticReport   = "DiagnosticReport"
	ResourceDocumentReference  = "DocumentReference"
	ResourceRelatedPerson      = "RelatedPerson"
	ResourceCarePlan           = "CarePlan"
	ResourceSchedule           = "Schedule"
	ResourceSlot               = "Slot"
)

// AllowedFhirResources is the allowlist for the generic /fhir/{resource_type}
// passthrough. Resource types outside this map are rejected before anything is
// forwarded upstream.
var AllowedFhirResources = map[string]bool{
	ResourcePatient:            true,
	ResourcePractitioner:       true,
	ResourcePractitionerRole:   true,
	ResourceAppointment:        true,
	ResourceObservation:        true,
	ResourceMedicationRequest:  true,
	ResourceMedication:         true,
	ResourceInvoice:            true,
	ResourceCoverage:           true,
	ResourceCommunication:      true,
	ResourceServiceRequest:     true,
	ResourceOrganization:       true,
	ResourceLocation:           true,
	ResourceEncounter:          true,
	ResourceCondition:          true,
	ResourceAllergyIntolerance: true,
	ResourceImmunization:       true,
	ResourceDiagnosticReport:   true,
	ResourceDocumentReference:  true,
	ResourceRelatedPerson:      true,
	ResourceCarePlan:           true,
	ResourceSchedule:           true,
	ResourceSlot:               true,
}

const (
	FhirAppointmentStatusProposed  = "proposed"
	FhirAppointmentStatusPending   = "pending"
	FhirAppointmentStatusBooked    = "booked"
	FhirAppointmentStatusArrived   = "arrived"
	FhirAppointmentStatusFulfilled = "fulfilled"
	FhirAppointmentStatusCancelled = "cancelled"
	FhirAppointmentStatusNoShow    = "noshow"
	FhirAppointmentStatusCheckedIn = "checked-in"
)

const (
	FhirParticipantStatusAccepted    = "accepted"
	FhirParticipantStatusDeclined    = "declined"
	FhirParticipantStatusTentative   = "tentative"
	FhirParticipantStatusNeedsAction = "needs-action"
)

const (
	FhirInvoiceStatusDraft          = "draft"
	FhirInvoiceStatusIssued         = "issued"
	FhirInvoiceStatusBalanced       = "balanced"
	FhirInvoiceStatusCancelled      = "cancelled"
	FhirInvoiceStatusEnteredInError = "entered-in-error"
)

const (
	FhirMedicationRequestStatusActive    = "active"
	FhirMedicationRequestStatusOnHold    = "on-hold"
	FhirMedicationRequestStatusCancelled = "cancelled"
	FhirMedicationRequestStatusCompleted = "completed"
	FhirMedicationRequestStatusStopped   = "stopped"
	FhirMedicationRequestStatusDraft     = "draft"
)

const (
	FhirBundleTypeSearchset = "searchset"
)

const (
	FhirSearchParamCount  = "_count"
	FhirSearchParamOffset = "_offset"
	FhirSearchParamSort   = "_sort"
	FhirSearchParamID     = "_id"
)

const (
	FhirR4PathPrefix = "/fhir/R4"
)
