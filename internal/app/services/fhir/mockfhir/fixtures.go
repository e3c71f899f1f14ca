package mockfhir

// fixtureData seeds the in-memory store with the demo data set served when no
// Medplum credentials are configured.
const fixtureData = `[
  {
    "resourceType": "Patient",
    "id": "patient-001",
    "active": true,
    "identifier": [{"system": "urn:telehealth:mrn", "value": "MRN-1001"}],
    "name": [{"use": "official", "family": "Johnson", "given": ["Sarah", "Marie"]}],
    "telecom": [
      {"system": "email", "value": "sarah.johnson@example.com", "use": "home"},
      {"system": "phone", "value": "+1-555-0101", "use": "mobile"}
    ],
    "gender": "female",
    "birthDate": "1985-03-12",
    "address": [{"use": "home", "line": ["12 Maple Street"], "city": "Springfield", "state": "IL", "postalCode": "62704"}]
  },
  {
    "resourceType": "Patient",
    "id": "patient-002",
    "active": true,
    "identifier": [{"system": "urn:telehealth:mrn", "value": "MRN-1002"}],
    "name": [{"use": "official", "family": "Chen", "given": ["Michael"]}],
    "telecom": [{"system": "email", "value": "michael.chen@example.com", "use": "home"}],
    "gender": "male",
    "birthDate": "1978-11-02",
    "address": [{"use": "home", "line": ["88 Oak Avenue"], "city": "Portland", "state": "OR", "postalCode": "97205"}]
  },
  {
    "resourceType": "Patient",
    "id": "patient-003",
    "active": false,
    "identifier": [{"system": "urn:telehealth:mrn", "value": "MRN-1003"}],
    "name": [{"use": "official", "family": "Okafor", "given": ["Amara"]}],
    "telecom": [{"system": "phone", "value": "+1-555-0103", "use": "mobile"}],
    "gender": "female",
    "birthDate": "1992-07-23"
  },
  {
    "resourceType": "Practitioner",
    "id": "practitioner-001",
    "active": true,
    "name": [{"use": "official", "family": "Rivera", "given": ["Elena"], "prefix": ["Dr."]}],
    "telecom": [{"system": "email", "value": "elena.rivera@telehealth.example.com", "use": "work"}],
    "qualification": [{"code": {"text": "Family Medicine"}}]
  },
  {
    "resourceType": "Practitioner",
    "id": "practitioner-002",
    "active": true,
    "name": [{"use": "official", "family": "Patel", "given": ["Raj"], "prefix": ["Dr."]}],
    "telecom": [{"system": "email", "value": "raj.patel@telehealth.example.com", "use": "work"}],
    "qualification": [{"code": {"text": "Cardiology"}}]
  },
  {
    "resourceType": "Practitioner",
    "id": "practitioner-003",
    "active": false,
    "name": [{"use": "official", "family": "Nguyen", "given": ["Linh"], "prefix": ["Dr."]}],
    "qualification": [{"code": {"text": "Dermatology"}}]
  },
  {
    "resourceType": "Appointment",
    "id": "appointment-001",
    "status": "booked",
    "description": "Quarterly check-in",
    "start": "2026-09-01T14:00:00Z",
    "end": "2026-09-01T14:30:00Z",
    "serviceType": [{"text": "Video Consultation"}],
    "participant": [
      {"actor": {"reference": "Patient/patient-001", "display": "Sarah Johnson"}, "status": "accepted"},
      {"actor": {"reference": "Practitioner/practitioner-001", "display": "Dr. Elena Rivera"}, "status": "accepted"}
    ]
  },
  {
    "resourceType": "Appointment",
    "id": "appointment-002",
    "status": "fulfilled",
    "description": "Hypertension follow-up",
    "start": "2026-08-10T09:00:00Z",
    "end": "2026-08-10T09:30:00Z",
    "serviceType": [{"text": "Video Consultation"}],
    "participant": [
      {"actor": {"reference": "Patient/patient-002", "display": "Michael Chen"}, "status": "accepted"},
      {"actor": {"reference": "Practitioner/practitioner-002", "display": "Dr. Raj Patel"}, "status": "accepted"}
    ]
  },
  {
    "resourceType": "Appointment",
    "id": "appointment-003",
    "status": "cancelled",
    "description": "Skin rash review",
    "start": "2026-08-15T16:00:00Z",
    "end": "2026-08-15T16:20:00Z",
    "participant": [
      {"actor": {"reference": "Patient/patient-003", "display": "Amara Okafor"}, "status": "declined"},
      {"actor": {"reference": "Practitioner/practitioner-003", "display": "Dr. Linh Nguyen"}, "status": "accepted"}
    ]
  },
  {
    "resourceType": "Observation",
    "id": "observation-001",
    "status": "final",
    "category": [{"coding": [{"system": "http://terminology.hl7.org/CodeSystem/observation-category", "code": "vital-signs"}], "text": "Vital Signs"}],
    "code": {"coding": [{"system": "http://loinc.org", "code": "8867-4", "display": "Heart rate"}], "text": "Heart rate"},
    "subject": {"reference": "Patient/patient-001"},
    "effectiveDateTime": "2026-08-10T09:05:00Z",
    "valueQuantity": {"value": 72, "unit": "beats/minute", "system": "http://unitsofmeasure.org", "code": "/min"}
  },
  {
    "resourceType": "Observation",
    "id": "observation-002",
    "status": "final",
    "category": [{"coding": [{"system": "http://terminology.hl7.org/CodeSystem/observation-category", "code": "vital-signs"}], "text": "Vital Signs"}],
    "code": {"coding": [{"system": "http://loinc.org", "code": "85354-9", "display": "Blood pressure panel"}], "text": "Blood pressure"},
    "subject": {"reference": "Patient/patient-002"},
    "effectiveDateTime": "2026-08-10T09:10:00Z",
    "component": [
      {"code": {"text": "Systolic"}, "valueQuantity": {"value": 138, "unit": "mmHg"}},
      {"code": {"text": "Diastolic"}, "valueQuantity": {"value": 88, "unit": "mmHg"}}
    ]
  },
  {
    "resourceType": "MedicationRequest",
    "id": "medicationrequest-001",
    "status": "active",
    "intent": "order",
    "medicationCodeableConcept": {"coding": [{"system": "http://www.nlm.nih.gov/research/umls/rxnorm", "code": "197361", "display": "Lisinopril 10 MG Oral Tablet"}], "text": "Lisinopril 10mg"},
    "subject": {"reference": "Patient/patient-002"},
    "requester": {"reference": "Practitioner/practitioner-002"},
    "authoredOn": "2026-08-10",
    "dosageInstruction": [{"text": "One tablet daily"}]
  },
  {
    "resourceType": "MedicationRequest",
    "id": "medicationrequest-002",
    "status": "completed",
    "intent": "order",
    "medicationCodeableConcept": {"coding": [{"system": "http://www.nlm.nih.gov/research/umls/rxnorm", "code": "834061", "display": "Penicillin V 500 MG Oral Tablet"}], "text": "Penicillin V 500mg"},
    "subject": {"reference": "Patient/patient-001"},
    "requester": {"reference": "Practitioner/practitioner-001"},
    "authoredOn": "2026-07-01",
    "dosageInstruction": [{"text": "One tablet three times daily for 10 days"}]
  },
  {
    "resourceType": "Invoice",
    "id": "invoice-001",
    "status": "issued",
    "subject": {"reference": "Patient/patient-001"},
    "date": "2026-08-12",
    "lineItem": [
      {"sequence": 1, "chargeItemCodeableConcept": {"text": "Video Consultation"}, "priceComponent": [{"type": "base", "amount": {"value": 120.00, "currency": "USD"}}]}
    ],
    "totalNet": {"value": 120.00, "currency": "USD"},
    "totalGross": {"value": 120.00, "currency": "USD"}
  },
  {
    "resourceType": "Invoice",
    "id": "invoice-002",
    "status": "balanced",
    "subject": {"reference": "Patient/patient-002"},
    "date": "2026-08-10",
    "lineItem": [
      {"sequence": 1, "chargeItemCodeableConcept": {"text": "Cardiology Follow-up"}, "priceComponent": [{"type": "base", "amount": {"value": 180.00, "currency": "USD"}}]}
    ],
    "totalNet": {"value": 180.00, "currency": "USD"},
    "totalGross": {"value": 180.00, "currency": "USD"}
  },
  {
    "resourceType": "Coverage",
    "id": "coverage-001",
    "status": "active",
    "subscriberId": "BCBS-44821",
    "beneficiary": {"reference": "Patient/patient-001"},
    "payor": [{"display": "Blue Cross Blue Shield"}],
    "class": [{"type": {"text": "plan"}, "value": "PPO Gold"}]
  },
  {
    "resourceType": "Coverage",
    "id": "coverage-002",
    "status": "cancelled",
    "subscriberId": "AET-99107",
    "beneficiary": {"reference": "Patient/patient-002"},
    "payor": [{"display": "Aetna"}]
  },
  {
    "resourceType": "Communication",
    "id": "communication-001",
    "status": "completed",
    "subject": {"reference": "Patient/patient-001"},
    "recipient": [{"reference": "Practitioner/practitioner-001"}],
    "sent": "2026-08-18T10:15:00Z",
    "payload": [{"contentString": "Hi Dr. Rivera, my refill is running out this week."}]
  },
  {
    "resourceType": "Communication",
    "id": "communication-002",
    "status": "in-progress",
    "subject": {"reference": "Patient/patient-002"},
    "recipient": [{"reference": "Practitioner/practitioner-002"}],
    "sent": "2026-08-19T08:40:00Z",
    "payload": [{"contentString": "Blood pressure readings attached as discussed."}]
  },
  {
    "resourceType": "ServiceRequest",
    "id": "servicerequest-001",
    "status": "active",
    "intent": "order",
    "code": {"text": "Lipid panel"},
    "subject": {"reference": "Patient/patient-002"},
    "requester": {"reference": "Practitioner/practitioner-002"},
    "authoredOn": "2026-08-10"
  },
  {
    "resourceType": "ServiceRequest",
    "id": "servicerequest-002",
    "status": "completed",
    "intent": "order",
    "code": {"text": "Dermatology referral"},
    "subject": {"reference": "Patient/patient-003"},
    "requester": {"reference": "Practitioner/practitioner-001"},
    "authoredOn": "2026-07-20"
  }
]`
