package constvars

const (
	EmailAppointmentBookedSubject    = "[TELEHEALTH] Appointment Confirmation"
	EmailAppointmentCancelledSubject = "[TELEHEALTH] Appointment Cancelled"
)

const (
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)

const (
	EmailBodyAppointmentBooked    = "Your appointment on %s has been confirmed. Appointment reference: %s."
	EmailBodyAppointmentCancelled = "Your appointment on %s has been cancelled. Appointment reference: %s."
)
