package fhir_dto

type Invoice struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Meta         *Meta             `json:"meta,omitempty"`
	Identifier   []Identifier      `json:"identifier,omitempty"`
	Status       string            `json:"status"`
	Subject      *Reference        `json:"subject,omitempty"`
	Recipient    *Reference        `json:"recipient,omitempty"`
	Date         string            `json:"date,omitempty"`
	LineItem     []InvoiceLineItem `json:"lineItem,omitempty"`
	TotalNet     *Money            `json:"totalNet,omitempty"`
	TotalGross   *Money            `json:"totalGross,omitempty"`
	PaymentTerms string            `json:"paymentTerms,omitempty"`
	Note         []Annotation      `json:"note,omitempty"`
}

type InvoiceLineItem struct {
	Sequence              int              `json:"sequence,omitempty"`
	ChargeItemCodeableConcept *CodeableConcept `json:"chargeItemCodeableConcept,omitempty"`
	PriceComponent        []PriceComponent `json:"priceComponent,omitempty"`
}

type PriceComponent struct {
	Type   string `json:"type"`
	Factor float64 `json:"factor,omitempty"`
	Amount *Money `json:"amount,omitempty"`
}
