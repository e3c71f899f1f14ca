package requests

type SearchInvoice struct {
	Patient    string
	Status     string `validate:"omitempty,oneof=draft issued balanced cancelled entered-in-error"`
	Pagination *Pagination
}
