package responses

type CatalogService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Currency    string `json:"currency"`
	DurationMin int    `json:"duration_minutes,omitempty"`
	Active      bool   `json:"active"`
}
