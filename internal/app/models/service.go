package models

type Service struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Category    string `bson:"category" json:"category"`
	Price       int    `bson:"price" json:"price"`
	Currency    string `bson:"currency" json:"currency"`
	DurationMin int    `bson:"durationMinutes,omitempty" json:"duration_minutes,omitempty"`
	Active      bool   `bson:"active" json:"active"`
}
