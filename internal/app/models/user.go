package models

type User struct {
	ID       string `bson:"_id,omitempty"`
	Email    string `bson:"email"`
	Name     string `bson:"name"`
	Role     string `bson:"role"`
	Password string `bson:"password"`
	// ProfileReference points at the Medplum profile backing this user,
	// e.g. "Practitioner/123".
	ProfileReference string `bson:"profileReference,omitempty"`
	TimeModel        `bson:",inline"`
}
