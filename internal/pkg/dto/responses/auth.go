package responses

type Login struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         *UserProfile `json:"user"`
}

type RefreshToken struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type UserProfile struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	ProfileReference string `json:"profile_reference,omitempty"`
}

type TokenValidation struct {
	Valid bool         `json:"valid"`
	User  *UserProfile `json:"user,omitempty"`
}
