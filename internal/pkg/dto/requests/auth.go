package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshToken struct {
	RefreshToken string `json:"refresh_token" validate:"required,uuid"`
}

type OAuthCallback struct {
	Code  string `validate:"required"`
	State string `validate:"required"`
}
