package models

import "time"

type Session struct {
	SessionID        string    `json:"session_id"`
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	ProfileReference string    `json:"profile_reference,omitempty"`
	// Medplum tokens are only present when the session was obtained through
	// the OAuth authorization-code flow.
	MedplumAccessToken  string    `json:"medplum_access_token,omitempty"`
	MedplumRefreshToken string    `json:"medplum_refresh_token,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	ExpiresAt           time.Time `json:"expires_at"`
}
