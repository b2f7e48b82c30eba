package dto

import "time"

// IssueTokenResponse contains the issued bearer token. The token is only returned once.
type IssueTokenResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
