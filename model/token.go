// model/token.go
package model

import "time"

// Claims identifies either a human principal (Subject) or a calling service
// (ServiceName) together with its permitted scopes. At least one of the two
// identities must be present.
type Claims struct {
	Subject     string    `json:"sub,omitempty"`
	ServiceName string    `json:"service,omitempty"`
	Scopes      []string  `json:"scopes"`
	ExpiresAt   time.Time `json:"exp"`
}

// Token is the response body for token issuance endpoints.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ServiceTokenRequest is the body of POST /token/service.
type ServiceTokenRequest struct {
	ServiceName string `json:"service_name" binding:"required"`
}
