// errors/token_errors.go
package errors

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid authentication token")
	ErrTokenExpired    = errors.New("authentication token expired")
	ErrMissingIdentity = errors.New("token carries neither subject nor service identity")
	ErrUnauthorized    = errors.New("unauthorized")
)
