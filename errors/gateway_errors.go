// errors/gateway_errors.go
package errors

import "errors"

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceNotConfigured = errors.New("service not configured")
	ErrUnsupportedMethod    = errors.New("unsupported method")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrInvalidProxyRequest  = errors.New("invalid proxy request")
	ErrInternalServer       = errors.New("internal server error")
)
