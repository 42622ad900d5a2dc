// model/proxy.go
package model

import (
	"fmt"
	"strings"
)

// Method is the set of HTTP verbs the generic proxy accepts. Anything else is
// rejected at the boundary before a network call is attempted.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod normalizes and validates a method string.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(s)); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported method: %s", s)
	}
}

// HasBody reports whether the verb carries a JSON payload downstream.
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut
}

// ProxyRequest describes one downstream call. Constructed per request and
// consumed exactly once by the dispatcher.
type ProxyRequest struct {
	Service  string                 `json:"service" binding:"required"`
	Endpoint string                 `json:"endpoint"`
	Method   string                 `json:"method"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Params   map[string]string      `json:"params,omitempty"`
	Headers  map[string]string      `json:"headers,omitempty"`
}

// ProxyResponse is the uniform envelope returned for every dispatched call.
// Content is the JSON-decoded body when the downstream responds with JSON,
// otherwise the raw response text. The downstream status code is passed
// through unchanged.
type ProxyResponse struct {
	StatusCode int               `json:"status_code"`
	Content    interface{}       `json:"content"`
	Headers    map[string]string `json:"headers"`
}
