// internal/domain/errors.go
package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorKind discriminates the failure taxonomy. Every component normalizes its
// failures into exactly one kind before returning.
type ErrorKind string

const (
	KindValidationFailed  ErrorKind = "ValidationFailed"
	KindConnectionRefused ErrorKind = "ConnectionRefused"
	KindUpstreamError     ErrorKind = "UpstreamError"
	KindUpstreamNon200    ErrorKind = "UpstreamNon200"
	KindParseError        ErrorKind = "ParseError"
	KindResourceNotReady  ErrorKind = "ResourceNotReady"
	KindProviderError     ErrorKind = "ProviderError"
	KindInternal          ErrorKind = "InternalServerError"
)

// Error is the single tagged failure shape shared across the registry, the
// object store adapter and the upload pipeline. Code and Message are the wire
// fields; Body, when set, is an upstream payload to pass through verbatim.
type Error struct {
	Kind       ErrorKind `json:"-"`
	Code       string    `json:"code"`
	Message    string    `json:"message,omitempty"`
	StatusCode int       `json:"-"`
	Body       string    `json:"-"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus maps the error onto an HTTP status for JSON surfacing. Provider
// errors keep the status the provider reported.
func (e *Error) HTTPStatus() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	if e.Kind == KindValidationFailed {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Serialized returns the error as it travels in a redirect query parameter:
// an upstream body verbatim when present, otherwise {"code":...,"message":...}.
func (e *Error) Serialized() string {
	if e.Body != "" {
		return e.Body
	}
	b, err := json.Marshal(e)
	if err != nil {
		return `{"code":"InternalServerError"}`
	}
	return string(b)
}

// Validation reports locally rejected input. Never retried.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidationFailed, Code: code, Message: message, StatusCode: http.StatusBadRequest}
}

// ConnectionRefused reports an unreachable upstream, naming it and its address.
func ConnectionRefused(service, addr string) *Error {
	return &Error{
		Kind:    KindConnectionRefused,
		Code:    "ECONNREFUSED",
		Message: fmt.Sprintf("Could not connect to %s service at %s", service, addr),
	}
}

// Upstream reports a transport-level failure talking to an upstream service.
func Upstream(name, message string) *Error {
	if name == "" {
		name = string(KindUpstreamError)
	}
	return &Error{Kind: KindUpstreamError, Code: name, Message: message}
}

// UpstreamStatus reports a reachable upstream that answered with an error.
// body, when non-empty, is assumed to already be a serialized error and is
// carried verbatim.
func UpstreamStatus(body string) *Error {
	if body == "" {
		return &Error{Kind: KindUpstreamNon200, Code: "InternalServerError"}
	}
	return &Error{Kind: KindUpstreamNon200, Code: "UpstreamError", Body: body}
}

// Parse reports a successful upstream response with an unusable body.
func Parse(message string) *Error {
	return &Error{Kind: KindParseError, Code: "ParseError", Message: message}
}

// NotReady reports a backing store that is still initializing. Not retried.
func NotReady(code, message string) *Error {
	return &Error{Kind: KindResourceNotReady, Code: code, Message: message, StatusCode: http.StatusInternalServerError}
}

// Provider surfaces an object-store failure {statusCode, code, message} verbatim.
func Provider(statusCode int, code, message string) *Error {
	return &Error{Kind: KindProviderError, Code: code, Message: message, StatusCode: statusCode}
}

// Internal is the catch-all for failures with no provider signal.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Code: "InternalServerError", Message: message, StatusCode: http.StatusInternalServerError}
}
