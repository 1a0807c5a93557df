package imagegen

import (
	"errors"
	"fmt"
)

// Kind discriminates generation failures.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindConfiguration    Kind = "configuration"
	KindProviderHTTP     Kind = "provider_http"
	KindProviderResponse Kind = "provider_response"
	KindUnexpected       Kind = "unexpected"
)

// Error is returned by the validator and by every Generator in this package.
type Error struct {
	Kind    Kind
	Message string
	// StatusCode and Body are only set for KindProviderHTTP.
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindProviderHTTP && e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Message, e.StatusCode, e.Body)
	case e.Kind == KindProviderHTTP:
		return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
	case e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err. Errors that did not originate here are
// reported as KindUnexpected.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return KindUnexpected
}

func validationError(msg string, err error) *Error {
	return &Error{Kind: KindValidation, Message: msg, Err: err}
}

func configurationError(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

func providerHTTPError(status int, body string) *Error {
	return &Error{Kind: KindProviderHTTP, Message: "image provider returned an error", StatusCode: status, Body: body}
}

func providerResponseError(msg string) *Error {
	return &Error{Kind: KindProviderResponse, Message: msg}
}

func unexpectedError(msg string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: msg, Err: err}
}
