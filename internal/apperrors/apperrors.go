// Package apperrors defines the error taxonomy shared by sources and screens.
package apperrors

import (
	"errors"
	"strings"
)

var (
	// ErrConfiguration reports missing or invalid settings.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransport reports network failures and non-success responses.
	ErrTransport = errors.New("transport error")
	// ErrFormat reports a response body that does not have the expected shape.
	ErrFormat = errors.New("format error")
	// ErrValidation reports a request rejected locally before any call.
	ErrValidation = errors.New("validation error")
)

// Kind is a coarse error class used for display and logging.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindConfiguration Kind = "configuration"
	KindTransport     Kind = "transport"
	KindFormat        Kind = "format"
	KindValidation    Kind = "validation"
)

// Classify maps err onto a Kind using the sentinels above.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindUnknown
	}
}

// Message renders err as the single line shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var prefix string
	switch Classify(err) {
	case KindConfiguration:
		prefix = "Configuration problem"
	case KindValidation:
		prefix = "Invalid request"
	case KindFormat:
		prefix = "Unexpected response"
	case KindTransport:
		prefix = "Could not reach the server"
	default:
		prefix = "Something went wrong"
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	return prefix + ": " + msg
}
