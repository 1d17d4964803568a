package errors

import (
	stderrors "errors"
	"net/http"

	apperrors "video-transcriber/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindBadRequest ErrorKind = "bad_request"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

const genericMessage = "Internal server error"

// APIError is the error body returned by every endpoint: {"error": message}
type APIError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error" example:"Video not found"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	if message == "" {
		message = genericMessage
	}
	return &APIError{Kind: KindInternal, Message: message}
}

// FromError maps a domain error to its API form. The message is the
// outermost tagged error's text, which for pipeline failures includes the
// cause (for example "failed to fetch video: 404 Not Found").
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var appErr *apperrors.Error
	if !stderrors.As(err, &appErr) {
		return NewInternalError(err.Error())
	}

	message := appErr.Error()
	switch appErr.Kind() {
	case apperrors.KindInvalid:
		return &APIError{Kind: KindBadRequest, Message: message}
	case apperrors.KindNotFound:
		return &APIError{Kind: KindNotFound, Message: message}
	case apperrors.KindConflict:
		return &APIError{Kind: KindConflict, Message: message}
	default:
		return NewInternalError(message)
	}
}
