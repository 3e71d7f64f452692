package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
)

const CodeRateLimited = "RATE_LIMITED"

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ResponseError is the body of every failed call. Message is shown to the
// user as is.
type ResponseError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusOK, Response{Data: data, Message: message})
}

func Created(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusCreated, Response{Data: data, Message: message})
}

func Error(w http.ResponseWriter, err error) {
	de, ok := apperr.As(err)
	if !ok {
		JSON(w, http.StatusInternalServerError, ResponseError{
			Message: apperr.Message(err),
			Code:    string(apperr.CodeServer),
		})
		return
	}
	JSON(w, StatusFor(de), ResponseError{
		Message: de.Message,
		Code:    string(de.Code),
	})
}

// StatusFor maps a domain error to the gateway's HTTP status.
//
//	Validation   -> 400
//	Auth         -> 401 (403 for FORBIDDEN)
//	BusinessRule -> 409 (404 for NOT_FOUND, 412 for MISSING_ADDRESS)
//	Network      -> 502
//	Server       -> 502
func StatusFor(de *apperr.DomainError) int {
	switch {
	case errors.Is(de, apperr.ErrMissingAddress):
		return http.StatusPreconditionFailed
	case de.Code == apperr.CodeForbidden:
		return http.StatusForbidden
	case de.Code == apperr.CodeNotFound:
		return http.StatusNotFound
	}

	switch de.Kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindBusinessRule:
		return http.StatusConflict
	case apperr.KindNetwork, apperr.KindServer:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest reports a body or parameter the gateway itself could not read.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, ResponseError{
		Message: message,
		Code:    string(apperr.CodeValidation),
	})
}

func TooManyRequests(w http.ResponseWriter) {
	JSON(w, http.StatusTooManyRequests, ResponseError{
		Message: "Demasiadas solicitudes, intenta de nuevo en un momento",
		Code:    CodeRateLimited,
	})
}
