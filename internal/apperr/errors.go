package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindNetwork Kind = iota + 1
	KindValidation
	KindAuth
	KindBusinessRule
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindBusinessRule:
		return "business_rule"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

type Code string

const (
	CodeNetwork            Code = "NETWORK_ERROR"
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeBusinessRule       Code = "BUSINESS_RULE"
	CodeServer             Code = "SERVER_ERROR"
	CodeInvalidQuantity    Code = "INVALID_QUANTITY"
	CodeInvalidCartItem    Code = "INVALID_CART_ITEM"
	CodeMissingVariant     Code = "MISSING_VARIANT"
	CodeMissingProduct     Code = "MISSING_PRODUCT"
	CodeAddItemRejected    Code = "ADD_ITEM_REJECTED"
	CodeMissingAddress     Code = "MISSING_ADDRESS"
	CodeCheckoutInProgress Code = "CHECKOUT_IN_PROGRESS"
	CodeOrderCancelled     Code = "ORDER_CANCELLED"
	CodeInvalidOrderStatus Code = "INVALID_ORDER_STATUS"
)

// DomainError is the only error type the services hand to callers.
// Error returns Message untouched so backend text reaches the user verbatim.
type DomainError struct {
	Kind    Kind
	Code    Code
	Op      Op
	Message string
	// Status is the backend HTTP status, zero when no response was received.
	Status int
	Cause  error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches on Code so sentinels work with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *DomainError) String() string {
	return fmt.Sprintf("%s %s [%s/%s]: %s", e.Op, e.Kind, e.Code, http.StatusText(e.Status), e.Message)
}

// WithCode returns a copy of e carrying code.
func (e *DomainError) WithCode(code Code) *DomainError {
	cp := *e
	cp.Code = code
	return &cp
}

func New(kind Kind, code Code, op Op, msg string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Op:      op,
		Message: msg,
	}
}

func Validation(op Op, code Code, msg string) *DomainError {
	return New(KindValidation, code, op, msg)
}

func BusinessRule(op Op, code Code, msg string) *DomainError {
	return New(KindBusinessRule, code, op, msg)
}

// Network is used when the backend could not be reached at all.
func Network(op Op, cause error) *DomainError {
	return &DomainError{
		Kind:    KindNetwork,
		Code:    CodeNetwork,
		Op:      op,
		Message: FallbackMessage(op),
		Cause:   cause,
	}
}

// Server is used when a 2xx body cannot be decoded.
func Server(op Op, status int, cause error) *DomainError {
	return &DomainError{
		Kind:    KindServer,
		Code:    CodeServer,
		Op:      op,
		Message: FallbackMessage(op),
		Status:  status,
		Cause:   cause,
	}
}

// FromResponse classifies a non-2xx backend response.
// An empty backend message falls back to the operation's localized text.
func FromResponse(op Op, status int, backendMsg string) *DomainError {
	msg := backendMsg
	if msg == "" {
		msg = FallbackMessage(op)
	}
	e := &DomainError{
		Op:      op,
		Message: msg,
		Status:  status,
	}
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		e.Kind, e.Code = KindValidation, CodeValidation
	case status == http.StatusUnauthorized:
		e.Kind, e.Code = KindAuth, CodeUnauthenticated
	case status == http.StatusForbidden:
		e.Kind, e.Code = KindAuth, CodeForbidden
	case status == http.StatusNotFound:
		e.Kind, e.Code = KindBusinessRule, CodeNotFound
	case status >= 500:
		e.Kind, e.Code = KindServer, CodeServer
	default:
		e.Kind, e.Code = KindBusinessRule, CodeBusinessRule
	}
	return e
}

func As(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if de, ok := As(err); ok {
		return de.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the user-facing text of err, or the generic fallback.
func Message(err error) string {
	if de, ok := As(err); ok {
		return de.Message
	}
	return genericFallback
}
