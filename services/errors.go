package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures so the transport layer can pick a status code.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindRuleViolation ErrorKind = "rule_violation"
	KindUpstream      ErrorKind = "upstream"
	KindUnconfigured  ErrorKind = "unconfigured"
	KindInternal      ErrorKind = "internal"
)

// Error codes returned to clients.
const (
	CodeCartEmpty           = "CART_EMPTY"
	CodeCartInvalidSubtotal = "CART_INVALID_SUBTOTAL"
	CodeCouponCodeRequired  = "COUPON_CODE_REQUIRED"
	CodeCouponNotFound      = "COUPON_NOT_FOUND"
	CodeCouponInactive      = "COUPON_INACTIVE"
	CodeCouponNotStarted    = "COUPON_NOT_STARTED"
	CodeCouponExpired       = "COUPON_EXPIRED"
	CodeCouponExhausted     = "COUPON_EXHAUSTED"
	CodeCouponMinSpend      = "COUPON_MIN_SPEND"
	CodeCouponServiceScope  = "COUPON_SERVICE_SCOPE"
	CodeCouponCategoryScope = "COUPON_CATEGORY_SCOPE"
	CodeGatewayUnconfigured = "GATEWAY_UNCONFIGURED"
	CodeGatewayFailed       = "GATEWAY_FAILED"
	CodeGatewayNoToken      = "GATEWAY_NO_TOKEN"
	CodeStoreFailure        = "STORE_FAILURE"
	CodeCustomerRequired    = "CUSTOMER_REQUIRED"
)

// EngineError is the single error type returned by the pricing and checkout services.
type EngineError struct {
	Kind    ErrorKind `json:"-"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *EngineError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, code, msg string, err error) *EngineError {
	return &EngineError{Kind: kind, Code: code, Message: msg, Err: err}
}

func Validation(code, msg string) *EngineError {
	return newError(KindValidation, code, msg, nil)
}

func NotFound(code, msg string) *EngineError {
	return newError(KindNotFound, code, msg, nil)
}

func RuleViolation(code, msg string) *EngineError {
	return newError(KindRuleViolation, code, msg, nil)
}

func Upstream(code, msg string, err error) *EngineError {
	return newError(KindUpstream, code, msg, err)
}

func Unconfigured(code, msg string) *EngineError {
	return newError(KindUnconfigured, code, msg, nil)
}

func Internal(msg string, err error) *EngineError {
	return newError(KindInternal, CodeStoreFailure, msg, err)
}

// AsEngineError extracts an EngineError from err, wrapping unknown errors as internal failures.
func AsEngineError(err error) *EngineError {
	if err == nil {
		return nil
	}
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee
	}
	return Internal("unexpected error", err)
}
