package errors

import (
	stdErrors "errors"
	"fmt"
)

type ErrorCode string

const (
	ErrDB            ErrorCode = "some error in storage layer"
	ErrNoDataFound   ErrorCode = "no data found"
	ErrAlreadyExists ErrorCode = "already exists"

	ErrValidation ErrorCode = "validation failed"
	ErrUpstream   ErrorCode = "admin api request failed"

	ErrUnauthorized   ErrorCode = "Unauthorized"
	ErrSessionExpired ErrorCode = "session expired"

	ErrForbidden ErrorCode = "access is forbidden"
)

type domainError struct {
	error
	errorCode ErrorCode
}

func (e domainError) Error() string {
	msg := e.error.Error()
	if msg == "" {
		return string(e.errorCode)
	}
	return fmt.Sprintf("%s: %s", msg, e.errorCode)
}

func (e domainError) Unwrap() error {
	return e.error
}

func Unwrap(err error) error {
	var dErr domainError
	if stdErrors.As(err, &dErr) {
		return stdErrors.Unwrap(dErr.error)
	}

	return stdErrors.Unwrap(err)
}

func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var dErr domainError
	if stdErrors.As(err, &dErr) {
		return dErr.errorCode
	}

	return ""
}

// Message returns the human readable part of a domain error, without the code.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var dErr domainError
	if stdErrors.As(err, &dErr) {
		return dErr.error.Error()
	}

	return err.Error()
}

func NewDomainError(errorCode ErrorCode, format string, args ...interface{}) error {
	return domainError{
		error:     fmt.Errorf(format, args...),
		errorCode: errorCode,
	}
}

func WrapIntoDomainError(err error, errorCode ErrorCode, msg string) error {
	return domainError{
		error:     fmt.Errorf("%s: [%w]", msg, err),
		errorCode: errorCode,
	}
}
