package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"num_market/pkg/errcodes"
)

var (
	// ErrUpstreamUnavailable сервис номеров ответил не 2xx.
	ErrUpstreamUnavailable = NewError(errcodes.UpstreamUnavailable, "upstream unavailable")
	// ErrMalformedListing ответ не содержит массива data.
	ErrMalformedListing = NewError(errcodes.MalformedListing, "malformed listing response")
)

// AppError ошибка загрузки каталога с кодом.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по коду, поэтому errors.Is(err, ErrMalformedListing)
// срабатывает для любого сообщения с этим кодом.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}

	return e.Code == t.Code
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ошибки, если в цепочке есть AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}
