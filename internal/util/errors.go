// internal/util/errors.go
// Definisi error aplikasi standar + mapping ke HTTP status

package util

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string // e.g., "bad_input", "not_found", "internal"
	Message string
	Err     error
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e AppError) Unwrap() error { return e.Err }

// HTTPStatus memetakan kode error ke status HTTP.
func (e AppError) HTTPStatus() int {
	switch e.Code {
	case "bad_input":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "unavailable":
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func BadInput(msg string) AppError    { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError    { return AppError{Code: "not_found", Message: msg} }
func Internal(msg string) AppError    { return AppError{Code: "internal", Message: msg} }
func Unavailable(msg string) AppError { return AppError{Code: "unavailable", Message: msg} }

// Wrap membungkus err dengan kode tertentu, pesan diambil dari err.
func Wrap(code string, err error) AppError {
	return AppError{Code: code, Message: err.Error(), Err: err}
}

// AsAppError: kalau err bukan AppError, dianggap internal.
func AsAppError(err error) AppError {
	var ae AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Wrap("internal", err)
}
