package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carrega o status HTTP junto com a mensagem de domínio.
// NotFound → 404, Conflict → 409, BadRequest → 400.
type AppError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf(format, args...),
	}
}

func Conflict(format string, args ...interface{}) *AppError {
	return &AppError{
		StatusCode: http.StatusConflict,
		Message:    fmt.Sprintf(format, args...),
	}
}

func BadRequest(format string, args ...interface{}) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf(format, args...),
	}
}

// StatusOf devolve o status HTTP de um erro, ou 500 quando não é um AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound
}

func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusConflict
}

func IsBadRequest(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusBadRequest
}
