// Package apperr carries the error taxonomy shared by services and the HTTP layer.
// Every Error knows the HTTP status it maps to; anything else is treated as internal.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Violation 单个字段的校验失败
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Code       int
	Msg        string
	Err        error
	Violations []Violation
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &Error{Code: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Code: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Code: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Error{Code: http.StatusNotFound, Msg: msg} }

// Conflict 与 BadRequest 同为 400，只是语义上区分（如用户名重复）
func Conflict(msg string) error { return &Error{Code: http.StatusBadRequest, Msg: msg} }

// Internal 对外只暴露通用文案，原始错误留给日志
func Internal(msg string, err error) error {
	return &Error{Code: http.StatusInternalServerError, Msg: msg, Err: err}
}

// Validation 把字段错误拼成 "field: message, field: message"
func Validation(vs []Violation) error {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return &Error{Code: http.StatusBadRequest, Msg: strings.Join(parts, ", "), Violations: vs}
}

// As 取出 *Error；不是则返回 nil
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// StatusOf 未知错误一律 500
func StatusOf(err error) int {
	if ae := As(err); ae != nil {
		return ae.Code
	}
	return http.StatusInternalServerError
}
