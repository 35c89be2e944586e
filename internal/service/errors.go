package service

import (
	"errors"
	"fmt"
	"net/http"

	"batikin/internal/repository"
)

// ==================== 业务错误 ====================

// ErrorKind 错误类别，决定 HTTP 状态码
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

// HTTPStatus 错误类别对应的状态码
// 上游失败对调用方按 400 处理
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindBadRequest, KindUpstream:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError 返回给调用方的业务错误
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按类别比较，使 errors.Is(err, ErrNotFound) 生效
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind ErrorKind, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// AsAppError 提取业务错误；非业务错误视为内部错误
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: err}
}

// fromRepo 把仓储层错误转换为业务错误
// notFoundMsg 为空时用默认文案
func fromRepo(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "not found"
		}
		return wrapError(KindNotFound, err, notFoundMsg)
	case errors.Is(err, repository.ErrConflict):
		return wrapError(KindConflict, err, "already exists")
	case errors.Is(err, repository.ErrValidation):
		return wrapError(KindBadRequest, err, "invalid request")
	default:
		return wrapError(KindInternal, err, "internal server error")
	}
}

// 类别哨兵，用于 errors.Is 判断
var (
	ErrBadRequest   = &AppError{Kind: KindBadRequest}
	ErrUnauthorized = &AppError{Kind: KindUnauthorized}
	ErrForbidden    = &AppError{Kind: KindForbidden}
	ErrNotFound     = &AppError{Kind: KindNotFound}
	ErrConflict     = &AppError{Kind: KindConflict}
	ErrUpstream     = &AppError{Kind: KindUpstream}
	ErrInternal     = &AppError{Kind: KindInternal}
)
