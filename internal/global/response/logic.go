package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

// Error 自定义错误类型，支持错误码、消息、原始错误链和堆栈跟踪
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin,omitempty"`
	// Fields 校验失败时所有缺失必填字段的名称，整体返回而不是逐个报错
	Fields []string `json:"fields,omitempty"`
	// status 对应的 HTTP 状态码
	status int
	// cause 保存原始错误，用于 Unwrap()
	cause error
	// stack 保存堆栈信息
	stack pkgerrors.StackTrace
}

func newError(code int32, status int, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
		status:  status,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 返回错误码
func (e *Error) GetCode() int32 {
	return e.Code
}

// Status 返回对应的 HTTP 状态码
func (e *Error) Status() int {
	if e.status == 0 {
		return 500
	}
	return e.status
}

// Unwrap 返回原始错误，支持 errors.Unwrap()
func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 返回堆栈跟踪，实现 pkg/errors 的 stackTracer 接口
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	// 如果原始错误有堆栈，提取它
	if e.cause != nil {
		type stackTracer interface {
			StackTrace() pkgerrors.StackTrace
		}
		if st, ok := e.cause.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin 向前端返回用于调试的原始错误（仅限 config.ModeDebug 时写入响应）
// 同时保留原始错误链
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	// 确保错误带有堆栈信息
	wrappedErr := ensureStack(err)

	newErr := &Error{
		Code:    e.Code,
		Message: e.Message,
		Fields:  e.Fields,
		Origin:  fmt.Sprintf("%+v", wrappedErr),
		status:  e.status,
		cause:   wrappedErr,
	}

	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := wrappedErr.(stackTracer); ok {
		newErr.stack = st.StackTrace()
	}

	return newErr
}

// WithTips 向前端返回额外的提示信息（config.ModeRelease 也可见）
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + " " + fmt.Sprintf("%v", details),
		Fields:  e.Fields,
		status:  e.status,
		cause:   e.cause,
		stack:   e.stack,
	}
}

// WithFields 附带缺失必填字段名称列表，用于聚合校验错误
func (e *Error) WithFields(fields []string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Fields:  fields,
		status:  e.status,
		cause:   e.cause,
		stack:   e.stack,
	}
}

// ensureStack 确保错误带有堆栈信息
func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
