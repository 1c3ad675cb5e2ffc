package response

import "net/http"

// 错误码约定：前三位是 HTTP 状态码，后两位是业务序号
var (
	// ErrInvalidRequest 请求参数不合法
	ErrInvalidRequest = newError(40001, http.StatusBadRequest, "请求参数错误")
	// ErrValidation 必填字段校验失败，Fields 中携带所有缺失字段名称
	ErrValidation = newError(40002, http.StatusBadRequest, "必填字段缺失")
	// ErrTokenInvalid 未登录或令牌无效
	ErrTokenInvalid = newError(40100, http.StatusUnauthorized, "登录状态无效")
	// ErrInvalidPassword 密码错误
	ErrInvalidPassword = newError(40101, http.StatusUnauthorized, "密码错误")
	// ErrUnauthorized 已登录但权限不足
	ErrUnauthorized = newError(40300, http.StatusForbidden, "没有操作权限")
	// ErrNotFound 资源不存在
	ErrNotFound = newError(40400, http.StatusNotFound, "资源不存在")
	// ErrDatabase 数据库操作失败，事务内的部分写入已全部回滚
	ErrDatabase = newError(50000, http.StatusInternalServerError, "数据库操作失败")
	// ErrStorage 文件存储操作失败
	ErrStorage = newError(50001, http.StatusInternalServerError, "文件存储操作失败")
	// ErrServerInternal 服务内部错误
	ErrServerInternal = newError(50002, http.StatusInternalServerError, "服务内部错误")
)
