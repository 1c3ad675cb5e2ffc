package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"escort-cms/config"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应结构
type ResponseBody struct {
	Code   int32           `json:"code"`
	Msg    string          `json:"msg"`
	Fields []string        `json:"fields,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Success 返回成功响应，data 最多传一个
func Success(c *gin.Context, data ...any) {
	body := gin.H{
		"code": int32(200),
		"msg":  "success",
	}
	if len(data) > 0 {
		body["data"] = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，HTTP 状态码取自错误定义
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrServerInternal.WithOrigin(err)
	}

	body := gin.H{
		"code": e.Code,
		"msg":  e.Message,
	}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	// 原始错误仅在 debug 模式下暴露给前端
	if e.Origin != "" && config.Get().Mode == config.ModeDebug {
		body["origin"] = e.Origin
	}

	c.Set(ErrorContextKey, e)
	c.JSON(e.Status(), body)
}

// Recovery 捕获 handler 中的 panic，返回统一的 500 响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrServerInternal.WithOrigin(err))
		c.Abort()
	}
}
