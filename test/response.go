package test

import (
	"testing"

	"escort-cms/internal/global/response"

	"github.com/stretchr/testify/require"
)

// NoError 断言响应为成功
func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code, "msg: %s", resp.Msg)
}

// ErrorEqual 断言响应的业务错误码与预期一致
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code, "msg: %s", resp.Msg)
}
