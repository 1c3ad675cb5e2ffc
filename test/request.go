package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"escort-cms/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest 直接调用 handler，请求体序列化为 JSON
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) response.ResponseBody {
	return DoRequestParams(t, handlerFunc, request, nil)
}

// DoRequestParams 带路径参数调用 handler
func DoRequestParams(t *testing.T, handlerFunc gin.HandlerFunc, request any, params map[string]string) response.ResponseBody {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	for key, value := range params {
		c.Params = append(c.Params, gin.Param{Key: key, Value: value})
	}
	handlerFunc(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// DoRequestQuery 带查询串调用 handler，用于列表类端点
func DoRequestQuery(t *testing.T, handlerFunc gin.HandlerFunc, query string) response.ResponseBody {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test?"+query, nil)
	handlerFunc(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// DecodeData 将响应 data 反序列化到 dest
func DecodeData(t *testing.T, resp response.ResponseBody, dest any) {
	require.NoError(t, json.Unmarshal(resp.Data, dest))
}
