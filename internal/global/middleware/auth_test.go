package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/response"
	"escort-cms/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doAuth(t *testing.T, minRoleID int, header string) response.ResponseBody {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	Auth(minRoleID)(c)

	var resp response.ResponseBody
	if w.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	} else if !c.IsAborted() {
		// 中间件放行时没有响应体
		resp.Code = 200
	}
	return resp
}

func TestAuthMissingToken(t *testing.T) {
	test.Setup(t)

	resp := doAuth(t, jwt.RoleAuthor, "")
	test.ErrorEqual(t, response.ErrTokenInvalid, resp)

	resp = doAuth(t, jwt.RoleAuthor, "Basic abc")
	test.ErrorEqual(t, response.ErrTokenInvalid, resp)

	resp = doAuth(t, jwt.RoleAuthor, "Bearer not-a-token")
	test.ErrorEqual(t, response.ErrTokenInvalid, resp)
}

func TestAuthRoleGate(t *testing.T) {
	test.Setup(t)

	authorToken := jwt.CreateToken(jwt.Payload{UserID: 1, Email: "a@example.com", RoleID: jwt.RoleAuthor})
	adminToken := jwt.CreateToken(jwt.Payload{UserID: 2, Email: "b@example.com", RoleID: jwt.RoleAdmin})

	// 普通用户通过最低门槛
	resp := doAuth(t, jwt.RoleAuthor, "Bearer "+authorToken)
	test.NoError(t, resp)

	// 写操作要求管理员
	resp = doAuth(t, jwt.RoleAdmin, "Bearer "+authorToken)
	test.ErrorEqual(t, response.ErrUnauthorized, resp)

	resp = doAuth(t, jwt.RoleAdmin, "Bearer "+adminToken)
	test.NoError(t, resp)
}
