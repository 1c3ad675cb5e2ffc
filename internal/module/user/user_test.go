package user

import (
	"testing"

	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/response"
	"escort-cms/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleUser{}).Init()
}

func TestRegisterAndLogin(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, Register, RegisterReq{
		Email:    "admin@example.com",
		Password: "geheim123",
		Name:     "Admin",
		RoleID:   jwt.RoleAdmin,
	})
	test.NoError(t, resp)

	resp = test.DoRequest(t, Login, LoginReq{Email: "admin@example.com", Password: "geheim123"})
	test.NoError(t, resp)
	var data struct {
		Token  string `json:"token"`
		Email  string `json:"email"`
		RoleID int    `json:"role_id"`
	}
	test.DecodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	require.Equal(t, "admin@example.com", data.Email)
	require.Equal(t, jwt.RoleAdmin, data.RoleID)

	// 令牌可以解析回原始载荷
	claims, ok := jwt.ParseToken(data.Token)
	require.True(t, ok)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, jwt.RoleAdmin, claims.RoleID)
}

func TestLoginWrongPassword(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, Register, RegisterReq{
		Email:    "anna@example.com",
		Password: "geheim123",
		RoleID:   jwt.RoleAuthor,
	})
	test.NoError(t, resp)

	resp = test.DoRequest(t, Login, LoginReq{Email: "anna@example.com", Password: "falsch123"})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)

	resp = test.DoRequest(t, Login, LoginReq{Email: "fehlt@example.com", Password: "geheim123"})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestRegisterValidation(t *testing.T) {
	setup(t)

	// 密码太短
	resp := test.DoRequest(t, Register, RegisterReq{Email: "a@example.com", Password: "kurz", RoleID: jwt.RoleAuthor})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	// 未知角色
	resp = test.DoRequest(t, Register, RegisterReq{Email: "a@example.com", Password: "geheim123", RoleID: 7})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	// 邮箱重复
	resp = test.DoRequest(t, Register, RegisterReq{Email: "a@example.com", Password: "geheim123", RoleID: jwt.RoleAuthor})
	test.NoError(t, resp)
	resp = test.DoRequest(t, Register, RegisterReq{Email: "a@example.com", Password: "geheim123", RoleID: jwt.RoleAuthor})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
