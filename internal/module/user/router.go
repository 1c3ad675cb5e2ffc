package user

import (
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	// 用户相关端点以 /user 为前缀
	publicGroup := r.Group("/user")
	sessionGroup := r.Group("/user")
	adminGroup := r.Group("/user")

	{
		// 注册登录端点
		publicGroup.POST("/login", Login)
	}
	sessionGroup.Use(middleware.Auth(jwt.RoleAuthor))
	{
		// 注册获取当前用户信息端点
		sessionGroup.GET("/info", Info)
	}
	adminGroup.Use(middleware.Auth(jwt.RoleAdmin))
	{
		// 注册创建后台用户端点
		adminGroup.POST("/register", Register)
	}
}
