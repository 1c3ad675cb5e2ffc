package setting

import (
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleSetting) InitRouter(r *gin.RouterGroup) {
	// 站点设置端点以 /setting 为前缀
	sessionGroup := r.Group("/setting")
	adminGroup := r.Group("/setting")

	sessionGroup.Use(middleware.Auth(jwt.RoleAuthor))
	{
		// 注册读取设置端点，首次访问时落库默认值
		sessionGroup.GET("/get", GetSetting)
	}
	adminGroup.Use(middleware.Auth(jwt.RoleAdmin))
	{
		// 注册更新设置端点
		adminGroup.POST("/update", UpdateSetting)
	}
}
