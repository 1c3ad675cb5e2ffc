package girl

import (
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (g *ModuleGirl) InitRouter(r *gin.RouterGroup) {
	// 档案相关端点以 /girl 为前缀
	sessionGroup := r.Group("/girl")
	adminGroup := r.Group("/girl")

	sessionGroup.Use(middleware.Auth(jwt.RoleAuthor))
	{
		// 注册档案列表端点
		sessionGroup.GET("/list", ListGirls)

		// 注册获取单个档案端点
		sessionGroup.GET("/get/:id", GetGirl)
	}
	adminGroup.Use(middleware.Auth(jwt.RoleAdmin))
	{
		// 注册创建档案端点
		adminGroup.POST("/create", CreateGirl)

		// 注册更新档案端点，支持部分更新
		adminGroup.PATCH("/update/:id", UpdateGirl)

		// 注册删除档案端点，级联删除字段值
		adminGroup.DELETE("/delete/:id", DeleteGirl)

		// 注册导出端点，生成 xlsx
		adminGroup.GET("/export", ExportGirls)
	}
}
