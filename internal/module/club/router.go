package club

import (
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleClub) InitRouter(r *gin.RouterGroup) {
	// 场馆相关端点以 /club 为前缀；列表和详情对外公开
	publicGroup := r.Group("/club")
	adminGroup := r.Group("/club")

	{
		// 注册场馆列表端点
		publicGroup.GET("/list", ListClubs)

		// 注册场馆详情端点
		publicGroup.GET("/get/:id", GetClub)
	}
	adminGroup.Use(middleware.Auth(jwt.RoleAdmin))
	{
		// 注册创建场馆端点
		adminGroup.POST("/create", CreateClub)

		// 注册更新场馆端点
		adminGroup.PATCH("/update/:id", UpdateClub)

		// 注册删除场馆端点
		adminGroup.DELETE("/delete/:id", DeleteClub)

		// 注册导出端点，生成 xlsx
		adminGroup.GET("/export", ExportClubs)
	}
}
