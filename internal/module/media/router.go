package media

import (
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleMedia) InitRouter(r *gin.RouterGroup) {
	// 媒体库相关端点以 /media 为前缀
	sessionGroup := r.Group("/media")
	adminGroup := r.Group("/media")

	sessionGroup.Use(middleware.Auth(jwt.RoleAuthor))
	{
		// 注册媒体列表端点，支持分页、排序、搜索和类型过滤
		sessionGroup.GET("/list", ListMedia)
	}
	adminGroup.Use(middleware.Auth(jwt.RoleAdmin))
	{
		// 注册上传端点
		adminGroup.POST("/upload", UploadMedia)

		// 注册从远程 URL 导入端点
		adminGroup.POST("/import", ImportMedia)

		// 注册元数据更新端点
		adminGroup.PUT("/update", UpdateMedia)

		// 注册删除端点
		adminGroup.DELETE("/delete/:name", DeleteMedia)
	}
}
