package field

import (
	"escort-cms/internal/global/jwt"
	"escort-cms/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (f *ModuleField) InitRouter(r *gin.RouterGroup) {
	// 字段定义相关端点以 /field 为前缀
	sessionGroup := r.Group("/field")
	adminGroup := r.Group("/field")

	sessionGroup.Use(middleware.Auth(jwt.RoleAuthor))
	{
		// 注册字段定义列表端点
		sessionGroup.GET("/list", ListFields)

		// 注册布局树端点，供录入表单渲染
		sessionGroup.GET("/layout", GetLayout)
	}
	adminGroup.Use(middleware.Auth(jwt.RoleAdmin))
	{
		// 注册创建字段定义端点
		adminGroup.POST("/create", CreateField)

		// 注册更新字段定义端点
		adminGroup.PUT("/update/:id", UpdateField)

		// 注册批量排序/换分区端点
		adminGroup.PATCH("/reorder", ReorderFields)

		// 注册删除字段定义端点，已有字段值不受影响
		adminGroup.DELETE("/delete/:id", DeleteField)
	}
}
