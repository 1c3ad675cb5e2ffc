package test

import (
	"testing"

	"escort-cms/config"
	"escort-cms/internal/global/database"
	"escort-cms/internal/global/httpclient"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Setup 初始化测试环境：注入测试配置和内存数据库
func Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Use(&config.Config{
		Mode: config.ModeDebug,
		Storage: config.Storage{
			MediaDir: t.TempDir(),
			BaseURL:  "/medien",
		},
		JWT: config.JWT{
			AccessSecret: "test-secret",
			AccessExpire: 3600,
		},
	})
	httpclient.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	database.Use(db)
}
