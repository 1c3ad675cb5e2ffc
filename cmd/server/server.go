package server

import (
	"fmt"
	"log/slog"

	"escort-cms/config"
	"escort-cms/internal/global/cache"
	"escort-cms/internal/global/database"
	"escort-cms/internal/global/httpclient"
	"escort-cms/internal/global/logger"
	"escort-cms/internal/global/middleware"
	"escort-cms/internal/module"
	"escort-cms/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()

	cache.Init()

	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	// 媒体文件直接由静态路由提供
	r.Static(config.Get().Storage.BaseURL, config.Get().Storage.MediaDir)

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
