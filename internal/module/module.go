package module

import (
	"escort-cms/internal/module/club"
	"escort-cms/internal/module/field"
	"escort-cms/internal/module/girl"
	"escort-cms/internal/module/media"
	"escort-cms/internal/module/ping"
	"escort-cms/internal/module/setting"
	"escort-cms/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&field.ModuleField{},
		&girl.ModuleGirl{},
		&club.ModuleClub{},
		&media.ModuleMedia{},
		&setting.ModuleSetting{},
	})
}
