package girl

import (
	"escort-cms/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleGirl struct{}

func (g *ModuleGirl) GetName() string {
	return "Girl"
}

func (g *ModuleGirl) Init() {
	log = logger.New("Girl")
}
