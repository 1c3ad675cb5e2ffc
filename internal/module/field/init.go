package field

import (
	"escort-cms/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleField struct{}

func (f *ModuleField) GetName() string {
	return "Field"
}

func (f *ModuleField) Init() {
	log = logger.New("Field")
}
