package setting

import (
	"escort-cms/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleSetting struct{}

func (m *ModuleSetting) GetName() string {
	return "Setting"
}

func (m *ModuleSetting) Init() {
	log = logger.New("Setting")
}
