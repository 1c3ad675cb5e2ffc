package media

import (
	"log/slog"

	"escort-cms/config"
	"escort-cms/internal/global/logger"
	"escort-cms/internal/global/mediastore"
)

var (
	log   *slog.Logger
	store *mediastore.Store
)

type ModuleMedia struct{}

func (m *ModuleMedia) GetName() string {
	return "Media"
}

func (m *ModuleMedia) Init() {
	log = logger.New("Media")
	store = mediastore.New(config.Get().Storage.MediaDir, config.Get().Storage.BaseURL)
}
