package lifecycle

import (
	"agrofarm-backend/internal/config"
	"agrofarm-backend/internal/logger"
)

var Statuses *Store

func Init(cfg *config.Config) {
	Statuses = NewStore(cfg.DataDir)
	if err := Statuses.EnsureInitialized(); err != nil {
		logger.L.Fatalf("lifecycle store init failed: %v", err)
	}
	logger.L.Infow("lifecycle store ready", "path", Statuses.path)
}
