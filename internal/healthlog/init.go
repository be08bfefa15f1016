package healthlog

import (
	"agrofarm-backend/internal/config"
	"agrofarm-backend/internal/logger"
)

var Logs *Store

func Init(cfg *config.Config) {
	Logs = NewStore(cfg.DataDir)
	if err := Logs.EnsureInitialized(); err != nil {
		logger.L.Fatalf("health log store init failed: %v", err)
	}
	logger.L.Infow("health log store ready", "path", Logs.path)
}
