package ledger

import (
	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/config"
	"agrofarm-backend/internal/logger"
)

var (
	Stock *StockLedger
	Sales *SalesLedger
)

// Init creates the package-level ledgers and seeds the stock file from the
// product catalog. Called once from main, after config load.
func Init(cfg *config.Config) {
	Stock = NewStockLedger(cfg.DataDir)
	Sales = NewSalesLedger(cfg.DataDir)

	if err := Stock.EnsureInitialized(catalog.Keys(), cfg.DefaultStock); err != nil {
		logger.L.Fatalf("stock ledger init failed: %v", err)
	}
	if err := Sales.EnsureInitialized(); err != nil {
		logger.L.Fatalf("sales ledger init failed: %v", err)
	}

	logger.L.Infow("ledgers ready", "data_dir", cfg.DataDir, "default_stock", cfg.DefaultStock)
}
