// Package scheduler runs the nightly backup of the JSON file stores.
package scheduler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"agrofarm-backend/internal/config"
	"agrofarm-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// the file stores under cfg.DataDir that get copied each night
var storeFiles = []string{
	"stock.json",
	"sales.json",
	"health_logs.json",
	"animal_status.json",
}

const keepBackups = 14

type Scheduler struct {
	cron *cron.Cron
	cfg  *config.Config
}

func New(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		cfg:  cfg,
	}
}

// Start registers the backup job and starts the cron loop.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(s.cfg.BackupCron, s.runBackup); err != nil {
		logger.L.Errorw("backup job scheduling failed", "spec", s.cfg.BackupCron, "error", err)
		return
	}
	s.cron.Start()
	logger.L.Infow("backup scheduler started", "spec", s.cfg.BackupCron)
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.L.Info("backup scheduler stopped")
}

// runBackup copies each store file to backups/<name>.<timestamp>.json and
// prunes old copies. A missing store file is skipped, not an error.
func (s *Scheduler) runBackup() {
	backupDir := filepath.Join(s.cfg.DataDir, "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		logger.L.Errorw("backup dir creation failed", "dir", backupDir, "error", err)
		return
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	for _, name := range storeFiles {
		src := filepath.Join(s.cfg.DataDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}

		base := strings.TrimSuffix(name, ".json")
		dst := filepath.Join(backupDir, fmt.Sprintf("%s.%s.json", base, stamp))
		if err := copyFile(src, dst); err != nil {
			logger.L.Errorw("store backup failed", "store", name, "error", err)
			continue
		}

		if err := pruneBackups(backupDir, base); err != nil {
			logger.L.Warnw("backup pruning failed", "store", name, "error", err)
		}
	}
	logger.L.Infow("store backup completed", "stamp", stamp)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// pruneBackups keeps the newest keepBackups copies of one store and removes
// the rest. The timestamp in the name sorts lexicographically.
func pruneBackups(backupDir, base string) error {
	matches, err := filepath.Glob(filepath.Join(backupDir, base+".*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= keepBackups {
		return nil
	}

	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-keepBackups] {
		if err := os.Remove(stale); err != nil {
			return err
		}
	}
	return nil
}
