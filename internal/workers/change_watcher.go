package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
)

// ChangeWatcher polls the content stores for edits made to their files
// outside the process. Stores publish the changes they find themselves.
type ChangeWatcher struct {
	syncers  []store.Syncer
	interval time.Duration

	logger *logger.Logger
}

func NewChangeWatcher(syncers []store.Syncer, interval time.Duration, logger *logger.Logger) *ChangeWatcher {
	return &ChangeWatcher{
		syncers:  syncers,
		interval: interval,
		logger:   logger,
	}
}

// Run syncs every store once, then again on every tick, until ctx is done.
func (c *ChangeWatcher) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Int("stores", len(c.syncers)).Msg("change watcher started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.syncAll(ctx)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("change watcher stopped")
			return
		case <-ticker.C:
			c.syncAll(ctx)
		}
	}
}

func (c *ChangeWatcher) syncAll(ctx context.Context) {
	for i, s := range c.syncers {
		if ctx.Err() != nil {
			return
		}
		changed, err := s.Sync(ctx)
		if err != nil {
			c.logger.Err(err).Int("store", i).Msg("error syncing content store")
			continue
		}
		if changed {
			c.logger.Info().Int("store", i).Msg("external content edit detected")
		}
	}
}
