package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/events"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/mock"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChangeWatcher_SyncsEveryStoreOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s1 := mock.NewMockSyncer(ctrl)
	s2 := mock.NewMockSyncer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		s1.EXPECT().Sync(gomock.Any()).Return(false, errors.New("disk gone")),
		s2.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
			cancel()
			return true, nil
		}),
	)

	w := NewChangeWatcher([]store.Syncer{s1, s2}, time.Hour, logger.Nop())
	w.Run(ctx)
}

func TestChangeWatcher_SyncsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockSyncer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	s.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return false, nil
	}).Times(3)

	w := NewChangeWatcher([]store.Syncer{s}, time.Millisecond, logger.Nop())
	w.Run(ctx)

	assert.Equal(t, 3, calls)
}

func TestChangeWatcher_StopsBetweenStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	s1 := mock.NewMockSyncer(ctrl)
	s2 := mock.NewMockSyncer(ctrl)
	s1.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
		cancel()
		return false, nil
	})
	// s2 is never synced once the context is done

	w := NewChangeWatcher([]store.Syncer{s1, s2}, time.Hour, logger.Nop())
	w.Run(ctx)
}

// ── end to end over the file stores ──

func TestChangeWatcher_PublishesExternalEdit(t *testing.T) {
	broker := events.NewBroker(32, logger.Nop())
	defer broker.Close()

	cfg := config.Files{DataDir: t.TempDir(), PublicDir: t.TempDir()}
	storages, err := store.NewFileStorages(cfg, broker, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// prime the stores so they know the current ETags
	page, err := storages.Page(models.About)
	require.NoError(t, err)
	page.Read(ctx)

	changes, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		NewWorkers(storages, config.Workers{WatchInterval: 5 * time.Millisecond}, logger.Nop()).Run(ctx)
		close(done)
	}()

	writeFile(t, cfg.DataDir, models.About, `{"title":"Modifié à la main","description":"d","values":[]}`)

	// other stores may publish the defaults they restore on first sync
	timeout := time.After(2 * time.Second)
	for found := false; !found; {
		select {
		case change := <-changes:
			if change.Type == models.About {
				assert.Equal(t, page.ETag(ctx), change.ETag)
				found = true
			}
		case <-timeout:
			t.Fatal("external edit was not published")
		}
	}

	cancel()
	<-done
}

func writeFile(t *testing.T, dir string, ct models.ContentType, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ct.FileName()), []byte(content), 0o644))
}
