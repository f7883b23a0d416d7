package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/stretchr/testify/require"
)

// sequenceIDs issues "id-1", "id-2"... in order.
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewFileStorages(config.Files{DataDir: t.TempDir(), PublicDir: t.TempDir()}, nil, logger.Nop())
	require.NoError(t, err)
	return storages
}

func utilsGenerator() IDGenerator {
	return utils.NewUUIDGenerator()
}
