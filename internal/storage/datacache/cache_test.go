package datacache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/sqlite"
	"medsms-core/internal/storage/entitystore"
)

func newTestStore(t *testing.T) *entitystore.Store {
	t.Helper()

	client, err := sqlite.NewClient(&sqlite.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	store := entitystore.NewStore(entitystore.NewSQLiteDriver(client))
	require.NoError(t, store.Init(context.Background()))
	return store
}

func TestCacheLoadMarksReady(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, entitystore.Doctors, domain.Doctor{ID: "doct1", Name: "Dr. Bruno"}))

	cache := NewCache(store)
	assert.False(t, cache.Ready())

	require.NoError(t, cache.Load(ctx))
	assert.True(t, cache.Ready())

	snapshot := cache.Snapshot()
	require.Len(t, snapshot.Doctors, 1)
	assert.Equal(t, "Dr. Bruno", snapshot.Doctors[0].Name)
}

func TestCacheReloadIsSelective(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, entitystore.Doctors, domain.Doctor{ID: "doct1", Name: "Dr. Bruno"}))
	require.NoError(t, store.Put(ctx, entitystore.Locations, domain.Location{ID: "loca1", Name: "Sala 1"}))

	cache := NewCache(store)
	require.NoError(t, cache.Load(ctx))

	// Escrever nas duas coleções, mas recarregar só uma
	require.NoError(t, store.Put(ctx, entitystore.Doctors, domain.Doctor{ID: "doct2", Name: "Dra. Carla"}))
	require.NoError(t, store.Put(ctx, entitystore.Locations, domain.Location{ID: "loca2", Name: "Sala 2"}))

	require.NoError(t, cache.Reload(ctx, entitystore.Doctors))

	snapshot := cache.Snapshot()
	assert.Len(t, snapshot.Doctors, 2)
	assert.Len(t, snapshot.Locations, 1, "coleção não recarregada deve manter a visão anterior")
}

func TestCacheSnapshotSurvivesReload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, entitystore.Procedures, domain.Procedure{ID: "proc1", Name: "Consulta"}))

	cache := NewCache(store)
	require.NoError(t, cache.Load(ctx))

	before := cache.Snapshot()

	require.NoError(t, store.Put(ctx, entitystore.Procedures, domain.Procedure{ID: "proc2", Name: "Exame"}))
	require.NoError(t, cache.Reload(ctx, entitystore.Procedures))

	// O snapshot anterior não é mutado pela recarga
	assert.Len(t, before.Procedures, 1)
	assert.Len(t, cache.Snapshot().Procedures, 2)
}
