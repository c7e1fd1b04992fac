package seeds

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

func TestEnsureSeedDataPopulatesEmptyStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	svc := NewSeedingService(store)
	require.NoError(t, svc.EnsureSeedData(ctx))

	for _, col := range []entitystore.Collection{
		entitystore.Patients,
		entitystore.Doctors,
		entitystore.Procedures,
		entitystore.PriceTables,
		entitystore.Occurrences,
	} {
		count, err := store.Count(ctx, col)
		require.NoError(t, err)
		assert.Positive(t, count, "coleção %s deveria ter sido semeada", col)
	}
}

func TestEnsureSeedDataSkipsWhenPatientsExist(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// A coleção de pacientes é a sentinela: qualquer registro nela
	// desativa o seeding inteiro
	require.NoError(t, store.Put(ctx, entitystore.Patients,
		domain.Patient{ID: "p001", Name: "Artur Silva"}))

	svc := NewSeedingService(store)
	require.NoError(t, svc.EnsureSeedData(ctx))

	doctors, err := store.Count(ctx, entitystore.Doctors)
	require.NoError(t, err)
	assert.Zero(t, doctors)

	patients, err := store.Count(ctx, entitystore.Patients)
	require.NoError(t, err)
	assert.Equal(t, 1, patients)
}

func TestCheckSeedDataExists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	svc := NewSeedingService(store)

	status, err := svc.CheckSeedDataExists(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsComplete())

	require.NoError(t, svc.SeedAll(ctx))

	status, err = svc.CheckSeedDataExists(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsComplete())
}

func TestDefaultPriceEntriesReferenceSeededTables(t *testing.T) {
	tables := make(map[string]bool, len(DefaultPriceTables))
	for _, table := range DefaultPriceTables {
		tables[table.ID] = true
	}
	procedures := make(map[string]bool, len(DefaultProcedures))
	for _, proc := range DefaultProcedures {
		procedures[proc.ID] = true
	}

	for _, entry := range DefaultPriceTableEntries {
		assert.True(t, tables[entry.PriceTableID],
			"entrada %s aponta para tabela inexistente", entry.ID)
		assert.True(t, procedures[entry.ProcedureID],
			"entrada %s aponta para procedimento inexistente", entry.ID)
	}
}
