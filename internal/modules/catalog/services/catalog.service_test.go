package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/sqlite"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

func newTestService(t *testing.T) *CatalogService {
	t.Helper()
	ctx := context.Background()

	client, err := sqlite.NewClient(&sqlite.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	store := entitystore.NewStore(entitystore.NewSQLiteDriver(client))
	require.NoError(t, store.Init(ctx))

	cache := datacache.NewCache(store)
	require.NoError(t, cache.Load(ctx))

	return NewCatalogService(store, cache)
}

func TestSaveDoctorGeneratesID(t *testing.T) {
	svc := newTestService(t)

	doctor, err := svc.SaveDoctor(context.Background(), domain.Doctor{
		Name:      "Dr. Bruno",
		Specialty: "Pediatria",
		CRM:       "CRM/CE 1234",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doctor.ID, "doct"))

	doctors := svc.ListDoctors()
	require.Len(t, doctors, 1)
	assert.Equal(t, doctor, doctors[0])
}

func TestSaveDoctorKeepsProvidedID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveDoctor(ctx, domain.Doctor{ID: "doct1", Name: "Dr. Bruno"})
	require.NoError(t, err)

	// Salvar com o mesmo id atualiza em vez de duplicar
	updated, err := svc.SaveDoctor(ctx, domain.Doctor{ID: "doct1", Name: "Dr. Bruno", Specialty: "Neuropediatria"})
	require.NoError(t, err)
	assert.Equal(t, "doct1", updated.ID)

	doctors := svc.ListDoctors()
	require.Len(t, doctors, 1)
	assert.Equal(t, "Neuropediatria", doctors[0].Specialty)
}

func TestSaveRequiresName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveDoctor(ctx, domain.Doctor{Name: "  "})
	assert.Error(t, err)

	_, err = svc.SaveLocation(ctx, domain.Location{})
	assert.Error(t, err)

	_, err = svc.SaveMunicipality(ctx, domain.Municipality{})
	assert.Error(t, err)

	_, err = svc.SaveCampaign(ctx, domain.HealthCampaign{})
	assert.Error(t, err)
}

func TestSaveProcedureRejectsNegativeDuration(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveProcedure(context.Background(), domain.Procedure{
		Name:     "Consulta",
		Duration: -10,
	})
	require.Error(t, err)
	assert.Equal(t, "A duração não pode ser negativa.", err.Error())
}

func TestSaveProcedure(t *testing.T) {
	svc := newTestService(t)

	proc, err := svc.SaveProcedure(context.Background(), domain.Procedure{
		Name:            "Consulta Pediátrica",
		ProcedureTypeID: "type1",
		Duration:        30,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(proc.ID, "proc"))
	assert.Len(t, svc.ListProcedures(), 1)
}

func TestDeleteEntity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loc, err := svc.SaveLocation(ctx, domain.Location{Name: "Sala 1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLocation(ctx, loc.ID))
	assert.Empty(t, svc.ListLocations())

	assert.Error(t, svc.DeleteLocation(ctx, "  "))
}

func TestSaveOccurrenceAndMunicipality(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	occ, err := svc.SaveOccurrence(ctx, domain.Occurrence{Name: domain.OccurrencePatientArrived})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(occ.ID, "occu"))

	mun, err := svc.SaveMunicipality(ctx, domain.Municipality{Name: "Sobral", HealthSecretariat: "SMS Sobral"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mun.ID, "muni"))
}
