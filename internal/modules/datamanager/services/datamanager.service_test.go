package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/seeds"
	"medsms-core/internal/infrastructure/database/sqlite"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

func newTestService(t *testing.T) (*DataManagerService, *datacache.Cache) {
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

	return NewDataManagerService(store, cache, seeds.NewSeedingService(store)), cache
}

func TestImportCollectionCSV(t *testing.T) {
	svc, cache := newTestService(t)

	csvData := "id,name,description,procedureTypeId,duration,slotsAvailable\n" +
		"proc1,Consulta Pediátrica,Avaliação geral,type1,30,100\n" +
		"proc2,Fonoaudiologia,Sessão individual,type2,45,\n"

	count, err := svc.ImportCollection(context.Background(), "procedures", []byte(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	procedures := cache.Snapshot().Procedures
	require.Len(t, procedures, 2)

	assert.Equal(t, 30, procedures[0].Duration)
	require.NotNil(t, procedures[0].SlotsAvailable)
	assert.Equal(t, 100, *procedures[0].SlotsAvailable)

	// Célula vazia de coluna opcional vira campo ausente, não zero
	assert.Nil(t, procedures[1].SlotsAvailable)
}

func TestImportCollectionListFields(t *testing.T) {
	svc, cache := newTestService(t)

	csvData := "id,name,participatingCampaignIds,conditions\n" +
		"p001,Artur Silva,camp1; camp2,TEA;TDAH\n"

	count, err := svc.ImportCollection(context.Background(), "patients", []byte(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	patients := cache.Snapshot().Patients
	require.Len(t, patients, 1)
	assert.Equal(t, []string{"camp1", "camp2"}, patients[0].ParticipatingCampaignIDs)
	assert.Equal(t, []string{"TEA", "TDAH"}, patients[0].Conditions)
}

func TestImportCollectionUpserts(t *testing.T) {
	svc, cache := newTestService(t)
	ctx := context.Background()

	first := "id,name,specialty,crm\ndoct1,Dr. Bruno,Pediatria,CRM/CE 1234\n"
	_, err := svc.ImportCollection(ctx, "doctors", []byte(first))
	require.NoError(t, err)

	second := "id,name,specialty,crm\n" +
		"doct1,Dr. Bruno,Neuropediatria,CRM/CE 1234\n" +
		"doct2,Dra. Carla,Fonoaudiologia,CRM/CE 5678\n"
	count, err := svc.ImportCollection(ctx, "doctors", []byte(second))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	doctors := cache.Snapshot().Doctors
	require.Len(t, doctors, 2)
	assert.Equal(t, "Neuropediatria", doctors[0].Specialty)
}

func TestImportCollectionUnknownCollection(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ImportCollection(context.Background(), "invoices", []byte("id\n1\n"))
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestImportCollectionRequiresID(t *testing.T) {
	svc, cache := newTestService(t)

	csvData := "id,name\nloca1,Sala 1\n,Sala sem id\n"
	_, err := svc.ImportCollection(context.Background(), "locations", []byte(csvData))
	require.Error(t, err)

	var ifErr *apperrors.ImportFormatError
	require.ErrorAs(t, err, &ifErr)
	assert.Contains(t, err.Error(), "linha 3")

	// A importação aborta inteira: nem a linha válida foi aplicada
	assert.Empty(t, cache.Snapshot().Locations)
}

func TestImportCollectionColumnMismatch(t *testing.T) {
	svc, _ := newTestService(t)

	csvData := "id,name\nloca1,Sala 1,coluna extra\n"
	_, err := svc.ImportCollection(context.Background(), "locations", []byte(csvData))
	require.Error(t, err)

	var ifErr *apperrors.ImportFormatError
	assert.ErrorAs(t, err, &ifErr)
}

func TestImportCollectionEmptyFile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ImportCollection(context.Background(), "locations", []byte("id,name\n"))
	require.Error(t, err)

	var ifErr *apperrors.ImportFormatError
	assert.ErrorAs(t, err, &ifErr)
}

func TestImportCollectionInvalidNumber(t *testing.T) {
	svc, _ := newTestService(t)

	csvData := "id,name,duration\nproc1,Consulta,trinta\n"
	_, err := svc.ImportCollection(context.Background(), "procedures", []byte(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trinta")
}

func TestExportImportFullRoundTrip(t *testing.T) {
	svc, cache := newTestService(t)
	ctx := context.Background()

	original := domain.FullDatabase{
		Patients: []domain.Patient{{ID: "p001", Name: "Artur Silva"}},
		Doctors:  []domain.Doctor{{ID: "doct1", Name: "Dr. Bruno"}},
		PriceTableEntries: []domain.PriceTableEntry{
			{ID: "pte-pt01-proc1", PriceTableID: "pt01", ProcedureID: "proc1", Value: 50},
		},
	}
	require.NoError(t, svc.ImportFull(ctx, original))

	exported, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, original.Patients, exported.Patients)
	assert.Equal(t, original.Doctors, exported.Doctors)
	assert.Equal(t, original.PriceTableEntries, exported.PriceTableEntries)
	assert.Empty(t, exported.Appointments)

	// A importação completa substitui tudo: coleções ausentes ficam vazias
	require.NoError(t, svc.ImportFull(ctx, domain.FullDatabase{
		Locations: []domain.Location{{ID: "loca1", Name: "Sala 1"}},
	}))

	snapshot := cache.Snapshot()
	assert.Empty(t, snapshot.Patients)
	assert.Empty(t, snapshot.Doctors)
	require.Len(t, snapshot.Locations, 1)
}

func TestResetRestoresSeedData(t *testing.T) {
	svc, cache := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ImportFull(ctx, domain.FullDatabase{
		Patients: []domain.Patient{{ID: "p999", Name: "Temporário"}},
	}))

	require.NoError(t, svc.Reset(ctx))

	snapshot := cache.Snapshot()
	assert.NotEmpty(t, snapshot.Patients)
	for _, p := range snapshot.Patients {
		assert.NotEqual(t, "p999", p.ID)
	}
	assert.NotEmpty(t, snapshot.Doctors)
	assert.NotEmpty(t, snapshot.Procedures)
}
