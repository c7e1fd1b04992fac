package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/sqlite"
	"medsms-core/internal/modules/reports/dto"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

func intPtr(n int) *int { return &n }

// newTestService monta um cenário com dois municípios, dois médicos e
// seis agendamentos, um deles com referência pendurada (paciente
// inexistente) que deve ficar fora de todas as contagens.
func newTestService(t *testing.T) *ReportsService {
	t.Helper()
	ctx := context.Background()

	client, err := sqlite.NewClient(&sqlite.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	store := entitystore.NewStore(entitystore.NewSQLiteDriver(client))
	require.NoError(t, store.Init(ctx))

	require.NoError(t, store.BulkPut(ctx, entitystore.Municipalities, []domain.Municipality{
		{ID: "muni1", Name: "Sobral"},
		{ID: "muni2", Name: "Fortaleza"},
	}))
	require.NoError(t, store.BulkPut(ctx, entitystore.ProcedureTypes, []domain.ProcedureType{
		{ID: "type1", Name: "Consulta"},
		{ID: "type2", Name: "Exame"},
	}))
	require.NoError(t, store.BulkPut(ctx, entitystore.Procedures, []domain.Procedure{
		{ID: "proc1", Name: "Consulta Pediátrica", ProcedureTypeID: "type1", SlotsAvailable: intPtr(10)},
		{ID: "proc2", Name: "Audiometria", ProcedureTypeID: "type2"},
	}))
	require.NoError(t, store.BulkPut(ctx, entitystore.Doctors, []domain.Doctor{
		{ID: "doct1", Name: "Dr. Bruno"},
		{ID: "doct2", Name: "Dra. Carla"},
	}))
	require.NoError(t, store.BulkPut(ctx, entitystore.Patients, []domain.Patient{
		{ID: "p001", Name: "Artur Silva", MunicipalityID: "muni1", DateOfBirth: "2015-03-20"},
		{ID: "p002", Name: "Beatriz Costa", MunicipalityID: "muni2", DateOfBirth: "1990-01-01"},
		{ID: "p003", Name: "Carlos Souza", MunicipalityID: "muni1"},
	}))
	require.NoError(t, store.BulkPut(ctx, entitystore.PriceTableEntries, []domain.PriceTableEntry{
		// Só a tabela particular (pt02) conta como referência de receita
		{ID: "pte-pt01-proc1", PriceTableID: "pt01", ProcedureID: "proc1", Value: 10},
		{ID: "pte-pt02-proc1", PriceTableID: "pt02", ProcedureID: "proc1", Value: 100},
		{ID: "pte-pt02-proc2", PriceTableID: "pt02", ProcedureID: "proc2", Value: 50},
	}))
	require.NoError(t, store.BulkPut(ctx, entitystore.Appointments, []domain.Appointment{
		{ID: "app1", PatientID: "p001", ProcedureID: "proc1", DoctorID: "doct1", Status: domain.StatusAtendido},
		{ID: "app2", PatientID: "p002", ProcedureID: "proc2", DoctorID: "doct1", Status: domain.StatusAtendido},
		{ID: "app3", PatientID: "p001", ProcedureID: "proc1", DoctorID: "doct2", Status: domain.StatusNaoCompareceu},
		{ID: "app4", PatientID: "p001", ProcedureID: "proc2", DoctorID: "doct1", Status: domain.StatusAgendado},
		{ID: "app5", PatientID: "p999", ProcedureID: "proc1", DoctorID: "doct1", Status: domain.StatusAtendido},
		{ID: "app6", PatientID: "p002", ProcedureID: "proc1", DoctorID: "doct2", Status: domain.StatusCanceladoPaciente},
	}))

	cache := datacache.NewCache(store)
	require.NoError(t, cache.Load(ctx))

	return NewReportsService(cache)
}

func TestStatusOverviewExcludesDanglingReferences(t *testing.T) {
	svc := newTestService(t)

	overview := svc.StatusOverview(dto.Filter{})
	// app5 aponta para paciente inexistente e não conta em lugar nenhum
	assert.Equal(t, []dto.NameValue{
		{Name: "Agendado", Value: 1},
		{Name: "Atendido", Value: 2},
		{Name: "Não Compareceu", Value: 1},
		{Name: "Cancelado (Paciente)", Value: 1},
	}, overview)
}

func TestFinancialAnalysisUsesParticularTable(t *testing.T) {
	svc := newTestService(t)

	fin := svc.FinancialAnalysis(dto.Filter{})
	assert.Equal(t, 150.0, fin.TotalRevenue)
	assert.Equal(t, 75.0, fin.AverageRevenue)
	assert.Equal(t, []dto.NameAmount{
		{Name: "Consulta", Value: 100},
		{Name: "Exame", Value: 50},
	}, fin.RevenueByProcedureType)
}

func TestDoctorPerformanceSortedByRevenue(t *testing.T) {
	svc := newTestService(t)

	rows := svc.DoctorPerformance(dto.Filter{})
	require.Len(t, rows, 2)

	assert.Equal(t, "doct1", rows[0].ID)
	assert.Equal(t, 2, rows[0].Attended)
	assert.Equal(t, 150.0, rows[0].Revenue)

	assert.Equal(t, "doct2", rows[1].ID)
	assert.Equal(t, 0, rows[1].Attended)
	assert.Equal(t, 1, rows[1].NoShows)
	assert.Equal(t, 1, rows[1].Cancellations)
	assert.Equal(t, 0.0, rows[1].Revenue)
}

func TestMunicipalityPerformance(t *testing.T) {
	svc := newTestService(t)

	rows := svc.MunicipalityPerformance(dto.Filter{})
	require.Len(t, rows, 2)

	// Ordenado por receita decrescente: Sobral (100) antes de Fortaleza (50)
	assert.Equal(t, "muni1", rows[0].ID)
	assert.Equal(t, 2, rows[0].PatientCount)
	assert.Equal(t, 3, rows[0].AppointmentCount)
	assert.Equal(t, 1, rows[0].AttendedCount)
	assert.Equal(t, 1, rows[0].NoShowCount)
	assert.Equal(t, 100.0, rows[0].Revenue)

	assert.Equal(t, "muni2", rows[1].ID)
	assert.Equal(t, 2, rows[1].AppointmentCount)
	assert.Equal(t, 50.0, rows[1].Revenue)
}

func TestExecutedByType(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, []dto.NameValue{
		{Name: "Consulta", Value: 1},
		{Name: "Exame", Value: 1},
	}, svc.ExecutedByType(dto.Filter{}))
}

func TestSlotAnalysisSkipsProceduresWithoutSlots(t *testing.T) {
	svc := newTestService(t)

	rows := svc.SlotAnalysis(dto.Filter{})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "proc1", row.ID)
	assert.Equal(t, "Consulta", row.Type)
	require.NotNil(t, row.Offered)
	assert.Equal(t, 10, *row.Offered)
	assert.Equal(t, 1, row.Executed)
	require.NotNil(t, row.Balance)
	assert.Equal(t, 9, *row.Balance)
}

func TestProductionAnalysis(t *testing.T) {
	svc := newTestService(t)

	rows := svc.ProductionAnalysis(dto.Filter{})
	require.Len(t, rows, 2)

	sobral := rows[0]
	assert.Equal(t, "Sobral", sobral.Name)
	assert.Equal(t, 3, sobral.Offered["total"])
	assert.Equal(t, 2, sobral.Offered["Consulta"])
	assert.Equal(t, 1, sobral.Offered["Exame"])
	assert.Equal(t, 1, sobral.Executed["total"])
	assert.Equal(t, 1, sobral.Executed["Consulta"])

	fortaleza := rows[1]
	assert.Equal(t, 2, fortaleza.Offered["total"])
	assert.Equal(t, 1, fortaleza.Executed["total"])
}

func TestAgeDistribution(t *testing.T) {
	svc := newTestService(t)

	brackets := svc.AgeDistribution(dto.Filter{})
	require.Len(t, brackets, 5)

	// p001 (11 anos) e p003 (sem data, tratado como 0) caem em 0-17;
	// p002 cai em 31-45
	assert.Equal(t, dto.NameValue{Name: "0-17", Value: 2}, brackets[0])
	assert.Equal(t, dto.NameValue{Name: "31-45", Value: 1}, brackets[2])
}

func TestFiltersRestrictEveryAnalysis(t *testing.T) {
	svc := newTestService(t)

	overview := svc.StatusOverview(dto.Filter{DoctorID: "doct2"})
	assert.Equal(t, []dto.NameValue{
		{Name: "Não Compareceu", Value: 1},
		{Name: "Cancelado (Paciente)", Value: 1},
	}, overview)

	brackets := svc.AgeDistribution(dto.Filter{MunicipalityID: "muni1"})
	assert.Equal(t, 2, brackets[0].Value)
	assert.Equal(t, 0, brackets[2].Value)

	fin := svc.FinancialAnalysis(dto.Filter{MunicipalityID: "muni2"})
	assert.Equal(t, 50.0, fin.TotalRevenue)

	rows := svc.MunicipalityPerformance(dto.Filter{ProcedureTypeID: "type2"})
	require.Len(t, rows, 2)
}

func TestDashboardAggregatesAllAnalyses(t *testing.T) {
	svc := newTestService(t)

	report := svc.Dashboard(dto.Filter{})
	assert.NotEmpty(t, report.StatusOverview)
	assert.NotEmpty(t, report.DoctorPerformance)
	assert.NotEmpty(t, report.MunicipalityPerformance)
	assert.NotEmpty(t, report.ProductionAnalysis)
	assert.Equal(t, 150.0, report.FinancialAnalysis.TotalRevenue)
}
