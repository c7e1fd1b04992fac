package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/sqlite"
	"medsms-core/internal/modules/scheduling/dto"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

func newTestService(t *testing.T) *SchedulingService {
	t.Helper()
	ctx := context.Background()

	client, err := sqlite.NewClient(&sqlite.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	store := entitystore.NewStore(entitystore.NewSQLiteDriver(client))
	require.NoError(t, store.Init(ctx))

	require.NoError(t, store.Put(ctx, entitystore.Occurrences,
		domain.Occurrence{ID: "occu1", Name: domain.OccurrencePatientArrived}))
	require.NoError(t, store.Put(ctx, entitystore.Occurrences,
		domain.Occurrence{ID: "occu2", Name: "Chegou atrasado"}))

	cache := datacache.NewCache(store)
	require.NoError(t, cache.Load(ctx))

	return NewSchedulingService(store, cache)
}

func createAppointment(t *testing.T, svc *SchedulingService) domain.Appointment {
	t.Helper()
	app, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
		PatientID:   "p001",
		ProcedureID: "proc1",
		DoctorID:    "doct1",
		LocationID:  "loca1",
		Date:        "2026-09-15T09:00:00.000Z",
	})
	require.NoError(t, err)
	return app
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
		PatientID:   "p001",
		ProcedureID: "proc1",
		DoctorID:    "doct1",
		// LocationID ausente
		Date: "2026-09-15T09:00:00.000Z",
	})
	require.Error(t, err)
	assert.Equal(t,
		"Erro: Para criar o agendamento, selecione Paciente, Procedimento, Médico, Local e Data.",
		err.Error())

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateRejectsInvalidDate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
		PatientID:   "p001",
		ProcedureID: "proc1",
		DoctorID:    "doct1",
		LocationID:  "loca1",
		Date:        "15/09/2026",
	})
	assert.Error(t, err)
}

func TestCreateStartsAsAgendado(t *testing.T) {
	svc := newTestService(t)

	app := createAppointment(t, svc)
	assert.Equal(t, domain.StatusAgendado, app.Status)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, "app", app.ID[:3])

	require.Len(t, svc.List(), 1)
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)

	updated, err := svc.UpdateStatus(ctx, app.ID, domain.StatusEmEspera)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEmEspera, updated.Status)

	updated, err = svc.UpdateStatus(ctx, app.ID, domain.StatusAtendido)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAtendido, updated.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)
	app := createAppointment(t, svc)

	_, err := svc.UpdateStatus(context.Background(), app.ID, "confirmado")
	require.Error(t, err)
	assert.Equal(t, "Status inválido: confirmado", err.Error())
}

func TestUpdateStatusRejectsSameStatus(t *testing.T) {
	svc := newTestService(t)
	app := createAppointment(t, svc)

	_, err := svc.UpdateStatus(context.Background(), app.ID, domain.StatusAgendado)
	require.Error(t, err)
	assert.Equal(t, "O agendamento já está neste status.", err.Error())
}

func TestUpdateStatusRejectsDirectCancellation(t *testing.T) {
	svc := newTestService(t)
	app := createAppointment(t, svc)

	_, err := svc.UpdateStatus(context.Background(), app.ID, domain.StatusCanceladoPaciente)
	require.Error(t, err)
	assert.Equal(t, "Cancelamentos exigem um registro de cancelamento com motivo.", err.Error())
}

func TestUpdateStatusRejectsTerminal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)
	_, err := svc.UpdateStatus(ctx, app.ID, domain.StatusAtendido)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, app.ID, domain.StatusEmEspera)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestUpdateStatusRejectsBackwardTransition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)
	_, err := svc.UpdateStatus(ctx, app.ID, domain.StatusEmEspera)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, app.ID, domain.StatusAgendado)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transição de status não permitida")
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "app999", domain.StatusEmEspera)
	require.Error(t, err)

	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestOccurrencePatientArrivedForcesEmEspera(t *testing.T) {
	svc := newTestService(t)

	app := createAppointment(t, svc)
	updated, err := svc.UpdateOccurrence(context.Background(), app.ID, "occu1")
	require.NoError(t, err)
	assert.Equal(t, "occu1", updated.OccurrenceID)
	assert.Equal(t, domain.StatusEmEspera, updated.Status)
}

func TestOccurrenceOtherKeepsStatus(t *testing.T) {
	svc := newTestService(t)

	app := createAppointment(t, svc)
	updated, err := svc.UpdateOccurrence(context.Background(), app.ID, "occu2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAgendado, updated.Status)
}

func TestOccurrenceClearedWithEmptyID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)
	_, err := svc.UpdateOccurrence(ctx, app.ID, "occu2")
	require.NoError(t, err)

	updated, err := svc.UpdateOccurrence(ctx, app.ID, "")
	require.NoError(t, err)
	assert.Empty(t, updated.OccurrenceID)
}

func TestOccurrenceUnknownIsNotFound(t *testing.T) {
	svc := newTestService(t)

	app := createAppointment(t, svc)
	_, err := svc.UpdateOccurrence(context.Background(), app.ID, "occu999")
	require.Error(t, err)

	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestCancelRequiresReason(t *testing.T) {
	svc := newTestService(t)

	app := createAppointment(t, svc)
	_, err := svc.Cancel(context.Background(), app.ID, dto.CancellationRequest{
		CancelledBy: "patient",
		Reason:      "   ",
	})
	require.Error(t, err)
	assert.Equal(t, "O motivo do cancelamento é obrigatório.", err.Error())
}

func TestCancelMapsCancelledBy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		cancelledBy string
		expected    domain.AppointmentStatus
	}{
		{"patient", domain.StatusCanceladoPaciente},
		{"doctor", domain.StatusCanceladoMedico},
	}

	for _, tt := range tests {
		app := createAppointment(t, svc)
		updated, err := svc.Cancel(ctx, app.ID, dto.CancellationRequest{
			CancelledBy: tt.cancelledBy,
			Reason:      "Paciente viajou.",
		})
		require.NoError(t, err)
		assert.Equal(t, tt.expected, updated.Status)
		assert.Equal(t, "Paciente viajou.", updated.CancellationReason)
	}
}

func TestCancelRejectsUnknownOrigin(t *testing.T) {
	svc := newTestService(t)

	app := createAppointment(t, svc)
	_, err := svc.Cancel(context.Background(), app.ID, dto.CancellationRequest{
		CancelledBy: "secretary",
		Reason:      "Motivo qualquer.",
	})
	assert.Error(t, err)
}

func TestCancelRejectsTerminal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)
	_, err := svc.UpdateStatus(ctx, app.ID, domain.StatusAtendido)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, app.ID, dto.CancellationRequest{
		CancelledBy: "doctor",
		Reason:      "Tentativa tardia.",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)

	newDoctor := "doct2"
	updated, err := svc.Update(ctx, app.ID, dto.UpdateAppointmentRequest{DoctorID: &newDoctor})
	require.NoError(t, err)
	assert.Equal(t, "doct2", updated.DoctorID)
	assert.Equal(t, app.PatientID, updated.PatientID)
	assert.Equal(t, app.Date, updated.Date)
}

func TestDeleteRemovesAppointment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	app := createAppointment(t, svc)
	require.NoError(t, svc.Delete(ctx, app.ID))
	assert.Empty(t, svc.List())
}
