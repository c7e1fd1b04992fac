package entitystore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/sqlite"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	client, err := sqlite.NewClient(&sqlite.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	store := NewStore(NewSQLiteDriver(client))
	require.NoError(t, store.Init(context.Background()))
	return store
}

func TestStorePutAndGetAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doctor := domain.Doctor{ID: "doct1", Name: "Dra. Ana", Specialty: "Pediatria", CRM: "CRM/CE 1234"}
	require.NoError(t, store.Put(ctx, Doctors, doctor))

	var doctors []domain.Doctor
	require.NoError(t, store.GetAll(ctx, Doctors, &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, doctor, doctors[0])

	// Put com a mesma chave substitui, não duplica
	doctor.Specialty = "Neuropediatria"
	require.NoError(t, store.Put(ctx, Doctors, doctor))

	require.NoError(t, store.GetAll(ctx, Doctors, &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Neuropediatria", doctors[0].Specialty)
}

func TestStorePutRejectsEmptyID(t *testing.T) {
	store := newTestStore(t)
	err := store.Put(context.Background(), Doctors, domain.Doctor{Name: "Sem ID"})
	assert.Error(t, err)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Locations, domain.Location{ID: "loca1", Name: "Sala 1"}))
	require.NoError(t, store.Delete(ctx, Locations, "loca1"))

	count, err := store.Count(ctx, Locations)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Remover chave ausente não é erro
	assert.NoError(t, store.Delete(ctx, Locations, "loca1"))
}

func TestStoreBulkPut(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Municipalities, domain.Municipality{ID: "muni1", Name: "Sobral"}))

	batch := []domain.Municipality{
		{ID: "muni1", Name: "Sobral", HealthSecretariat: "SMS Sobral"},
		{ID: "muni2", Name: "Fortaleza"},
	}
	require.NoError(t, store.BulkPut(ctx, Municipalities, batch))

	var municipalities []domain.Municipality
	require.NoError(t, store.GetAll(ctx, Municipalities, &municipalities))
	require.Len(t, municipalities, 2)
	assert.Equal(t, "SMS Sobral", municipalities[0].HealthSecretariat)
}

func TestStoreReplaceAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.BulkPut(ctx, Occurrences, []domain.Occurrence{
		{ID: "occu1", Name: "Paciente chegou"},
		{ID: "occu2", Name: "Remarcado"},
	}))

	require.NoError(t, store.ReplaceAll(ctx, Occurrences, []domain.Occurrence{
		{ID: "occu3", Name: "Encaminhado"},
	}))

	var occurrences []domain.Occurrence
	require.NoError(t, store.GetAll(ctx, Occurrences, &occurrences))
	require.Len(t, occurrences, 1)
	assert.Equal(t, "occu3", occurrences[0].ID)

	// Substituir por um slice vazio esvazia a coleção
	require.NoError(t, store.ReplaceAll(ctx, Occurrences, []domain.Occurrence{}))
	count, err := store.Count(ctx, Occurrences)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStoreGetAllOrdersByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Inserir fora de ordem; a leitura deve vir ordenada pelo id, que é o
	// que preserva a sequência das mensagens (msg-000001, msg-000002, ...)
	messages := []domain.ChatMessage{
		{ID: "msg-000003", Text: "terceira", Sender: "user"},
		{ID: "msg-000001", Text: "primeira", Sender: "user"},
		{ID: "msg-000002", Text: "segunda", Sender: "ai"},
	}
	require.NoError(t, store.BulkPut(ctx, ChatHistory, messages))

	var history []domain.ChatMessage
	require.NoError(t, store.GetAll(ctx, ChatHistory, &history))
	require.Len(t, history, 3)
	for i, msg := range history {
		assert.Equal(t, fmt.Sprintf("msg-%06d", i+1), msg.ID)
	}
}

func TestStoreGetAllEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	var patients []domain.Patient
	require.NoError(t, store.GetAll(context.Background(), Patients, &patients))
	assert.Empty(t, patients)
}

func TestCollectionIDPrefix(t *testing.T) {
	assert.Equal(t, "p", Patients.IDPrefix())
	assert.Equal(t, "app", Appointments.IDPrefix())
	assert.Equal(t, "doct", Doctors.IDPrefix())
	assert.Equal(t, "pric", PriceTables.IDPrefix())
	assert.Equal(t, "proc", Procedures.IDPrefix())
}

func TestCollectionValid(t *testing.T) {
	assert.True(t, Collection("patients").Valid())
	assert.False(t, Collection("invoices").Valid())
}
