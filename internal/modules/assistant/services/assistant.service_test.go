package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/sqlite"
	"medsms-core/internal/modules/assistant/dto"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

// newTestService monta o serviço sem adaptador nem sessões: os casos
// abaixo só exercitam validação e persistência de histórico, que param
// antes de qualquer chamada a provedor.
func newTestService(t *testing.T) *AssistantService {
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

	return NewAssistantService(store, cache, nil, nil, nil)
}

func TestChatRequiresHistory(t *testing.T) {
	svc := newTestService(t)

	err := svc.Chat(context.Background(), "", dto.ChatRequest{}, nil)
	require.Error(t, err)
	assert.Equal(t, "O histórico da conversa não pode estar vazio.", err.Error())
}

func TestChatRequiresUserAsLastSender(t *testing.T) {
	svc := newTestService(t)

	err := svc.Chat(context.Background(), "", dto.ChatRequest{
		History: []domain.ChatMessage{
			{ID: "msg-000001", Text: "Olá!", Sender: "user"},
			{ID: "msg-000002", Text: "Olá, como posso ajudar?", Sender: "ai"},
		},
	}, nil)
	require.Error(t, err)
	assert.Equal(t, "A última mensagem do histórico deve ser do usuário.", err.Error())
}

func TestSaveHistoryAssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.SaveHistory(context.Background(), dto.SaveHistoryRequest{
		Messages: []dto.ChatMessageInput{
			{Text: "Quantos pacientes temos?", Sender: "user"},
			{Text: "Há 42 pacientes cadastrados.", Sender: "ai"},
			{Text: "E agendamentos para hoje?", Sender: "user"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "msg-000001", saved[0].ID)
	assert.Equal(t, "msg-000002", saved[1].ID)
	assert.Equal(t, "msg-000003", saved[2].ID)

	// O histórico volta do store na ordem original da conversa
	history := svc.History()
	require.Len(t, history, 3)
	assert.Equal(t, "Quantos pacientes temos?", history[0].Text)
	assert.Equal(t, "E agendamentos para hoje?", history[2].Text)
}

func TestSaveHistoryReplacesWholeConversation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveHistory(ctx, dto.SaveHistoryRequest{
		Messages: []dto.ChatMessageInput{
			{Text: "Primeira conversa.", Sender: "user"},
			{Text: "Entendido.", Sender: "ai"},
		},
	})
	require.NoError(t, err)

	_, err = svc.SaveHistory(ctx, dto.SaveHistoryRequest{
		Messages: []dto.ChatMessageInput{{Text: "Conversa nova.", Sender: "user"}},
	})
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, "Conversa nova.", history[0].Text)
}

func TestSaveHistoryValidatesSender(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveHistory(context.Background(), dto.SaveHistoryRequest{
		Messages: []dto.ChatMessageInput{{Text: "Olá", Sender: "system"}},
	})
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "system")
}

func TestAutomationRequiresTargetDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Automation(ctx, "", dto.AutomationRequest{})
	require.Error(t, err)
	assert.Equal(t, "A data de referência é obrigatória.", err.Error())

	_, err = svc.Automation(ctx, "", dto.AutomationRequest{TargetDate: "15/09/2026"})
	require.Error(t, err)
	assert.Equal(t, "Data de referência inválida. Use AAAA-MM-DD.", err.Error())
}

func TestSwotRejectsUnknownTopic(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Swot(context.Background(), "", dto.SwotRequest{Topic: "meteorologia"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meteorologia")

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
