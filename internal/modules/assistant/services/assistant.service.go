package services

import (
	"context"
	"fmt"
	"time"

	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/ai"
	"medsms-core/internal/modules/assistant/dto"
	reportsservices "medsms-core/internal/modules/reports/services"
	sessionservices "medsms-core/internal/modules/session/services"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

// swotTopics mapeia o tópico da requisição para o rótulo apresentado ao
// provedor. Cada tópico é alimentado pela análise correspondente do
// painel.
var swotTopics = map[string]string{
	"financeiro":               "Financeiro",
	"desempenho-medico":        "Desempenho Médico",
	"desempenho-municipio":     "Desempenho por Município",
	"producao":                 "Análise de Produção",
	"procedimentos-realizados": "Procedimentos Realizados",
	"agendamentos":             "Visão Geral dos Agendamentos",
	"vagas":                    "Análise de Vagas",
}

// automationDataset é o recorte entregue ao provedor na automação de
// mensagens: entidades completas, sem resumo.
type automationDataset struct {
	Patients       []domain.Patient        `json:"patients"`
	Appointments   []domain.Appointment    `json:"appointments"`
	Doctors        []domain.Doctor         `json:"doctors"`
	Campaigns      []domain.HealthCampaign `json:"campaigns"`
	Procedures     []domain.Procedure      `json:"procedures"`
	ProcedureTypes []domain.ProcedureType  `json:"procedureTypes"`
	Locations      []domain.Location       `json:"locations"`
}

type AssistantService struct {
	store    *entitystore.Store
	cache    *datacache.Cache
	adapter  *ai.Adapter
	sessions *sessionservices.SessionService
	reports  *reportsservices.ReportsService
}

func NewAssistantService(
	store *entitystore.Store,
	cache *datacache.Cache,
	adapter *ai.Adapter,
	sessions *sessionservices.SessionService,
	reports *reportsservices.ReportsService,
) *AssistantService {
	return &AssistantService{
		store:    store,
		cache:    cache,
		adapter:  adapter,
		sessions: sessions,
		reports:  reports,
	}
}

// resolveProvider decide provedor e credenciais: o override da requisição
// vence a preferência da sessão; o adaptador ainda cai nas variáveis de
// ambiente para credenciais ausentes.
func (s *AssistantService) resolveProvider(ctx context.Context, sessionID string, override domain.AIProvider) (domain.AIProvider, ai.Credentials, error) {
	settings, err := s.sessions.GetSettings(ctx, sessionID)
	if err != nil {
		return "", ai.Credentials{}, err
	}

	provider := settings.AIProvider
	if override != "" {
		provider = override
	}
	if !provider.Valid() {
		return "", ai.Credentials{}, apperrors.NewValidation(
			fmt.Sprintf("Provedor de IA não suportado: %s", provider))
	}
	return provider, settings.Credentials, nil
}

func (s *AssistantService) chatContext() domain.ChatContext {
	snap := s.cache.Snapshot()
	return domain.ChatContext{
		Patients:          snap.Patients,
		Appointments:      snap.Appointments,
		Doctors:           snap.Doctors,
		Locations:         snap.Locations,
		Procedures:        snap.Procedures,
		ProcedureTypes:    snap.ProcedureTypes,
		Occurrences:       snap.Occurrences,
		Campaigns:         snap.Campaigns,
		Municipalities:    snap.Municipalities,
		PriceTables:       snap.PriceTables,
		PriceTableEntries: snap.PriceTableEntries,
	}
}

// Chat transmite a resposta do provedor fragmento a fragmento via onDelta
func (s *AssistantService) Chat(ctx context.Context, sessionID string, req dto.ChatRequest, onDelta func(string) error) error {
	if len(req.History) == 0 {
		return apperrors.NewValidation("O histórico da conversa não pode estar vazio.")
	}
	if req.History[len(req.History)-1].Sender != "user" {
		return apperrors.NewValidation("A última mensagem do histórico deve ser do usuário.")
	}

	provider, creds, err := s.resolveProvider(ctx, sessionID, req.Provider)
	if err != nil {
		return err
	}
	return s.adapter.StreamChat(ctx, provider, creds, req.History, s.chatContext(), onDelta)
}

// History devolve o histórico persistido, em ordem de conversa
func (s *AssistantService) History() []domain.ChatMessage {
	return s.cache.Snapshot().ChatHistory
}

// SaveHistory substitui o histórico inteiro. Os ids sequenciais fazem o
// ORDER BY id do store devolver a conversa na ordem original.
func (s *AssistantService) SaveHistory(ctx context.Context, req dto.SaveHistoryRequest) ([]domain.ChatMessage, error) {
	messages := make([]domain.ChatMessage, 0, len(req.Messages))
	for i, input := range req.Messages {
		if input.Sender != "user" && input.Sender != "ai" {
			return nil, apperrors.NewValidation(
				fmt.Sprintf("Remetente inválido na mensagem %d: %q (use \"user\" ou \"ai\").", i+1, input.Sender))
		}
		messages = append(messages, domain.ChatMessage{
			ID:     fmt.Sprintf("msg-%06d", i+1),
			Text:   input.Text,
			Sender: input.Sender,
		})
	}

	if err := s.store.ReplaceAll(ctx, entitystore.ChatHistory, messages); err != nil {
		return nil, err
	}
	if err := s.cache.Reload(ctx, entitystore.ChatHistory); err != nil {
		return nil, err
	}
	return messages, nil
}

// Automation gera sugestões de mensagem (lembrete, preparo, follow-up,
// campanha) para a data de referência.
func (s *AssistantService) Automation(ctx context.Context, sessionID string, req dto.AutomationRequest) ([]domain.AutomationSuggestion, error) {
	if req.TargetDate == "" {
		return nil, apperrors.NewValidation("A data de referência é obrigatória.")
	}
	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		targetDate, err = time.Parse(time.RFC3339, req.TargetDate)
		if err != nil {
			return nil, apperrors.NewValidation("Data de referência inválida. Use AAAA-MM-DD.")
		}
	}

	provider, creds, err := s.resolveProvider(ctx, sessionID, req.Provider)
	if err != nil {
		return nil, err
	}

	snap := s.cache.Snapshot()
	dataset := automationDataset{
		Patients:       snap.Patients,
		Appointments:   snap.Appointments,
		Doctors:        snap.Doctors,
		Campaigns:      snap.Campaigns,
		Procedures:     snap.Procedures,
		ProcedureTypes: snap.ProcedureTypes,
		Locations:      snap.Locations,
	}
	return s.adapter.GenerateAutomationSuggestions(ctx, provider, creds, dataset, targetDate)
}

// Swot agrega os dados do tópico pedido e devolve a análise de quatro
// quadrantes do provedor.
func (s *AssistantService) Swot(ctx context.Context, sessionID string, req dto.SwotRequest) (domain.SwotAnalysis, error) {
	label, ok := swotTopics[req.Topic]
	if !ok {
		return domain.SwotAnalysis{}, apperrors.NewValidation(
			fmt.Sprintf("Tópico de análise desconhecido: %q", req.Topic))
	}

	provider, creds, err := s.resolveProvider(ctx, sessionID, req.Provider)
	if err != nil {
		return domain.SwotAnalysis{}, err
	}

	var analysisData interface{}
	switch req.Topic {
	case "financeiro":
		analysisData = s.reports.FinancialAnalysis(req.Filter)
	case "desempenho-medico":
		analysisData = s.reports.DoctorPerformance(req.Filter)
	case "desempenho-municipio":
		analysisData = s.reports.MunicipalityPerformance(req.Filter)
	case "producao":
		analysisData = s.reports.ProductionAnalysis(req.Filter)
	case "procedimentos-realizados":
		analysisData = s.reports.ExecutedByType(req.Filter)
	case "agendamentos":
		analysisData = s.reports.StatusOverview(req.Filter)
	case "vagas":
		analysisData = s.reports.SlotAnalysis(req.Filter)
	}

	return s.adapter.GenerateSwotAnalysis(ctx, provider, creds, label, analysisData, s.chatContext())
}
