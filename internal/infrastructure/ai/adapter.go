// Package ai implementa o adaptador de provedores de IA: chat com
// streaming, sugestões de automação e análise SWOT, todos sobre o dialeto
// chat-completions da OpenAI.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"medsms-core/internal/app/config"
	"medsms-core/internal/domain"
	"medsms-core/internal/shared/apperrors"

	openai "github.com/sashabaranov/go-openai"
)

type Adapter struct {
	cfg *config.Config
}

func NewAdapter(cfg *config.Config) *Adapter {
	return &Adapter{cfg: cfg}
}

// resolve preenche as credenciais ausentes com os valores do ambiente
func (a *Adapter) resolve(creds Credentials) Credentials {
	if creds.GeminiAPIKey == "" {
		creds.GeminiAPIKey = a.cfg.AI.GeminiAPIKey
	}
	if creds.HFToken == "" {
		creds.HFToken = a.cfg.AI.HFToken
	}
	if creds.GroqAPIKey == "" {
		creds.GroqAPIKey = a.cfg.AI.GroqAPIKey
	}
	if creds.LMStudioURL == "" {
		creds.LMStudioURL = a.cfg.AI.LMStudioURL
	}
	if creds.LMStudioModel == "" {
		creds.LMStudioModel = a.cfg.AI.LMStudioModel
	}
	return creds
}

// StreamChat envia o histórico ao provedor e entrega cada fragmento a
// onDelta na ordem de chegada. Erro de onDelta interrompe o stream.
func (a *Adapter) StreamChat(
	ctx context.Context,
	provider domain.AIProvider,
	creds Credentials,
	history []domain.ChatMessage,
	dataset domain.ChatContext,
	onDelta func(text string) error,
) error {
	client, model, err := clientFor(provider, a.resolve(creds))
	if err != nil {
		return err
	}

	today := time.Now().Format("02/01/2006")
	systemInstruction := fmt.Sprintf(
		"Você é um assistente de IA para um sistema de gestão clínica. A data de hoje é %s. "+
			"Responda à solicitação do usuário com base ESTRITAMENTE no dataset fornecido. "+
			"Seja conciso e profissional. O dataset com os dados da clínica é o seguinte: %s",
		today, BuildSummarizedContext(dataset),
	)

	// Provedores fora do Gemini rejeitam histórico que abre com fala do
	// assistente (a mensagem de boas-vindas)
	if provider != domain.ProviderGemini && len(history) > 0 && history[0].Sender == "ai" {
		history = history[1:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemInstruction,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Sender == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}

	stream, err := client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
		Stream:      true,
	})
	if err != nil {
		return apperrors.NewProvider(string(provider),
			fmt.Sprintf("Não foi possível conectar ao provedor '%s'.", provider), err)
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return apperrors.NewProvider(string(provider),
				"Falha ao receber o stream de resposta da IA.", err)
		}

		if len(response.Choices) == 0 {
			continue
		}
		if text := response.Choices[0].Delta.Content; text != "" {
			if err := onDelta(text); err != nil {
				return err
			}
		}
	}
}

// completeJSON faz uma chamada não-streaming de baixa temperatura e
// normaliza o payload JSON da resposta
func (a *Adapter) completeJSON(
	ctx context.Context,
	provider domain.AIProvider,
	creds Credentials,
	systemInstruction string,
	userPrompt string,
) (interface{}, error) {
	client, model, err := clientFor(provider, a.resolve(creds))
	if err != nil {
		return nil, err
	}

	response, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, apperrors.NewProvider(string(provider),
			fmt.Sprintf("Não foi possível conectar ao provedor '%s'.", provider), err)
	}

	if len(response.Choices) == 0 {
		return nil, apperrors.NewProvider(string(provider),
			"A API retornou uma resposta em um formato inesperado.", nil)
	}

	payload, err := ParsePayload(response.Choices[0].Message.Content)
	if err != nil {
		return nil, apperrors.NewProvider(string(provider), err.Error(), nil)
	}
	return payload, nil
}

// GenerateAutomationSuggestions pede ao provedor sugestões de mensagem
// (lembrete, preparo, follow-up, campanha) para a data de referência
func (a *Adapter) GenerateAutomationSuggestions(
	ctx context.Context,
	provider domain.AIProvider,
	creds Credentials,
	dataset interface{},
	targetDate time.Time,
) ([]domain.AutomationSuggestion, error) {
	referenceDate := targetDate.Format(time.RFC3339)

	systemInstruction := fmt.Sprintf(`Você é uma API. Sua ÚNICA função é analisar os dados da clínica para a data de referência %s e retornar um array JSON de sugestões de automação.
As categorias são: 'reminder', 'preparation', 'follow-up', 'campaign'.
Para cada sugestão, forneça um "reasoning" (motivo) conciso explicando por que a sugestão foi gerada.
NUNCA forneça texto, explicações ou pensamentos. Sua resposta DEVE SER apenas o array JSON.
Sempre inclua o nome do paciente na mensagem.
Exemplo de formato de saída:
[
  {
    "patientId": "p001",
    "patientName": "Artur Silva",
    "patientPhone": "5588987654321",
    "type": "reminder",
    "message": "Olá Artur Silva. Lembrete da sua consulta de Acompanhamento Cardiológico amanhã às 09:00.",
    "reasoning": "Lembrete para consulta agendada em menos de 48 horas."
  }
]`, referenceDate)

	datasetJSON, err := json.Marshal(dataset)
	if err != nil {
		return nil, apperrors.NewProvider(string(provider), "Falha ao serializar o dataset.", err)
	}
	userPrompt := fmt.Sprintf("Dataset: %s.", datasetJSON)

	raw, err := a.completeJSON(ctx, provider, creds, systemInstruction, userPrompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := NormalizeSuggestions(raw)
	if err != nil {
		return nil, apperrors.NewProvider(string(provider), err.Error(), nil)
	}
	return suggestions, nil
}

// GenerateSwotAnalysis pede ao provedor a análise de quatro quadrantes
// sobre o tópico e os dados agregados fornecidos
func (a *Adapter) GenerateSwotAnalysis(
	ctx context.Context,
	provider domain.AIProvider,
	creds Credentials,
	topic string,
	analysisData interface{},
	dataset domain.ChatContext,
) (domain.SwotAnalysis, error) {
	systemInstruction := `Você é uma API de análise. Sua ÚNICA função é retornar uma análise SWOT em formato JSON. Baseado no tópico e nos dados fornecidos, gere a análise. NUNCA forneça texto, explicações ou pensamentos. Sua resposta DEVE SER apenas o objeto JSON. Certifique-se de que os valores dentro dos arrays sejam strings simples, sem aspas duplas extras.
Exemplo de formato de saída:
{
  "strengths": ["Alta taxa de comparecimento para Doutor X."],
  "weaknesses": ["Baixa receita gerada pelo procedimento Y."],
  "opportunities": ["Expandir marketing para o município Z com base no alto comparecimento."],
  "threats": ["Concorrência local pode afetar a retenção de pacientes."]
}`

	analysisJSON, err := json.Marshal(analysisData)
	if err != nil {
		return domain.SwotAnalysis{}, apperrors.NewProvider(string(provider), "Falha ao serializar os dados da análise.", err)
	}

	userPrompt := fmt.Sprintf(`
        Tópico da Análise: %s
        Dados para Análise: %s
        Contexto Geral: Total de Pacientes: %d, Total de Agendamentos: %d
    `, topic, analysisJSON, len(dataset.Patients), len(dataset.Appointments))

	raw, err := a.completeJSON(ctx, provider, creds, systemInstruction, userPrompt)
	if err != nil {
		return domain.SwotAnalysis{}, err
	}

	swot, err := NormalizeSwot(raw)
	if err != nil {
		return domain.SwotAnalysis{}, apperrors.NewProvider(string(provider), err.Error(), nil)
	}
	return swot, nil
}
