package dto

import (
	"medsms-core/internal/domain"
	reportsdto "medsms-core/internal/modules/reports/dto"
)

// ChatRequest envia o histórico completo da conversa; a última mensagem
// deve ser a pergunta do usuário. O provedor, quando presente, sobrepõe
// a preferência da sessão.
type ChatRequest struct {
	Provider domain.AIProvider    `json:"provider"`
	History  []domain.ChatMessage `json:"history"`
}

// ChatMessageInput é uma mensagem sem id: os ids sequenciais são
// atribuídos pelo servidor na gravação, preservando a ordem da conversa.
type ChatMessageInput struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

// SaveHistoryRequest substitui o histórico persistido inteiro
type SaveHistoryRequest struct {
	Messages []ChatMessageInput `json:"messages"`
}

// AutomationRequest pede sugestões de mensagem para a data de referência
type AutomationRequest struct {
	Provider   domain.AIProvider `json:"provider"`
	TargetDate string            `json:"targetDate"`
}

// SwotRequest pede a análise de quatro quadrantes sobre um dos tópicos
// do painel. O filtro restringe os dados agregados, não o contexto geral.
type SwotRequest struct {
	Provider domain.AIProvider `json:"provider"`
	Topic    string            `json:"topic"`
	Filter   reportsdto.Filter `json:"filter"`
}
