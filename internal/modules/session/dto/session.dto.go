package dto

import (
	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/ai"
)

// Settings são as preferências de IA da sessão: provedor selecionado e
// credenciais fornecidas pelo usuário. São guardadas no Redis sob a
// chave da sessão e nunca vão para o Entity Store.
type Settings struct {
	AIProvider  domain.AIProvider `json:"aiProvider"`
	Credentials ai.Credentials    `json:"credentials"`
}

type CreateSessionResponse struct {
	SessionID string   `json:"sessionId"`
	Settings  Settings `json:"settings"`
}
