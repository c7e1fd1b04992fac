package ai

import (
	"strings"

	"medsms-core/internal/domain"
	"medsms-core/internal/shared/apperrors"

	openai "github.com/sashabaranov/go-openai"
)

// Todos os provedores expõem o dialeto chat-completions da OpenAI; o que
// muda é a base URL, o modelo e a credencial exigida.
const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai"
	huggingfaceBaseURL = "https://router.huggingface.co/v1"
	groqBaseURL        = "https://api.groq.com/openai/v1"

	geminiModel       = "gemini-2.5-flash"
	huggingfaceModel  = "CEIA-UFG/Gemma-3-Gaia-PT-BR-4b-it"
	groqGemmaModel    = "gemma2-9b-it"
	groqDeepseekModel = "deepseek-r1-distill-llama-70b"

	defaultLMStudioURL   = "http://localhost:1234"
	defaultLMStudioModel = "gemma-3-gaia-pt-br-4b-it-i1"
)

// Credentials reúne as credenciais da sessão; campos vazios caem para os
// valores do ambiente
type Credentials struct {
	GeminiAPIKey  string `json:"geminiApiKey,omitempty"`
	HFToken       string `json:"hfToken,omitempty"`
	GroqAPIKey    string `json:"groqApiKey,omitempty"`
	LMStudioURL   string `json:"lmStudioUrl,omitempty"`
	LMStudioModel string `json:"lmStudioModel,omitempty"`
}

// clientFor monta o cliente e resolve o modelo do provedor selecionado.
// Credencial ausente é erro imediato, sem fallback entre provedores.
func clientFor(provider domain.AIProvider, creds Credentials) (*openai.Client, string, error) {
	switch provider {
	case domain.ProviderGemini:
		if strings.TrimSpace(creds.GeminiAPIKey) == "" {
			return nil, "", apperrors.NewProvider(string(provider),
				"Chave de API do Google Gemini não fornecida. Adicione-a nas configurações.", nil)
		}
		cfg := openai.DefaultConfig(creds.GeminiAPIKey)
		cfg.BaseURL = geminiBaseURL
		return openai.NewClientWithConfig(cfg), geminiModel, nil

	case domain.ProviderHuggingFace:
		if strings.TrimSpace(creds.HFToken) == "" {
			return nil, "", apperrors.NewProvider(string(provider),
				"Token do Hugging Face não fornecido. Adicione-o nas configurações.", nil)
		}
		cfg := openai.DefaultConfig(creds.HFToken)
		cfg.BaseURL = huggingfaceBaseURL
		return openai.NewClientWithConfig(cfg), huggingfaceModel, nil

	case domain.ProviderGroqGemma, domain.ProviderGroqDeepseek:
		if strings.TrimSpace(creds.GroqAPIKey) == "" {
			return nil, "", apperrors.NewProvider(string(provider),
				"Chave de API do Groq não fornecida. Adicione-a nas configurações.", nil)
		}
		cfg := openai.DefaultConfig(creds.GroqAPIKey)
		cfg.BaseURL = groqBaseURL
		model := groqGemmaModel
		if provider == domain.ProviderGroqDeepseek {
			model = groqDeepseekModel
		}
		return openai.NewClientWithConfig(cfg), model, nil

	case domain.ProviderLMStudio:
		// Servidor local, sem credencial
		baseURL := creds.LMStudioURL
		if baseURL == "" {
			baseURL = defaultLMStudioURL
		}
		model := creds.LMStudioModel
		if model == "" {
			model = defaultLMStudioModel
		}
		cfg := openai.DefaultConfig("lm-studio")
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/") + "/v1"
		return openai.NewClientWithConfig(cfg), model, nil

	default:
		return nil, "", apperrors.NewProvider(string(provider),
			"Provedor de IA não suportado: "+string(provider), nil)
	}
}
