package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"medsms-core/internal/app/config"
	"medsms-core/internal/domain"
	"medsms-core/internal/infrastructure/database/redis"
	"medsms-core/internal/modules/session/dto"
	"medsms-core/internal/shared/apperrors"
)

// SessionService guarda as preferências de IA por sessão no Redis
// (padrão de chave "session_settings", sem expiração). Sessão
// inexistente resolve para os padrões do ambiente, então o cliente
// funciona mesmo sem criar sessão.
type SessionService struct {
	redis  *redis.Client
	config *config.Config
}

func NewSessionService(redisClient *redis.Client, cfg *config.Config) *SessionService {
	return &SessionService{redis: redisClient, config: cfg}
}

func (s *SessionService) defaults() dto.Settings {
	return dto.Settings{
		AIProvider: domain.AIProvider(s.config.AI.DefaultProvider),
	}
}

// Create abre uma sessão nova com as preferências padrão
func (s *SessionService) Create(ctx context.Context) (dto.CreateSessionResponse, error) {
	sessionID := uuid.NewString()
	settings := s.defaults()
	if err := s.save(ctx, sessionID, settings); err != nil {
		return dto.CreateSessionResponse{}, err
	}
	return dto.CreateSessionResponse{SessionID: sessionID, Settings: settings}, nil
}

// GetSettings resolve as preferências da sessão; sessão desconhecida ou
// id vazio caem nos padrões do ambiente.
func (s *SessionService) GetSettings(ctx context.Context, sessionID string) (dto.Settings, error) {
	if sessionID == "" {
		return s.defaults(), nil
	}

	raw, err := s.redis.GetWithPattern(ctx, "session_settings", sessionID)
	if err != nil {
		return s.defaults(), nil
	}

	var settings dto.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return dto.Settings{}, apperrors.NewStorage("session.get", err)
	}
	if settings.AIProvider == "" {
		settings.AIProvider = domain.AIProvider(s.config.AI.DefaultProvider)
	}
	return settings, nil
}

// UpdateSettings valida e persiste as preferências da sessão
func (s *SessionService) UpdateSettings(ctx context.Context, sessionID string, settings dto.Settings) (dto.Settings, error) {
	if sessionID == "" {
		return dto.Settings{}, apperrors.NewValidation("O header X-Session-ID é obrigatório.")
	}
	if settings.AIProvider != "" && !settings.AIProvider.Valid() {
		return dto.Settings{}, apperrors.NewValidation(
			fmt.Sprintf("Provedor de IA não suportado: %s", settings.AIProvider))
	}
	if settings.AIProvider == "" {
		settings.AIProvider = domain.AIProvider(s.config.AI.DefaultProvider)
	}

	if err := s.save(ctx, sessionID, settings); err != nil {
		return dto.Settings{}, err
	}
	return settings, nil
}

func (s *SessionService) save(ctx context.Context, sessionID string, settings dto.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return apperrors.NewStorage("session.save", err)
	}
	if err := s.redis.SetWithPattern(ctx, "session_settings", payload, sessionID); err != nil {
		return apperrors.NewStorage("session.save", err)
	}
	return nil
}
