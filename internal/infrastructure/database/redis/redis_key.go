package redis

import (
	"fmt"
	"regexp"
	"strings"
)

// RedisKeyGenerator gera e valida chaves Redis conforme as convenções MedSMS
type RedisKeyGenerator struct {
	environment string
}

// NewRedisKeyGenerator cria uma nova instância do gerador
func NewRedisKeyGenerator(environment string) *RedisKeyGenerator {
	return &RedisKeyGenerator{environment: environment}
}

// RedisKeyPattern define os padrões de chave segundo as convenções
// Padrão: medsms_{ambiente}_{domain}_{context}:{identifier}
type RedisKeyPattern struct {
	Domain  string // session, cache, etc.
	Context string // settings, registry, etc.
	TTL     int    // TTL em segundos, 0 = sem expiração
}

// Padrões predefinidos do projeto
// Nota: apenas os padrões realmente implementados estão listados aqui
var RedisKeyPatterns = map[string]RedisKeyPattern{
	// Sessão - preferências de IA persistem até reset explícito
	"session_settings": {Domain: "session", Context: "settings", TTL: 0},
}

// GenerateKey gera uma chave Redis segundo a convenção:
// medsms_{ambiente}_{domain}_{context}:{identifier}
func (rkg *RedisKeyGenerator) GenerateKey(patternName string, identifier ...string) (string, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return "", fmt.Errorf("pattern Redis não encontrado: %s", patternName)
	}

	prefix := fmt.Sprintf("medsms_%s_%s_%s", rkg.environment, pattern.Domain, pattern.Context)

	if len(identifier) > 0 {
		identifierStr := strings.Join(identifier, "_")
		return fmt.Sprintf("%s:%s", prefix, identifierStr), nil
	}

	// Sem identifier, retornar apenas o prefixo (chaves singleton)
	return prefix, nil
}

// GetTTL recupera o TTL de um padrão
func (rkg *RedisKeyGenerator) GetTTL(patternName string) (int, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return 0, fmt.Errorf("pattern Redis não encontrado: %s", patternName)
	}
	return pattern.TTL, nil
}

// ValidateKey valida que uma chave respeita as convenções
func (rkg *RedisKeyGenerator) ValidateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("chave vazia")
	}

	if len(key) > 250 {
		return fmt.Errorf("chave longa demais (máx 250 caracteres): %d", len(key))
	}

	validKeyRegex := regexp.MustCompile(`^[a-zA-Z0-9_:\-]+$`)
	if !validKeyRegex.MatchString(key) {
		return fmt.Errorf("chave contém caracteres inválidos: %s", key)
	}

	if !strings.HasPrefix(key, "medsms_") {
		return fmt.Errorf("chave deve começar com 'medsms_': %s", key)
	}

	parts := strings.SplitN(key, ":", 2)
	prefixParts := strings.Split(parts[0], "_")
	if len(prefixParts) < 4 {
		return fmt.Errorf("estrutura de prefixo inválida (formato: medsms_ambiente_domain_context): %s", parts[0])
	}

	return nil
}

// GenerateWildcardPattern gera um padrão wildcard para busca por domain/context
func (rkg *RedisKeyGenerator) GenerateWildcardPattern(domain, context string) string {
	return fmt.Sprintf("medsms_%s_%s_%s*", rkg.environment, domain, context)
}

// ListAllPatterns retorna todos os padrões disponíveis
func (rkg *RedisKeyGenerator) ListAllPatterns() map[string]RedisKeyPattern {
	return RedisKeyPatterns
}
